// Package release manages versioned application releases under a base
// deployment path.
//
// Each deploy materializes the application into a fresh timestamped
// directory, then repoints the stable "current" symlink at it. The switch
// prefers symlink-then-rename so observers never see a half-updated
// pointer; release directories themselves are never deleted here.
package release

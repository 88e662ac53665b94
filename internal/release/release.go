package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// VersionLayout is the wall-clock layout for release version identifiers.
// Granularity is one second; two deploys within the same second collide and
// are not de-duplicated.
const VersionLayout = "2006-01-02-15-04-05"

// CurrentLinkName is the name of the stable entry-point link under the
// base path. The web server and process manager are configured against it.
const CurrentLinkName = "current"

// Release is one immutable, versioned copy of deployed application content.
type Release struct {
	BasePath    string
	VersionID   string
	TargetPath  string
	CurrentLink string
}

// FetchFunc populates targetPath with the application content identified by
// locator. The locator is opaque to the release manager and passed through
// unmodified. The target must be fully populated before a nil return.
type FetchFunc func(ctx context.Context, locator, targetPath string) error

// Manager deploys releases under a fixed base path.
type Manager struct {
	basePath string
	now      func() time.Time
}

// NewManager creates a release manager for basePath.
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath, now: time.Now}
}

// Deploy creates a new timestamped release directory, fetches the
// application into it, and atomically switches the current link. A fetch
// failure leaves the current link untouched, so a previous release stays
// live. Filesystem errors propagate with their cause attached.
func (m *Manager) Deploy(ctx context.Context, locator string, fetch FetchFunc) (*Release, error) {
	rel := &Release{
		BasePath:    m.basePath,
		VersionID:   m.now().Format(VersionLayout),
		CurrentLink: filepath.Join(m.basePath, CurrentLinkName),
	}
	rel.TargetPath = filepath.Join(m.basePath, rel.VersionID)

	if err := os.MkdirAll(m.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base path %s: %w", m.basePath, err)
	}

	if err := fetch(ctx, locator, rel.TargetPath); err != nil {
		return nil, fmt.Errorf("failed to fetch release %s: %w", rel.VersionID, err)
	}

	if err := switchLink(rel.CurrentLink, rel.TargetPath); err != nil {
		return nil, err
	}
	return rel, nil
}

// Current resolves the release directory the current link points at.
func (m *Manager) Current() (string, error) {
	link := filepath.Join(m.basePath, CurrentLinkName)
	target, err := os.Readlink(link)
	if err != nil {
		return "", fmt.Errorf("failed to resolve current release: %w", err)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(m.basePath, target)
	}
	return target, nil
}

// switchLink points link at target. The preferred path creates the new
// symlink under a temporary name and renames it over the old one, which is
// atomic on POSIX filesystems. If something other than a symlink occupies
// the link path, it falls back to remove-then-create; that path has a
// narrow window with no link present.
func switchLink(link, target string) error {
	info, err := os.Lstat(link)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink == 0:
		// A plain file or directory squats on the link path. Remove the
		// entry itself, never what a link would reference.
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("failed to remove %s: %w", link, err)
		}
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("failed to inspect %s: %w", link, err)
	}

	tmp := link + ".tmp"
	_ = os.Remove(tmp)
	if err := os.Symlink(target, tmp); err != nil {
		return fmt.Errorf("failed to create release link: %w", err)
	}
	if err := os.Rename(tmp, link); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to switch release link: %w", err)
	}
	return nil
}

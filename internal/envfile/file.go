package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileMode is the access mode enforced on the written env file. The file
// holds database credentials; owner-only read/write is a requirement, not
// a default.
const FileMode = 0o600

// line is one physical line of the file. Lines that do not parse as
// KEY=VALUE keep only their raw text and pass through every rewrite
// unchanged.
type line struct {
	raw   string
	key   string
	value string
	pair  bool
}

// File is an ordered sequence of env file lines, treated as a mapping from
// key to value where keys repeat (last write wins on lookup).
type File struct {
	lines []line
}

// Parse reads env file content into a File. Every input line is preserved,
// including ones that are not KEY=VALUE pairs.
func Parse(data []byte) *File {
	f := &File{}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return f
	}
	for _, raw := range strings.Split(content, "\n") {
		f.lines = append(f.lines, parseLine(raw))
	}
	return f
}

// Load reads and parses the env file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return Parse(data), nil
}

func parseLine(raw string) line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line{raw: raw}
	}
	key, value, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" || strings.ContainsAny(key, " \t") {
		return line{raw: raw}
	}
	return line{raw: raw, key: key, value: value, pair: true}
}

// Lookup returns the value for key. With repeated keys the last occurrence
// wins.
func (f *File) Lookup(key string) (string, bool) {
	value, found := "", false
	for _, l := range f.lines {
		if l.pair && l.key == key {
			value, found = l.value, true
		}
	}
	return value, found
}

// Set appends a KEY=VALUE line.
func (f *File) Set(key, value string) {
	raw := key + "=" + value
	f.lines = append(f.lines, line{raw: raw, key: key, value: value, pair: true})
}

// Remove drops every line whose key matches.
func (f *File) Remove(keys ...string) {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.pair && drop[l.key] {
			continue
		}
		kept = append(kept, l)
	}
	f.lines = kept
}

// Render serializes the file. Non-empty files end with a single trailing
// newline.
func (f *File) Render() []byte {
	if len(f.lines) == 0 {
		return []byte{}
	}
	var b strings.Builder
	for _, l := range f.lines {
		b.WriteString(l.raw)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteAtomic writes the file to path via a temporary file in the same
// directory plus rename, then restricts the mode to owner-only. A crash
// mid-write leaves either the old content or the new content in place,
// never a truncated file.
func (f *File) WriteAtomic(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp env file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(f.Render()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp env file: %w", err)
	}
	if err := tmp.Chmod(FileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set env file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp env file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace env file: %w", err)
	}
	return nil
}

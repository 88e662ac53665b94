package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock hands out strictly increasing seconds so consecutive deploys in
// one test get distinct version IDs.
func fakeClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func writeContent(t *testing.T) FetchFunc {
	t.Helper()
	return func(_ context.Context, locator, targetPath string) error {
		if err := os.MkdirAll(targetPath, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(targetPath, "app.txt"), []byte(locator), 0o644)
	}
}

func TestDeploy_CreatesTimestampedReleaseAndLink(t *testing.T) {
	t.Parallel()
	base := filepath.Join(t.TempDir(), "srv", "app")

	m := NewManager(base)
	m.now = func() time.Time { return time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC) }

	rel, err := m.Deploy(context.Background(), "git@example.com:shop.git", writeContent(t))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-23-10-30-00", rel.VersionID)
	assert.Equal(t, filepath.Join(base, "2026-08-23-10-30-00"), rel.TargetPath)
	assert.DirExists(t, rel.TargetPath)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, rel.TargetPath, current)
}

func TestDeploy_SecondDeployRepointsLink(t *testing.T) {
	t.Parallel()
	base := t.TempDir()

	m := NewManager(base)
	m.now = fakeClock(time.Date(2026, 8, 23, 11, 0, 0, 0, time.UTC))

	first, err := m.Deploy(context.Background(), "v1", writeContent(t))
	require.NoError(t, err)
	second, err := m.Deploy(context.Background(), "v2", writeContent(t))
	require.NoError(t, err)

	require.NotEqual(t, first.TargetPath, second.TargetPath)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, second.TargetPath, current)

	// The first release stays on disk, untouched.
	data, err := os.ReadFile(filepath.Join(first.TargetPath, "app.txt"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestDeploy_FetchFailureLeavesLinkUnchanged(t *testing.T) {
	t.Parallel()
	base := t.TempDir()

	m := NewManager(base)
	m.now = fakeClock(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))

	first, err := m.Deploy(context.Background(), "v1", writeContent(t))
	require.NoError(t, err)

	fetchErr := errors.New("remote unreachable")
	_, err = m.Deploy(context.Background(), "v2", func(context.Context, string, string) error {
		return fetchErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, first.TargetPath, current)
}

func TestDeploy_FetchFailureWithNoPriorRelease(t *testing.T) {
	t.Parallel()
	base := t.TempDir()

	m := NewManager(base)
	_, err := m.Deploy(context.Background(), "v1", func(context.Context, string, string) error {
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	_, err = os.Lstat(filepath.Join(base, CurrentLinkName))
	assert.True(t, os.IsNotExist(err), "current link must not exist after a failed first deploy")
}

func TestDeploy_ReplacesSquattingFile(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, CurrentLinkName), []byte("junk"), 0o644))

	m := NewManager(base)
	rel, err := m.Deploy(context.Background(), "v1", writeContent(t))
	require.NoError(t, err)

	current, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, rel.TargetPath, current)
}

func TestDeploy_CreatesBasePathRecursively(t *testing.T) {
	t.Parallel()
	base := filepath.Join(t.TempDir(), "a", "b", "c")

	m := NewManager(base)
	_, err := m.Deploy(context.Background(), "v1", writeContent(t))
	require.NoError(t, err)
	assert.DirExists(t, base)
}

func TestCurrent_NoLink(t *testing.T) {
	t.Parallel()
	m := NewManager(t.TempDir())
	_, err := m.Current()
	assert.Error(t, err)
}

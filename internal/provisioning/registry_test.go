package provisioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopAction(kind Kind) Action {
	return ActionFunc{K: kind, F: func(*Context) error { return nil }}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(noopAction(KindRuntime)))

	a, err := r.Get(KindRuntime)
	require.NoError(t, err)
	assert.Equal(t, KindRuntime, a.Kind())
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(noopAction(KindRuntime)))

	err := r.Register(noopAction(KindRuntime))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_NilAction(t *testing.T) {
	t.Parallel()
	assert.Error(t, NewRegistry().Register(nil))
}

func TestRegistry_UnknownKind(t *testing.T) {
	t.Parallel()
	_, err := NewRegistry().Get(KindRelease)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no action registered")
}

func TestRegistry_Step(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(noopAction(KindRelease)))

	s, err := r.Step("Deploy application", KindRelease, true)
	require.NoError(t, err)
	assert.Equal(t, "Deploy application", s.Name)
	assert.True(t, s.Required)
	assert.Equal(t, KindRelease, s.Action.Kind())

	_, err = r.Step("Missing", KindRuntime, false)
	assert.Error(t, err)
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.MustRegister(noopAction(KindRuntime))
	assert.Panics(t, func() { r.MustRegister(noopAction(KindRuntime)) })
}

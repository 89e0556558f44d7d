package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ id int }

func TestRegistry_ScopedInstances(t *testing.T) {
	reg := New[*counter]()
	built := 0
	require.NoError(t, reg.Register("mysql", func() (*counter, error) {
		built++
		return &counter{id: built}, nil
	}))

	scope := reg.NewScope()
	a, err := scope.Resolve("mysql")
	require.NoError(t, err)
	b, err := scope.Resolve("mysql")
	require.NoError(t, err)
	assert.Same(t, a, b)

	other, err := reg.NewScope().Resolve("mysql")
	require.NoError(t, err)
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, built)
}

func TestRegistry_Duplicate(t *testing.T) {
	reg := New[int]()
	f := func() (int, error) { return 1, nil }

	require.NoError(t, reg.Register("mysql", f))
	assert.ErrorIs(t, reg.Register("mysql", f), ErrDuplicate)
	require.NoError(t, reg.Register("mssql", f))

	assert.Equal(t, []string{"mssql", "mysql"}, reg.Names())
}

func TestScope_NotRegistered(t *testing.T) {
	reg := New[int]()
	_, err := reg.NewScope().Resolve("oracle")
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestScope_FactoryError(t *testing.T) {
	reg := New[int]()
	boom := errors.New("boom")
	require.NoError(t, reg.Register("mysql", func() (int, error) { return 0, boom }))

	scope := reg.NewScope()
	_, err := scope.Resolve("mysql")
	assert.ErrorIs(t, err, boom)

	// Failures are not cached.
	_, err = scope.Resolve("mysql")
	assert.ErrorIs(t, err, boom)
}

package mssql

import (
	"testing"

	"forum-provider/core/data"
	"forum-provider/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	reg := registry.New[data.Access]()
	require.NoError(t, Register(reg, db))
	assert.ErrorIs(t, Register(reg, db), registry.ErrDuplicate)

	access, err := reg.NewScope().Resolve(ProviderName)
	require.NoError(t, err)
	assert.Equal(t, ProviderName, access.ProviderName())
	assert.Same(t, db, access.DB())
}

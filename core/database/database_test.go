package database

import (
	"testing"

	"forum-provider/core/naming"
	"forum-provider/core/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func sqliteDialect(qualifier string) provider.Dialect {
	return provider.NewDialect("sqlite", naming.New(qualifier), func(dsn string) gorm.Dialector {
		return sqlite.Open(dsn)
	})
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{TimeoutSeconds: 1}
		dialect := provider.NewDialect("mysql", naming.New(""), func(dsn string) gorm.Dialector {
			return mysql.Open(dsn)
		})

		// Unused port, connect should fail (timeout or refused)
		db, err := Connect(cfg, dialect, "root:wrongpassword@tcp(127.0.0.1:9999)/forum?timeout=1s")
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Naming Strategy Applied", func(t *testing.T) {
		db, err := Connect(Config{}, sqliteDialect("yaf_"), "file:connect_naming?mode=memory&cache=shared")
		require.NoError(t, err)

		type Board struct {
			BoardID int `gorm:"primaryKey"`
			Name    string
		}
		require.NoError(t, db.AutoMigrate(&Board{}))

		ok, err := HasTable(db, "yaf_Board")
		require.NoError(t, err)
		assert.True(t, ok)

		cols, err := GetTableColumns(db, "yaf_Board")
		require.NoError(t, err)
		fields := []string{}
		for _, c := range cols {
			fields = append(fields, c.Field)
		}
		assert.ElementsMatch(t, []string{"boardid", "name"}, fields)
	})
}

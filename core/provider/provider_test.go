package provider

import (
	"testing"

	"forum-provider/core/naming"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDefaults_OrdinalOrder(t *testing.T) {
	params := []ConnectionParam{
		NewConnectionParam(11, "Integrated Security", "true"),
		NewConnectionParam(0, "Password", ""),
		NewConnectionParam(1, "Data Source", "(local)"),
	}

	assert.Equal(t, []Param{
		{Name: "Password", Value: ""},
		{Name: "Data Source", Value: "(local)"},
		{Name: "Integrated Security", Value: "true"},
	}, Defaults(params))

	// The input slice is left untouched.
	assert.Equal(t, 11, params[0].Ordinal())
}

func TestValidateParams(t *testing.T) {
	assert.NoError(t, ValidateParams([]ConnectionParam{
		NewConnectionParam(0, "Password", ""),
		NewConnectionParam(1, "Server", "localhost"),
	}))

	err := ValidateParams([]ConnectionParam{
		NewConnectionParam(0, "Password", ""),
		NewConnectionParam(0, "Server", "localhost"),
	})
	assert.Error(t, err)
}

func TestDialect(t *testing.T) {
	strategy := naming.New("yaf_")
	d := NewDialect("sqlite", strategy, func(dsn string) gorm.Dialector { return sqlite.Open(dsn) })

	assert.Equal(t, "sqlite", d.Name())
	assert.Same(t, strategy, d.Naming())
	assert.Equal(t, "sqlite", d.Open(":memory:").Name())

	cfg := d.GormConfig()
	assert.Equal(t, "yaf_Board", cfg.NamingStrategy.TableName("Board"))
	assert.Equal(t, "BoardID", cfg.NamingStrategy.ColumnName("yaf_Board", "BoardID"))
}

func TestProvider_HasFunctions(t *testing.T) {
	assert.False(t, Provider{Name: "mssql"}.HasFunctions())
}

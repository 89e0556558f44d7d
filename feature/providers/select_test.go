package providers

import (
	"testing"

	"forum-provider/core/database"
	"forum-provider/feature/mssql"
	"forum-provider/feature/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		wantName  string
		dialect   string
		functions bool
	}{
		{"MySQL", "mysql", mysql.ProviderName, "mysql", true},
		{"MariaDB alias", "MariaDB", mysql.ProviderName, "mysql", true},
		{"MSSQL", "mssql", mssql.ProviderName, "sqlserver", false},
		{"SQL Server alias", " SQLServer ", mssql.ProviderName, "sqlserver", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Select(&database.Config{Provider: tt.provider, Qualifier: "yaf_"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.dialect, p.Dialect.Name())
			assert.Equal(t, "yaf_Topic", p.Dialect.Naming().TableName("Topic"))
			assert.Equal(t, tt.wantName, p.Information.ProviderName())
			assert.Equal(t, tt.functions, p.HasFunctions())
			assert.NotNil(t, p.Register)
		})
	}
}

func TestSelect_Unknown(t *testing.T) {
	_, err := Select(&database.Config{Provider: "oracle"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "oracle")

	_, err = Select(nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestSelect_LateBoundConnectionString(t *testing.T) {
	cfg := &database.Config{Provider: "mysql", Host: "db1", User: "forum", Name: "yaf"}
	p, err := Select(cfg)
	require.NoError(t, err)

	first, err := p.Information.ConnectionString()
	require.NoError(t, err)
	assert.Contains(t, first, "tcp(db1:3306)")

	cfg.Host = "db2"
	second, err := p.Information.ConnectionString()
	require.NoError(t, err)
	assert.Contains(t, second, "tcp(db2:3306)")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"mssql", "mysql"}, Names())
}

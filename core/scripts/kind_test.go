package scripts

import (
	"testing"

	"forum-provider/core/database"
	"forum-provider/feature/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" FullText ")
	require.NoError(t, err)
	assert.Equal(t, FullText, got)

	_, err = ParseKind("drop")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	info := mysql.NewInformation(&database.Config{})

	install, err := List(info, Install)
	require.NoError(t, err)
	assert.Equal(t, info.InstallScripts(), install)

	providers, err := List(info, Providers)
	require.NoError(t, err)
	assert.Equal(t, info.ProviderScripts(), providers)

	fulltext, err := List(info, FullText)
	require.NoError(t, err)
	assert.Equal(t, []string{"mysql/fulltext.sql"}, fulltext)

	_, err = List(info, Kind("bogus"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Source: SourceDir}.Validate())
	assert.NoError(t, Config{Source: SourceBucket}.Validate())
	assert.Error(t, Config{Source: "ftp"}.Validate())
	assert.Error(t, Config{}.Validate())
}

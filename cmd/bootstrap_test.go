package cmd

import (
	"testing"

	"forum-provider/core/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	params, err := parseAssignments([]string{"Server=db1", "User ID=forum", "Password=a=b", "Database="})
	require.NoError(t, err)
	assert.Equal(t, []provider.Param{
		{Name: "Server", Value: "db1"},
		{Name: "User ID", Value: "forum"},
		{Name: "Password", Value: "a=b"},
		{Name: "Database", Value: ""},
	}, params)

	_, err = parseAssignments([]string{"Server"})
	assert.Error(t, err)

	_, err = parseAssignments([]string{"=value"})
	assert.Error(t, err)
}

func TestKindsFor(t *testing.T) {
	assert.Equal(t, []string{"install"}, kindNames(kindsFor(installFlags{})))
	assert.Equal(t, []string{"upgrade", "providers", "azure", "fulltext"},
		kindNames(kindsFor(installFlags{upgrade: true, providers: true, azure: true, fulltext: true})))
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "info", "connstring", "exec", "install", "publish", "verify"} {
		assert.True(t, names[want], want)
	}
}

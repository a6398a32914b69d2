package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensCmd_DisplaysResolvedSet(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)
	setViper(t, authorConfigKey, "Jane Doe")
	setViper(t, organizationConfigKey, "Acme")
	setViper(t, bundlePrefixConfigKey, "com.acme")

	cmd := newRootCmd()
	cmd.AddCommand(newTokensCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"tokens", "--project", "Widget"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.tokensCalls, 1)
	args := fake.tokensCalls[0]
	assert.Equal(t, "Widget", args.Project)
	assert.Equal(t, "Jane Doe", args.Author)
	assert.Equal(t, "Acme", args.Organization)
	assert.Equal(t, "com.acme", args.BundlePrefix)
}

func TestTokensCmd_NoProject(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newRootCmd()
	cmd.AddCommand(newTokensCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"tokens"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.tokensCalls, 1)
	assert.Empty(t, fake.tokensCalls[0].Project)
}

func TestNewTokensCmd(t *testing.T) {
	cmd := newTokensCmd()

	assert.Equal(t, "tokens", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup(projectFlagName))
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "plate.dev/pkg/plate/internal/model"
)

func TestNewCmd_ScaffoldsWithDefaults(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)
	setViper(t, templateFlagName, "https://example.com/templates/swift.git")
	setViper(t, authorConfigKey, "Jane Doe")

	cmd := newRootCmd()
	cmd.AddCommand(newNewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"new", "Widget"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.scaffoldCalls, 1)
	args := fake.scaffoldCalls[0]
	assert.Equal(t, "Widget", args.Project)
	assert.Equal(t, m.Path("Widget"), args.Destination)
	assert.Equal(t, "https://example.com/templates/swift.git", args.Template)
	assert.Equal(t, "Jane Doe", args.Author)
	assert.Empty(t, args.Platform)
	assert.False(t, args.SkipPost)
	assert.False(t, args.Force)
	assert.True(t, args.NoInput, "stdin is not a terminal under test")
}

func TestNewCmd_ExplicitDestinationAndPlatform(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)
	setViper(t, templateFlagName, "./template")

	cmd := newRootCmd()
	cmd.AddCommand(newNewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"new", "Widget", "out/widget", "--platform", "macos", "--force"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.scaffoldCalls, 1)
	args := fake.scaffoldCalls[0]
	assert.Equal(t, m.Path("out/widget"), args.Destination)
	assert.Equal(t, "macos", args.Platform)
	assert.True(t, args.Force)
}

func TestNewCmd_SkipPost(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)
	setViper(t, templateFlagName, "./template")

	cmd := newRootCmd()
	cmd.AddCommand(newNewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"new", "Widget", "--skip-post"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.scaffoldCalls, 1)
	assert.True(t, fake.scaffoldCalls[0].SkipPost)
}

func TestNewCmd_FailsWithoutTemplate(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)
	setViper(t, templateFlagName, "")

	cmd := newRootCmd()
	cmd.AddCommand(newNewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"new", "Widget"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no template")
	assert.Empty(t, fake.scaffoldCalls)
}

func TestNewNewCmd(t *testing.T) {
	cmd := newNewCmd()

	assert.Equal(t, "new <name> [destination]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, newLongDescription, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup(platformFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(skipPostFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(forceFlagName))
}

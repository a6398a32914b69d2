// Package cmd provides the root command and CLI setup for plate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"plate.dev/pkg/plate/internal/adapter"
	"plate.dev/pkg/plate/internal/controller"
	"plate.dev/pkg/plate/internal/domain"
	m "plate.dev/pkg/plate/internal/model"
)

var fsAdapter adapter.TemplateFSAdapter
var gitAdapter adapter.GitAdapter
var manifestStore adapter.ManifestStore
var commandRunner adapter.CommandRunner
var resolver domain.Resolver
var workflow domain.Workflow
var ui controller.UI

// templateFlag is a root-level flag shared by commands that fetch templates.
var templateFlag string

// authorFlag, organizationFlag, bundleIDFlag and bundlePrefixFlag feed the
// substitution resolver.
var authorFlag string
var organizationFlag string
var bundleIDFlag string
var bundlePrefixFlag string

// noInputFlag disables interactive prompting when set.
var noInputFlag bool

// atomicFlag switches the rewriter to write-to-temp-then-rename.
var atomicFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd)
	fsAdapter = adapter.NewLocalTemplateFSAdapter()
	gitAdapter = adapter.NewLocalGitAdapter()
	manifestStore = adapter.NewLocalManifestStore()
	commandRunner = adapter.NewLocalCommandRunner(postTimeout())
	resolver = domain.NewResolver(gitAdapter, controller.NewTextPrompter(os.Stdin, os.Stdout))
	workflow = domain.NewWorkflow(
		fsAdapter,
		gitAdapter,
		manifestStore,
		commandRunner,
		resolver,
		ui,
	)
}

const tokensHelp = `Recognized tokens (replaced in file names, folder names and file contents):
  {PROJECT}       project name
  {AUTHOR}        author name
  {YEAR}          current year
  {TODAY}         current date, short form
  {DATE}          current date, medium form
  {ORGANIZATION}  organization name
  {BUNDLEID}      bundle/package identifier`

const rootLongDescription = `Plate scaffolds a new project from a template repository: it clones the
template, copies a platform subtree into the destination and rewrites
placeholder tokens in file names, folder names and file contents.

` + tokensHelp

const newLongDescription = `Scaffold a new project from a template repository or local template
directory (default destination: ./<name>).

` + tokensHelp

const rewriteLongDescription = `Rewrite placeholder tokens in an existing directory tree, in place.
Hidden entries (names starting with a dot) are never touched.

` + tokensHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plate",
		Short: "Project scaffolding from template repositories",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&templateFlag, templateFlagName, "t",
			viper.GetString(templateFlagName),
			"template repository URL or local template directory",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(templateFlagName), templateFlagName)

	cmd.PersistentFlags().StringVarP(&authorFlag, authorFlagName, "a", viper.GetString(authorConfigKey), "author name (default: git config user.name)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(authorFlagName), authorConfigKey)

	cmd.PersistentFlags().StringVar(&organizationFlag, organizationFlagName, viper.GetString(organizationConfigKey), "organization name")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(organizationFlagName), organizationConfigKey)

	cmd.PersistentFlags().StringVar(&bundleIDFlag, bundleIDFlagName, "", "bundle/package identifier")

	cmd.PersistentFlags().StringVar(&bundlePrefixFlag, bundlePrefixFlagName, viper.GetString(bundlePrefixConfigKey), "prefix for derived bundle identifiers (e.g. com.example)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(bundlePrefixFlagName), bundlePrefixConfigKey)

	cmd.PersistentFlags().BoolVar(&noInputFlag, noInputFlagName, viper.GetBool(noInputFlagName), "never prompt; fail when a required value is missing")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noInputFlagName), noInputFlagName)

	cmd.PersistentFlags().BoolVar(&atomicFlag, atomicFlagName, viper.GetBool(atomicFlagName), "write rewritten files via temp-file-and-rename")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(atomicFlagName), atomicFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// noInput reports whether prompting is disabled, either explicitly or
// because stdin is not a terminal.
func noInput() bool {
	return viper.GetBool(noInputFlagName) || !controller.IsTTY(os.Stdin)
}

// destinationFor picks the destination path: the optional second positional
// argument, or ./<project>.
func destinationFor(project string, args []string) m.Path {
	if len(args) > 1 {
		return m.Path(args[1])
	}

	return m.Path(project)
}

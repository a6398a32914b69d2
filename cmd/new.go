package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plate.dev/pkg/plate/internal/domain"
)

var newPlatformFlag string
var newSkipPostFlag bool
var newForceFlag bool

// newCmd represents the new command.
var newCmd = newNewCmd()

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name> [destination]",
		Short: "Scaffold a new project from a template",
		Long:  newLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			project := args[0]

			template := viper.GetString(templateFlagName)
			if template == "" {
				return fmt.Errorf("no template given; pass --template or set it in %s", configFileName)
			}

			return workflow.Scaffold(context.Background(), domain.ScaffoldArgs{
				Project:      project,
				Destination:  destinationFor(project, args),
				Template:     template,
				Platform:     newPlatformFlag,
				Author:       viper.GetString(authorConfigKey),
				Organization: viper.GetString(organizationConfigKey),
				BundleID:     bundleIDFlag,
				BundlePrefix: viper.GetString(bundlePrefixConfigKey),
				NoInput:      noInput(),
				SkipPost:     viper.GetBool(skipPostFlagName),
				Force:        newForceFlag,
				Atomic:       viper.GetBool(atomicFlagName),
			})
		},
	}

	configureNewFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func configureNewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&newPlatformFlag, platformFlagName, "p", "", "platform subfolder of the template to scaffold from")
	cmd.Flags().BoolVar(&newSkipPostFlag, skipPostFlagName, viper.GetBool(skipPostFlagName), "skip the template's post-scaffold commands")
	bindFlagToConfig(cmd.Flags().Lookup(skipPostFlagName), skipPostFlagName)
	cmd.Flags().BoolVarP(&newForceFlag, forceFlagName, "f", false, "scaffold into an existing destination directory")
}

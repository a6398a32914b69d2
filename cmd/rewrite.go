package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plate.dev/pkg/plate/internal/domain"
	m "plate.dev/pkg/plate/internal/model"
)

var rewriteProjectFlag string
var rewriteExcludeFlag []string

// rewriteCmd represents the rewrite command.
var rewriteCmd = newRewriteCmd()

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite <dir>",
		Short: "Rewrite placeholder tokens in an existing tree",
		Long:  rewriteLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Rewrite(context.Background(), domain.RewriteArgs{
				Root:         m.Path(args[0]),
				Project:      rewriteProjectFlag,
				Author:       viper.GetString(authorConfigKey),
				Organization: viper.GetString(organizationConfigKey),
				BundleID:     bundleIDFlag,
				BundlePrefix: viper.GetString(bundlePrefixConfigKey),
				NoInput:      noInput(),
				Atomic:       viper.GetBool(atomicFlagName),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	configureRewriteFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func configureRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rewriteProjectFlag, projectFlagName, "n", "", "project name the {PROJECT} token resolves to")
	cmd.Flags().StringArrayVarP(&rewriteExcludeFlag, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "entry names to leave untouched (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	_ = cmd.MarkFlagRequired(projectFlagName)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plate.dev/pkg/plate/internal/domain"
)

var tokensProjectFlag string

// tokensCmd represents the tokens command.
var tokensCmd = newTokensCmd()

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show recognized tokens and their resolved values",
		Long:  "Show the tokens the rewriter recognizes and the values they would resolve to, without prompting.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Tokens(context.Background(), domain.TokensArgs{
				Project:      tokensProjectFlag,
				Author:       viper.GetString(authorConfigKey),
				Organization: viper.GetString(organizationConfigKey),
				BundleID:     bundleIDFlag,
				BundlePrefix: viper.GetString(bundlePrefixConfigKey),
			})
		},
	}

	cmd.Flags().StringVarP(&tokensProjectFlag, projectFlagName, "n", "", "project name the {PROJECT} token resolves to")

	return cmd
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

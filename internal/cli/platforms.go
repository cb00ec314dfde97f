package cli

import (
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
	"github.com/spf13/cobra"
)

// NewPlatformsCmd creates the platforms command.
func NewPlatformsCmd() *cobra.Command {
	var (
		src   sourceOptions
		state string
	)

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List SDK platforms with their system images",
		Long: `List every SDK platform in API level order, newest first, together with
the system images attached to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlatforms(cmd, src, state)
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().StringVar(&state, "state", "all", "Platform state (installed, available, all)")

	return cmd
}

func runPlatforms(cmd *cobra.Command, src sourceOptions, state string) error {
	mask, err := sdk.ParseStateMask(state)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	packages, err := loadPackages(cmd.Context(), cfg, src)
	if err != nil {
		return err
	}

	packages = sdk.FilterByState(sdk.FilterByKind(packages, sdk.KindSdkPlatform), mask)
	sdk.SortPackages(packages)

	platforms := make([]*sdk.SdkPlatform, 0, len(packages))
	for _, p := range packages {
		platforms = append(platforms, p.(*sdk.SdkPlatform))
	}

	return writePlatforms(cmd.OutOrStdout(), cfg.Settings.OutputFormat, platforms)
}

package cli

import (
	"strings"

	"github.com/qt-creator/qt-creator-sub139/pkg/filter"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
	"github.com/spf13/cobra"
)

type listOptions struct {
	source sourceOptions
	state  string
	kinds  []string
	expr   string
	sort   bool
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SDK packages",
		Long: `List the packages reported by "sdkmanager --list --verbose".

Without --input, sdkmanager is run against the configured SDK root. With --input,
a captured listing is parsed instead; captures may be compressed or stored in an
archive (select the file with --entry).

--filter takes a Tengo expression evaluated per package, for example
  kind == "SdkPlatformPackage" && apiLevel >= 33
Available variables: ` + strings.Join(filter.Variables, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	addSourceFlags(cmd, &opts.source)
	cmd.Flags().StringVar(&opts.state, "state", "all", "Package state (installed, available, all)")
	cmd.Flags().StringSliceVar(&opts.kinds, "kind", nil, "Package kinds, e.g. ndk,build-tools or SdkPlatformPackage")
	cmd.Flags().StringVar(&opts.expr, "filter", "", "Tengo filter expression")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "Sort by kind, then kind-specific order")

	return cmd
}

func addSourceFlags(cmd *cobra.Command, src *sourceOptions) {
	cmd.Flags().StringVarP(&src.input, "input", "i", "", "Read a captured listing instead of running sdkmanager (- for stdin)")
	cmd.Flags().StringVar(&src.entry, "entry", "", "File to read when --input is an archive")
}

func runList(cmd *cobra.Command, opts listOptions) error {
	stateMask, err := sdk.ParseStateMask(opts.state)
	if err != nil {
		return err
	}
	kindMask, err := parseKinds(opts.kinds)
	if err != nil {
		return err
	}

	var expr *filter.Filter
	if opts.expr != "" {
		if expr, err = filter.Compile(opts.expr); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	packages, err := loadPackages(cmd.Context(), cfg, opts.source)
	if err != nil {
		return err
	}

	packages = sdk.FilterByKind(sdk.FilterByState(packages, stateMask), kindMask)
	if expr != nil {
		if packages, err = expr.Apply(packages); err != nil {
			return err
		}
	}
	if opts.sort {
		sdk.SortPackages(packages)
	}

	return writePackages(cmd.OutOrStdout(), cfg.Settings.OutputFormat, packages)
}

// kindAliases maps sdk-style path prefixes to kinds.
var kindAliases = map[string]sdk.Kind{
	"tools":          sdk.KindSdkTools,
	"cmdline-tools":  sdk.KindSdkTools,
	"build-tools":    sdk.KindBuildTools,
	"platform-tools": sdk.KindPlatformTools,
	"platforms":      sdk.KindSdkPlatform,
	"system-images":  sdk.KindSystemImage,
	"emulator":       sdk.KindEmulatorTools,
	"ndk":            sdk.KindNDK,
	"extras":         sdk.KindExtraTools,
	"generic":        sdk.KindGeneric,
}

func parseKinds(names []string) (sdk.Kind, error) {
	if len(names) == 0 {
		return sdk.AnyValidKind, nil
	}

	var mask sdk.Kind
	for _, name := range names {
		if kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			mask |= kind
			continue
		}
		kind, err := sdk.ParseKind(name)
		if err != nil {
			return 0, err
		}
		mask |= kind
	}
	return mask, nil
}

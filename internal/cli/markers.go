package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/qt-creator/qt-creator-sub139/pkg/sdkmanager"
	"github.com/spf13/cobra"
)

type markerView struct {
	Line    string `json:"line" yaml:"line"`
	Marker  string `json:"marker" yaml:"marker"`
	Section bool   `json:"section" yaml:"section"`
}

// NewMarkersCmd creates the markers command.
func NewMarkersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markers LINE...",
		Short: "Classify listing lines",
		Long: `Print the marker each argument is classified as when it starts a record
in an sdkmanager listing. Useful when a new package kind shows up as Generic.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMarkers,
	}

	return cmd
}

func runMarkers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	views := make([]markerView, 0, len(args))
	for _, line := range args {
		marker := sdkmanager.ParseMarkers(line)
		views = append(views, markerView{Line: line, Marker: marker.String(), Section: marker.IsSection()})
	}

	done, err := writeStructured(cmd.OutOrStdout(), cfg.Settings.OutputFormat, views)
	if done || err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LINE\tMARKER\tSECTION")
	for _, v := range views {
		_, _ = fmt.Fprintf(tw, "%q\t%s\t%t\n", v.Line, v.Marker, v.Section)
	}
	return tw.Flush()
}

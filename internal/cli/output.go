package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/qt-creator/qt-creator-sub139/pkg/config"
	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
	"gopkg.in/yaml.v3"
)

// writeStructured encodes v as JSON or YAML. It reports false for the table format.
func writeStructured(w io.Writer, format string, v interface{}) (bool, error) {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(config.YAMLIndent)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	case formatTable:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrInvalidOutput, "%q", format)
	}
}

func writePackages(w io.Writer, format string, packages []sdk.Package) error {
	done, err := writeStructured(w, format, sdk.NewViews(packages))
	if done || err != nil {
		return err
	}

	if len(packages) == 0 {
		_, err := fmt.Fprintln(w, "No packages found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tKIND\tSTATE\tREVISION\tDESCRIPTION")
	for _, p := range packages {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.SdkStylePath(), p.Kind(), p.State(), p.Revision(), truncate(p.DescriptionText(), MaxDescriptionLength))
	}
	return tw.Flush()
}

func writePlatforms(w io.Writer, format string, platforms []*sdk.SdkPlatform) error {
	views := make([]sdk.View, 0, len(platforms))
	for _, p := range platforms {
		views = append(views, sdk.NewView(p))
	}
	done, err := writeStructured(w, format, views)
	if done || err != nil {
		return err
	}

	if len(platforms) == 0 {
		_, err := fmt.Fprintln(w, "No platforms found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PLATFORM\tAPI\tSTATE\tREVISION\tSYSTEM IMAGES")
	for _, p := range platforms {
		images := p.SystemImages(sdk.AnyValidState)
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\n", p.DisplayText(), p.APILevel(), p.State(), p.Revision(), len(images))
		for _, image := range images {
			_, _ = fmt.Fprintf(tw, "  %s\t\t%s\t%s\t%s\n", image.SdkStylePath(), image.State(), image.Revision(), image.ABI())
		}
	}
	return tw.Flush()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

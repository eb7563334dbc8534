package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/ec3"
)

var sectionClassifyFormat string

var sectionClassifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a cross-section to EN 1993-1-1 Table 5.2",
	Long: `Classify the web (internal part) and each flange outstand of the
section, taking every part as fully in compression.

The section class is the highest (worst) class of its parts.

Examples:
  gosteel section classify --type rolled --b 314 --tf 64 --tw 36 --dw 868.1 --r 30
  gosteel section classify -f girder.yaml --format json`,
	RunE: runSectionClassify,
}

func init() {
	sectionCmd.AddCommand(sectionClassifyCmd)

	sectionClassifyCmd.Flags().StringVar(&sectionClassifyFormat, "format", "text", "Output format: text or json")
}

func runSectionClassify(cmd *cobra.Command, args []string) error {
	ls, err := loadSection()
	if err != nil {
		return err
	}
	logWarnings(ls)

	c := classify.Classify(ls.CS)
	logger.Info("section classified", "section", ls.Name, "class", c.Section)

	out := cmd.OutOrStdout()
	switch sectionClassifyFormat {
	case "json":
		return writeJSON(out, c)
	case "text":
	default:
		return errors.Errorf("unknown format %q (want text or json)", sectionClassifyFormat)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     SECTION CLASSIFICATION - EN 1993-1-1 TABLE 5.2")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if ls.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", ls.Name)
	}
	fmt.Fprintf(out, "  Material: S355 (fy = %.0f MPa, ε = %.2f)\n", ec3.Fy, ec3.Epsilon)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "COMPRESSION PARTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	printClassTable(cmd, c)
	fmt.Fprintln(out)

	fmt.Fprint(out, classSummary(c))
	fmt.Fprintln(out)
	return nil
}

func printClassTable(cmd *cobra.Command, c classify.Classification) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	web := ec3.InternalCompression.Scaled()
	outstand := ec3.OutstandCompression.Scaled()

	fmt.Fprintf(w, "  Part\tc/t\tClass 1\tClass 2\tClass 3\tClass\n")
	fmt.Fprintf(w, "  ────\t───\t───────\t───────\t───────\t─────\n")
	fmt.Fprintf(w, "  Web (internal)\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n", c.WebRatio, web[0], web[1], web[2], c.Web)
	fmt.Fprintf(w, "  Top flange (outstand)\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n", c.FlangeTopRatio, outstand[0], outstand[1], outstand[2], c.FlangeTop)
	fmt.Fprintf(w, "  Bottom flange (outstand)\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n", c.FlangeBotRatio, outstand[0], outstand[1], outstand[2], c.FlangeBot)
	w.Flush()
}

func classSummary(c classify.Classification) string {
	var analysis string
	switch {
	case c.Plastic():
		analysis = "plastic global analysis allowed"
	case c.Section == 2:
		analysis = "plastic resistance, elastic global analysis"
	case c.Section == 3:
		analysis = "elastic resistance only"
	default:
		analysis = "effective section required"
	}

	return diagram.DrawSummaryBox(fmt.Sprintf("SECTION CLASS %d", c.Section), []string{
		fmt.Sprintf("Web: class %d", c.Web),
		fmt.Sprintf("Top flange: class %d", c.FlangeTop),
		fmt.Sprintf("Bottom flange: class %d", c.FlangeBot),
		analysis,
	})
}

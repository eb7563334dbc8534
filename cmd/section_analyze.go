package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/section"
)

var (
	sectionAnalyzeFormat      string
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeExportFile  string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the properties of a cross-section",
	Long: `Compute the geometric, elastic and plastic properties of an open
steel section symmetric about its minor axis.

Values are given in mm, with second moments also in cm⁴ and
moduli also in cm³. Neutral axes are measured from the bottom fiber (yy)
and from the left fiber (zz).

Examples:
  gosteel section analyze --type rolled --b 314 --tf 64 --tw 36 --dw 868.1 --r 30
  gosteel section analyze -f girder.yaml --diagram
  gosteel section analyze -f girder.json --format json
  gosteel section analyze -f girder.json -o girder.png`,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVar(&sectionAnalyzeFormat, "format", "text", "Output format: text or json")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII cross-section diagram")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

// analyzeOutput is the JSON form of the analyze command
type analyzeOutput struct {
	Name       string             `json:"name,omitempty"`
	Dimensions section.Dimensions `json:"dimensions"`
	Properties section.Properties `json:"properties"`
	Warnings   []section.Warning  `json:"warnings,omitempty"`
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	ls, err := loadSection()
	if err != nil {
		return err
	}
	logWarnings(ls)

	cs := ls.CS
	p := cs.Properties()
	d := cs.Dimensions()
	out := cmd.OutOrStdout()

	switch sectionAnalyzeFormat {
	case "json":
		if err := writeJSON(out, analyzeOutput{Name: ls.Name, Dimensions: d, Properties: p, Warnings: cs.Warnings()}); err != nil {
			return err
		}
	case "text":
		printProperties(cmd, ls)
	default:
		return errors.Errorf("unknown format %q (want text or json)", sectionAnalyzeFormat)
	}

	if sectionAnalyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIISectionDiagram(diagram.NewSectionDiagramData(ls.Name, cs)))
	}

	if sectionAnalyzeExportFile != "" {
		if err := diagram.ExportSectionDiagram(diagram.NewSectionDiagramData(ls.Name, cs), sectionAnalyzeExportFile); err != nil {
			return errors.Wrap(err, "exporting diagram")
		}
		logger.Info("diagram exported", "file", sectionAnalyzeExportFile)
		fmt.Fprintf(cmd.ErrOrStderr(), "Diagram exported to: %s\n", sectionAnalyzeExportFile)
	}

	return nil
}

func printProperties(cmd *cobra.Command, ls *loadedSection) {
	cs := ls.CS
	p := cs.Properties()
	d := cs.Dimensions()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          CROSS-SECTION PROPERTIES - EN 1993-1-1")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if ls.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", ls.Name)
	}
	fmt.Fprintf(out, "  Cross-section type: %s\n", p.Kind)
	fmt.Fprintln(out)

	// Input dimensions
	fmt.Fprintln(out, "SECTION DIMENSIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Top flange (bf × tf):\t%g × %g mm\n", d.BfTop, d.TfTop)
	fmt.Fprintf(w, "  Web (dw × tw):\t%g × %g mm\n", d.Dw, d.Tw)
	fmt.Fprintf(w, "  Bottom flange (bf × tf):\t%g × %g mm\n", d.BfBot, d.TfBot)
	fmt.Fprintf(w, "  Root radius (r):\t%g mm\n", d.R)
	w.Flush()
	fmt.Fprintln(out)

	// Geometry
	fmt.Fprintln(out, "GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total depth (h):\t%s mm\n", num(p.H, 2))
	fmt.Fprintf(w, "  Cross-section area (A):\t%s mm²\n", num(p.A, 2))
	fmt.Fprintf(w, "  Mass per metre:\t%s kg/m\n", num(p.Mpm, 2))
	w.Flush()
	fmt.Fprintln(out)

	// Major axis
	fmt.Fprintln(out, "MAJOR AXIS (yy):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Elastic NA:\t%s mm\n", num(p.ENAyy, 2))
	fmt.Fprintf(w, "  Plastic NA:\t%s mm\t(%s)\n", num(p.PNAyy, 2), p.PNALocation)
	fmt.Fprintf(w, "  Second moment of area (Iyy):\t%s mm⁴\t%s cm⁴\n", num(p.Iyy, 0), num(p.Iyy/1e4, 1))
	fmt.Fprintf(w, "  Radius of gyration (iy):\t%s mm\n", num(p.Ryy, 2))
	fmt.Fprintf(w, "  Elastic modulus top (Wel,y):\t%s mm³\t%s cm³\n", num(p.WelYYTop, 0), num(p.WelYYTop/1e3, 1))
	fmt.Fprintf(w, "  Elastic modulus bottom (Wel,y):\t%s mm³\t%s cm³\n", num(p.WelYYBot, 0), num(p.WelYYBot/1e3, 1))
	if wpl, err := cs.PlasticModulusYY(); err == nil {
		fmt.Fprintf(w, "  Plastic modulus (Wpl,y):\t%s mm³\t%s cm³\n", num(wpl, 0), num(wpl/1e3, 1))
	} else {
		logger.Warn("plastic modulus yy not available", "section", ls.Name, "err", err)
		fmt.Fprintf(w, "  Plastic modulus (Wpl,y):\tn/a\t(plastic NA in %s)\n", p.PNALocation)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Minor axis
	fmt.Fprintln(out, "MINOR AXIS (zz):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Elastic NA:\t%s mm\n", num(p.ENAzz, 2))
	fmt.Fprintf(w, "  Plastic NA:\t%s mm\n", num(p.PNAzz, 2))
	fmt.Fprintf(w, "  Second moment of area (Izz):\t%s mm⁴\t%s cm⁴\n", num(p.Izz, 0), num(p.Izz/1e4, 1))
	fmt.Fprintf(w, "  Radius of gyration (iz):\t%s mm\n", num(p.Rzz, 2))
	fmt.Fprintf(w, "  Elastic modulus top (Wel,z):\t%s mm³\t%s cm³\n", num(p.WelZZTop, 0), num(p.WelZZTop/1e3, 1))
	fmt.Fprintf(w, "  Elastic modulus bottom (Wel,z):\t%s mm³\t%s cm³\n", num(p.WelZZBot, 0), num(p.WelZZBot/1e3, 1))
	fmt.Fprintf(w, "  Plastic modulus (Wpl,z):\t%s mm³\t%s cm³\n", num(p.WplZZ, 0), num(p.WplZZ/1e3, 1))
	w.Flush()
	fmt.Fprintln(out)

	// Shear areas
	fmt.Fprintln(out, "SHEAR AREAS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Av,z (load parallel to web):\t%s mm²\n", num(p.AvZ, 2))
	fmt.Fprintf(w, "  Av,y (load parallel to flanges):\t%s mm²\n", num(p.AvY, 2))
	w.Flush()
	fmt.Fprintln(out)

	if warnings := cs.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(out, "WARNINGS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		for _, warn := range warnings {
			fmt.Fprintf(out, "  ⚠ %s\n", warn.Message)
		}
		fmt.Fprintln(out)
	}
}

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/classify"
)

var (
	sectionCheckSpan   float64
	sectionCheckRule   string
	sectionCheckFormat string
)

// errOutOfScope is returned when the section fails the local plate checks
var errOutOfScope = errors.New("section is outside the scope of the simplified local plate checks")

var sectionCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the simplified local plate checks apply",
	Long: `Check the applicability conditions of the simplified methods:

  - Shear lag may be neglected       EN 1993-1-5 3.1(1)  b0 <= Le/50
  - No plate buckling (class <= 3)   EN 1993-1-5 4
  - No shear buckling                EN 1993-1-5 5.1(2)  hw/tw <= 72ε/η

Every failing condition is reported. The command exits with an error
when any condition fails.

The legacy shear buckling rule reproduces the historic comparison
(dw + 2r) < 72ε.

Examples:
  gosteel section check -f girder.yaml
  gosteel section check --type rolled --b 314 --tf 64 --tw 36 --dw 868.1 --r 30 --span 18000`,
	RunE: runSectionCheck,
}

func init() {
	sectionCmd.AddCommand(sectionCheckCmd)

	sectionCheckCmd.Flags().Float64VarP(&sectionCheckSpan, "span", "L", 0, "Span between points of zero bending moment (mm)")
	sectionCheckCmd.Flags().StringVar(&sectionCheckRule, "shear-buckling-rule", string(classify.RuleSlenderness), "Shear buckling rule: slenderness or legacy")
	sectionCheckCmd.Flags().StringVar(&sectionCheckFormat, "format", "text", "Output format: text or json")
}

func runSectionCheck(cmd *cobra.Command, args []string) error {
	ls, err := loadSection()
	if err != nil {
		return err
	}

	span := ls.Span
	if cmd.Flags().Changed("span") {
		span = sectionCheckSpan
	}
	if span == 0 {
		return errors.New("span between zero moments is required (--span or span in the section file)")
	}

	rule, err := classify.ParseShearBucklingRule(sectionCheckRule)
	if err != nil {
		return err
	}

	report, err := classify.CheckLocalPlates(ls.CS, span, classify.Options{ShearBuckling: rule})
	if err != nil {
		return err
	}

	for _, f := range report.Findings {
		logger.Warn(f.Message, "section", ls.Name, "check", f.Check, "severity", f.Severity)
	}

	out := cmd.OutOrStdout()
	switch sectionCheckFormat {
	case "json":
		if err := writeJSON(out, struct {
			Name string `json:"name,omitempty"`
			OK   bool   `json:"ok"`
			classify.Report
		}{ls.Name, report.OK(), report}); err != nil {
			return err
		}
	case "text":
		printReport(cmd, ls, report, rule)
	default:
		return errors.Errorf("unknown format %q (want text or json)", sectionCheckFormat)
	}

	if !report.OK() {
		return errOutOfScope
	}
	return nil
}

func printReport(cmd *cobra.Command, ls *loadedSection, report classify.Report, rule classify.ShearBucklingRule) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          LOCAL PLATE CHECKS - EN 1993-1-5")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if ls.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", ls.Name)
	}
	fmt.Fprintf(out, "  Span between zero moments (Le): %s mm\n", num(report.Span, 0))
	fmt.Fprintf(out, "  Shear buckling rule: %s\n", rule)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SECTION CLASS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	printClassTable(cmd, report.Classification)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "FINDINGS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if len(report.Findings) == 0 {
		fmt.Fprintln(out, "  None")
	}
	for _, f := range report.Findings {
		mark := "✗"
		if f.Severity == classify.SeverityWarning {
			mark = "⚠"
		}
		if f.Clause != "" {
			fmt.Fprintf(out, "  %s [%s] %s\n", mark, f.Clause, f.Message)
		} else {
			fmt.Fprintf(out, "  %s %s\n", mark, f.Message)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STATUS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if report.OK() {
		fmt.Fprintln(out, "  Local plate checks: OK!")
	} else {
		fmt.Fprintf(out, "  Out of scope: %d condition(s) failed\n", len(report.Rejections()))
	}
	fmt.Fprintln(out)
}

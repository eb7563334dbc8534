package classify

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/alexiusacademia/gosteel/internal/ec3"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Check names one applicability condition of the local plate checks
type Check string

const (
	CheckShearLagTop    Check = "shear_lag_top"
	CheckShearLagBot    Check = "shear_lag_bottom"
	CheckPlateBuckling  Check = "plate_buckling"
	CheckShearBuckling  Check = "shear_buckling"
	CheckGeometryNotice Check = "geometry"
)

// Severity of a finding. Only rejections fail the gate.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityReject
)

func (s Severity) String() string {
	if s == SeverityReject {
		return "reject"
	}
	return "warning"
}

// MarshalText renders the severity by name in JSON output
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one condition the section fails or should be aware of
type Finding struct {
	Check    Check    `json:"check"`
	Severity Severity `json:"severity"`
	Clause   string   `json:"clause,omitempty"`
	Message  string   `json:"message"`
}

// ShearBucklingRule selects the comparison used for the shear buckling condition
type ShearBucklingRule string

const (
	// RuleSlenderness rejects webs with hw/tw > 72ε/η
	RuleSlenderness ShearBucklingRule = "slenderness"
	// RuleLegacy rejects when (dw + 2r) < 72ε, the historic comparison
	RuleLegacy ShearBucklingRule = "legacy"
)

// ParseShearBucklingRule parses a rule name, defaulting to RuleSlenderness when empty
func ParseShearBucklingRule(s string) (ShearBucklingRule, error) {
	switch ShearBucklingRule(s) {
	case "", RuleSlenderness:
		return RuleSlenderness, nil
	case RuleLegacy:
		return RuleLegacy, nil
	}
	return "", errors.Errorf("unknown shear buckling rule %q (want %q or %q)", s, RuleSlenderness, RuleLegacy)
}

// Options for CheckLocalPlates
type Options struct {
	ShearBuckling ShearBucklingRule
}

// Report is the outcome of the local plate checks
type Report struct {
	Classification Classification `json:"classification"`
	Span           float64        `json:"span"`
	Findings       []Finding      `json:"findings"`
}

// OK reports whether the section may be assessed with the simplified methods
func (r Report) OK() bool {
	return len(r.Rejections()) == 0
}

// Rejections returns the findings that fail the gate
func (r Report) Rejections() []Finding {
	return lo.Filter(r.Findings, func(f Finding, _ int) bool {
		return f.Severity == SeverityReject
	})
}

// CheckLocalPlates evaluates every applicability condition for a span lZeroM (mm)
// between points of zero bending moment and reports all that fail.
func CheckLocalPlates(cs *section.CrossSection, lZeroM float64, opts Options) (Report, error) {
	if math.IsNaN(lZeroM) || math.IsInf(lZeroM, 0) || lZeroM < 0 {
		return Report{}, errors.Errorf("invalid span between zero moments: %g mm", lZeroM)
	}
	rule, err := ParseShearBucklingRule(string(opts.ShearBuckling))
	if err != nil {
		return Report{}, err
	}

	d := cs.Dimensions()
	r := Report{
		Classification: Classify(cs),
		Span:           lZeroM,
	}

	// Shear lag, EN 1993-1-5 3.1(1)
	b0Limit := ec3.ShearLagLimit(lZeroM)
	flanges := []struct {
		check Check
		name  string
		bf    float64
	}{
		{CheckShearLagTop, "top", d.BfTop},
		{CheckShearLagBot, "bottom", d.BfBot},
	}
	for _, f := range flanges {
		b0 := 0.5 * (f.bf - d.Tw)
		if b0Limit < b0 {
			r.Findings = append(r.Findings, Finding{
				Check:    f.check,
				Severity: SeverityReject,
				Clause:   "EN 1993-1-5 3.1(1)",
				Message:  fmt.Sprintf("shear lag in %s flange needs to be considered: b0=%.1f mm > Le/50=%.1f mm", f.name, b0, b0Limit),
			})
		}
	}

	// Plate buckling, EN 1993-1-5 4
	if r.Classification.Section > 3 {
		r.Findings = append(r.Findings, Finding{
			Check:    CheckPlateBuckling,
			Severity: SeverityReject,
			Clause:   "EN 1993-1-5 4",
			Message:  fmt.Sprintf("section is class %d, effective widths are required", r.Classification.Section),
		})
	}

	// Shear buckling, EN 1993-1-5 5.1(2)
	hw := d.Dw + 2*d.R
	switch rule {
	case RuleSlenderness:
		if hw/d.Tw > ec3.ShearBucklingLimit() {
			r.Findings = append(r.Findings, Finding{
				Check:    CheckShearBuckling,
				Severity: SeverityReject,
				Clause:   "EN 1993-1-5 5.1(2)",
				Message:  fmt.Sprintf("shear buckling needs to be considered: hw/tw=%.2f > 72ε/η=%.2f", hw/d.Tw, ec3.ShearBucklingLimit()),
			})
		}
	case RuleLegacy:
		limit := ec3.ShearBucklingRatio * ec3.Epsilon
		if hw < limit {
			r.Findings = append(r.Findings, Finding{
				Check:    CheckShearBuckling,
				Severity: SeverityReject,
				Clause:   "EN 1993-1-5 5.1(2)",
				Message:  fmt.Sprintf("shear buckling needs to be considered: dw+2r=%.2f < 72ε=%.2f", hw, limit),
			})
		}
	}

	r.Findings = append(r.Findings, lo.Map(cs.Warnings(), func(w section.Warning, _ int) Finding {
		return Finding{
			Check:    CheckGeometryNotice,
			Severity: SeverityWarning,
			Message:  w.Message,
		}
	})...)

	return r, nil
}

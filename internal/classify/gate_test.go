package classify

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/section"
)

func checks(findings []Finding) []Check {
	return lo.Map(findings, func(f Finding, _ int) Check { return f.Check })
}

func TestLocalPlateChecksReferenceSection(t *testing.T) {
	cs, err := section.NewRolledI(314, 64, 36, 868.1, 30)
	require.NoError(t, err)

	for _, rule := range []ShearBucklingRule{RuleSlenderness, RuleLegacy} {
		t.Run(string(rule), func(t *testing.T) {
			r, err := CheckLocalPlates(cs, 18000, Options{ShearBuckling: rule})
			require.NoError(t, err)

			// L/50 = 360 >= (314-36)/2 = 139, class 1, hw/tw = 25.8 <= 58.3
			assert.True(t, r.OK())
			assert.Empty(t, r.Findings)
			assert.Equal(t, Class(1), r.Classification.Section)
			assert.Equal(t, 18000.0, r.Span)
		})
	}
}

func TestShearLagBoundary(t *testing.T) {
	cs, err := section.NewRolledI(314, 64, 36, 868.1, 30)
	require.NoError(t, err)

	r, err := CheckLocalPlates(cs, 6950, Options{})
	require.NoError(t, err)
	assert.True(t, r.OK())

	r, err = CheckLocalPlates(cs, 6949, Options{})
	require.NoError(t, err)
	assert.False(t, r.OK())
	assert.Equal(t, []Check{CheckShearLagTop, CheckShearLagBot}, checks(r.Rejections()))
	assert.Contains(t, r.Findings[0].Message, "top flange")
}

func TestAllFailuresAreReported(t *testing.T) {
	cs, err := section.New(section.Dimensions{BfTop: 300, TfTop: 10, Tw: 4, Dw: 400, BfBot: 300, TfBot: 10})
	require.NoError(t, err)

	r, err := CheckLocalPlates(cs, 5000, Options{})
	require.NoError(t, err)

	assert.False(t, r.OK())
	assert.Equal(t, Class(4), r.Classification.Section)
	assert.Equal(t, []Check{CheckShearLagTop, CheckShearLagBot, CheckPlateBuckling, CheckShearBuckling}, checks(r.Findings))
	for _, f := range r.Findings {
		assert.Equal(t, SeverityReject, f.Severity)
		assert.NotEmpty(t, f.Clause)
	}
}

func TestShearBucklingRules(t *testing.T) {
	cs, err := section.New(section.Dimensions{BfTop: 100, TfTop: 10, Tw: 10, Dw: 40, BfBot: 100, TfBot: 10})
	require.NoError(t, err)

	r, err := CheckLocalPlates(cs, 18000, Options{ShearBuckling: RuleSlenderness})
	require.NoError(t, err)
	assert.True(t, r.OK())

	// dw + 2r = 40 < 72ε = 58.32
	r, err = CheckLocalPlates(cs, 18000, Options{ShearBuckling: RuleLegacy})
	require.NoError(t, err)
	assert.False(t, r.OK())
	assert.Equal(t, []Check{CheckShearBuckling}, checks(r.Findings))
}

func TestGeometryWarningsDoNotFailGate(t *testing.T) {
	cs, err := section.New(section.Dimensions{BfTop: 300, TfTop: 20, Tw: 10, Dw: 200, BfBot: 200, TfBot: 15, R: 30})
	require.NoError(t, err)

	r, err := CheckLocalPlates(cs, 18000, Options{})
	require.NoError(t, err)

	assert.True(t, r.OK())
	require.Len(t, r.Findings, 1)
	assert.Equal(t, CheckGeometryNotice, r.Findings[0].Check)
	assert.Equal(t, SeverityWarning, r.Findings[0].Severity)
	assert.Equal(t, "warning", r.Findings[0].Severity.String())
}

func TestCheckLocalPlatesInvalidInput(t *testing.T) {
	cs, err := section.NewRolledI(314, 64, 36, 868.1, 30)
	require.NoError(t, err)

	for _, span := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := CheckLocalPlates(cs, span, Options{})
		assert.ErrorContains(t, err, "invalid span")
	}

	_, err = CheckLocalPlates(cs, 18000, Options{ShearBuckling: "strict"})
	assert.ErrorContains(t, err, "unknown shear buckling rule")
}

func TestParseShearBucklingRule(t *testing.T) {
	rule, err := ParseShearBucklingRule("")
	require.NoError(t, err)
	assert.Equal(t, RuleSlenderness, rule)

	rule, err = ParseShearBucklingRule("legacy")
	require.NoError(t, err)
	assert.Equal(t, RuleLegacy, rule)
}

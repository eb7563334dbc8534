package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func TestRolledIReferenceSection(t *testing.T) {
	cs, err := NewRolledI(314, 64, 36, 868.1, 30)
	require.NoError(t, err)

	p := cs.Properties()
	assert.Equal(t, KindRolledI, p.Kind)
	assert.InDelta(t, 1056.1, p.H, tol)
	assert.InDelta(t, 74376.1666117692, p.A, tol)
	assert.InDelta(t, 583.8529079023881, p.Mpm, tol)
	assert.InDelta(t, 528.05, p.ENAyy, tol)
	assert.InDelta(t, 528.05, p.PNAyy, tol)
	assert.Equal(t, PNAWeb, p.PNALocation)
	assert.InDelta(t, 157.0, p.ENAzz, tol)
	assert.InEpsilon(t, 12463732471.79167, p.Iyy, 1e-9)
	assert.InEpsilon(t, 334547908.2327342, p.Izz, 1e-9)
	assert.InEpsilon(t, 28042900.649600364, *p.WplYY, 1e-9)
	assert.InEpsilon(t, 3474859.5756029766, p.WplZZ, 1e-9)
	assert.InEpsilon(t, 40328.16661176919, p.AvZ, 1e-9)
	assert.InDelta(t, 0.0, p.AvY, tol)
	assert.Empty(t, cs.Warnings())

	assert.InDelta(t, math.Sqrt(p.Iyy/p.A), p.Ryy, tol)
	assert.InDelta(t, math.Sqrt(p.Izz/p.A), p.Rzz, tol)
	assert.InDelta(t, p.WelYYTop, p.WelYYBot, 1e-3)
	assert.InDelta(t, p.Izz/157, p.WelZZTop, tol)
}

func TestDoublySymmetricElasticAxisAtMidDepth(t *testing.T) {
	tests := []struct {
		name          string
		b, tf, tw, dw float64
		r             float64
	}{
		{"reference", 314, 64, 36, 868.1, 30},
		{"no fillet", 200, 15, 8, 370, 0},
		{"thin plate girder", 400, 20, 10, 1500, 0},
		{"stocky", 150, 25, 20, 100, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := New(Dimensions{BfTop: tt.b, TfTop: tt.tf, Tw: tt.tw, Dw: tt.dw, BfBot: tt.b, TfBot: tt.tf, R: tt.r})
			require.NoError(t, err)

			p := cs.Properties()
			assert.InDelta(t, p.H/2, p.ENAyy, tol)
			assert.InDelta(t, p.H/2, p.PNAyy, tol)
			assert.Equal(t, PNAWeb, p.PNALocation)
			assert.Greater(t, p.A, 0.0)
			assert.Greater(t, p.Iyy, 0.0)
			assert.Greater(t, p.Izz, 0.0)
		})
	}
}

func TestMinorAxesCoincide(t *testing.T) {
	cs, err := New(Dimensions{BfTop: 300, TfTop: 20, Tw: 10, Dw: 400, BfBot: 200, TfBot: 15, R: 12})
	require.NoError(t, err)

	p := cs.Properties()
	assert.Equal(t, p.ENAzz, p.PNAzz)
	assert.InDelta(t, 150.0, p.ENAzz, tol)
}

func TestZeroFilletMatchesRectangles(t *testing.T) {
	b, tf, tw, dw := 200.0, 15.0, 8.0, 370.0
	h := dw + 2*tf

	custom, err := New(Dimensions{BfTop: b, TfTop: tf, Tw: tw, Dw: dw, BfBot: b, TfBot: tf})
	require.NoError(t, err)
	p := custom.Properties()

	assert.InDelta(t, 400.0, p.H, tol)
	assert.InDelta(t, 2*b*tf+dw*tw, p.A, tol)
	assert.InEpsilon(t, (b*math.Pow(h, 3)-(b-tw)*math.Pow(dw, 3))/12, p.Iyy, 1e-10)
	assert.InEpsilon(t, 2*tf*math.Pow(b, 3)/12+dw*math.Pow(tw, 3)/12, p.Izz, 1e-10)
	assert.InEpsilon(t, b*tf*(h-tf)+tw*dw*dw/4, *p.WplYY, 1e-10)
	assert.InEpsilon(t, 2*tf*b*b/4+dw*tw*tw/4, p.WplZZ, 1e-10)
	assert.InDelta(t, dw*tw, p.AvZ, tol)

	rolled, err := NewRolledI(b, tf, tw, dw, 0)
	require.NoError(t, err)
	assert.InDelta(t, dw*tw+tw*tf, rolled.Properties().AvZ, tol)
}

func TestPlasticNeutralAxisLocation(t *testing.T) {
	tests := []struct {
		name  string
		dims  Dimensions
		where PNALocation
		pna   float64
	}{
		{
			name:  "bottom flange governs",
			dims:  Dimensions{BfTop: 100, TfTop: 10, Tw: 10, Dw: 200, BfBot: 600, TfBot: 60},
			where: PNAFlangeBot,
			pna:   32.5,
		},
		{
			name:  "top flange governs",
			dims:  Dimensions{BfTop: 600, TfTop: 60, Tw: 10, Dw: 200, BfBot: 100, TfBot: 10},
			where: PNAFlangeTop,
			pna:   237.5,
		},
		{
			name:  "web with heavier top flange",
			dims:  Dimensions{BfTop: 300, TfTop: 20, Tw: 10, Dw: 400, BfBot: 200, TfBot: 15},
			where: PNAWeb,
			pna:   365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := New(tt.dims)
			require.NoError(t, err)

			p := cs.Properties()
			assert.Equal(t, tt.where, p.PNALocation)
			assert.InDelta(t, tt.pna, p.PNAyy, tol)
			assert.InDelta(t, p.A/2, areaBelow(tt.dims, p.PNAyy), tol)
		})
	}
}

// areaBelow integrates the area of a fillet-free section below y
func areaBelow(d Dimensions, y float64) float64 {
	bot := math.Min(y, d.TfBot) * d.BfBot
	web := math.Min(math.Max(y-d.TfBot, 0), d.Dw) * d.Tw
	top := math.Max(y-d.TfBot-d.Dw, 0) * d.BfTop
	return bot + web + top
}

func TestPlasticModulusUnsupportedInFlange(t *testing.T) {
	cs, err := New(Dimensions{BfTop: 100, TfTop: 10, Tw: 10, Dw: 200, BfBot: 600, TfBot: 60})
	require.NoError(t, err)

	assert.Nil(t, cs.Properties().WplYY)
	_, err = cs.PlasticModulusYY()
	assert.ErrorIs(t, err, ErrPlasticModulusUnsupported)

	web, err := NewRolledI(200, 15, 8, 370, 0)
	require.NoError(t, err)
	wpl, err := web.PlasticModulusYY()
	require.NoError(t, err)
	assert.Greater(t, wpl, 0.0)
}

func TestPlasticAxisInFilletIsClamped(t *testing.T) {
	cs, err := New(Dimensions{BfTop: 300, TfTop: 20, Tw: 10, Dw: 200, BfBot: 200, TfBot: 15, R: 30})
	require.NoError(t, err)

	p := cs.Properties()
	assert.Equal(t, PNAWeb, p.PNALocation)
	assert.InDelta(t, 245.0, p.PNAyy, tol)

	warnings := cs.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnPNAInFillet, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "root fillet")
}

func TestPropertiesAreCopies(t *testing.T) {
	cs, err := NewRolledI(314, 64, 36, 868.1, 30)
	require.NoError(t, err)

	p := cs.Properties()
	want := *p.WplYY
	*p.WplYY = 0
	p.A = 0

	again := cs.Properties()
	assert.Equal(t, want, *again.WplYY)
	assert.NotZero(t, again.A)
}

func TestInvalidGeometry(t *testing.T) {
	valid := Dimensions{BfTop: 200, TfTop: 15, Tw: 8, Dw: 370, BfBot: 200, TfBot: 15, R: 10}

	tests := []struct {
		name  string
		edit  func(d *Dimensions)
		field string
	}{
		{"flangeless", func(d *Dimensions) { d.TfTop, d.TfBot = 0, 0 }, "tf_top"},
		{"no bottom flange", func(d *Dimensions) { d.TfBot = 0 }, "tf_bot"},
		{"no web", func(d *Dimensions) { d.Tw = 0 }, "tw"},
		{"no web depth", func(d *Dimensions) { d.Dw = 0 }, "dw"},
		{"negative radius", func(d *Dimensions) { d.R = -1 }, "r"},
		{"NaN width", func(d *Dimensions) { d.BfTop = math.NaN() }, "bf_top"},
		{"infinite depth", func(d *Dimensions) { d.Dw = math.Inf(1) }, "dw"},
		{"flange narrower than web", func(d *Dimensions) { d.BfBot = 5 }, "bf_bot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.edit(&d)

			_, err := New(d)
			var geomErr *InvalidGeometryError
			require.ErrorAs(t, err, &geomErr)
			assert.Equal(t, tt.field, geomErr.Field)
		})
	}

	_, err := New(valid)
	assert.NoError(t, err)
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/section"
)

func TestClassifyReferenceSection(t *testing.T) {
	cs, err := section.NewRolledI(314, 64, 36, 868.1, 30)
	require.NoError(t, err)

	c := Classify(cs)
	assert.Equal(t, Class(1), c.Web)
	assert.Equal(t, Class(1), c.FlangeTop)
	assert.Equal(t, Class(1), c.FlangeBot)
	assert.Equal(t, Class(1), c.Section)
	assert.True(t, c.Plastic())
	assert.InDelta(t, 868.1/36, c.WebRatio, 1e-9)
	assert.InDelta(t, 109.0/64, c.FlangeTopRatio, 1e-9)
}

func TestClassifyComponents(t *testing.T) {
	tests := []struct {
		name string
		dims section.Dimensions
		web  Class
		top  Class
		bot  Class
		sec  Class
	}{
		{
			// dw/tw = 30, class 2 web
			name: "class 2 web",
			dims: section.Dimensions{BfTop: 200, TfTop: 20, Tw: 10, Dw: 300, BfBot: 200, TfBot: 20},
			web:  2, top: 1, bot: 1, sec: 2,
		},
		{
			// dw/tw = 40, slender web
			name: "slender web",
			dims: section.Dimensions{BfTop: 200, TfTop: 20, Tw: 10, Dw: 400, BfBot: 200, TfBot: 20},
			web:  4, top: 1, bot: 1, sec: 4,
		},
		{
			// top outstand c/t = 95/10 = 9.5, class 3
			name: "class 3 top flange",
			dims: section.Dimensions{BfTop: 200, TfTop: 10, Tw: 10, Dw: 200, BfBot: 200, TfBot: 20},
			web:  1, top: 3, bot: 1, sec: 3,
		},
		{
			// bottom outstand c/t = 145/10 = 14.5, class 4
			name: "slender bottom flange",
			dims: section.Dimensions{BfTop: 200, TfTop: 20, Tw: 10, Dw: 200, BfBot: 300, TfBot: 10},
			web:  1, top: 1, bot: 4, sec: 4,
		},
		{
			// outstand c/t = (0.5*(200-10-2*20))/10 = 7.5, class 2 thanks to the fillets
			name: "fillet shortens outstand",
			dims: section.Dimensions{BfTop: 200, TfTop: 10, Tw: 10, Dw: 200, BfBot: 200, TfBot: 10, R: 20},
			web:  1, top: 2, bot: 2, sec: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := section.New(tt.dims)
			require.NoError(t, err)

			c := Classify(cs)
			assert.Equal(t, tt.web, c.Web, "web")
			assert.Equal(t, tt.top, c.FlangeTop, "top flange")
			assert.Equal(t, tt.bot, c.FlangeBot, "bottom flange")
			assert.Equal(t, tt.sec, c.Section, "section")
		})
	}
}

func TestWebClassIsMonotonic(t *testing.T) {
	prev := Class(1)
	for dw := 100.0; dw <= 600; dw += 5 {
		cs, err := section.New(section.Dimensions{BfTop: 200, TfTop: 20, Tw: 10, Dw: dw, BfBot: 200, TfBot: 20})
		require.NoError(t, err)

		c := Classify(cs)
		assert.GreaterOrEqual(t, c.Web, prev, "dw=%g", dw)
		prev = c.Web
	}
	assert.Equal(t, Class(4), prev)
}

func TestOutstand(t *testing.T) {
	assert.InDelta(t, 109.0, Outstand(314, 36, 30), 1e-9)
	assert.InDelta(t, 95.0, Outstand(200, 10, 0), 1e-9)
}

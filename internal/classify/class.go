// Package classify assigns EN 1993-1-1 Table 5.2 section classes and gates
// whether the simplified EN 1993-1-5 assumptions hold for a section.
package classify

import (
	"github.com/samber/lo"

	"github.com/alexiusacademia/gosteel/internal/ec3"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Class is a cross-section class from 1 (plastic) to 4 (slender)
type Class int

// Classification holds the class of each compression part and of the section.
// Every part is taken as fully in compression.
type Classification struct {
	Web       Class `json:"web"`
	FlangeTop Class `json:"flange_top"`
	FlangeBot Class `json:"flange_bot"`
	Section   Class `json:"section"`

	WebRatio       float64 `json:"web_ratio"`        // dw/tw
	FlangeTopRatio float64 `json:"flange_top_ratio"` // c/tf of the top outstand
	FlangeBotRatio float64 `json:"flange_bot_ratio"` // c/tf of the bottom outstand
}

// Outstand returns the free width of one flange outstand beyond the root fillet
func Outstand(bf, tw, r float64) float64 {
	return 0.5 * (bf - tw - 2*r)
}

// Classify classifies the web as an internal part and each flange as an outstand
func Classify(cs *section.CrossSection) Classification {
	d := cs.Dimensions()

	c := Classification{
		WebRatio:       d.Dw / d.Tw,
		FlangeTopRatio: Outstand(d.BfTop, d.Tw, d.R) / d.TfTop,
		FlangeBotRatio: Outstand(d.BfBot, d.Tw, d.R) / d.TfBot,
	}
	c.Web = Class(ec3.InternalCompression.Class(c.WebRatio))
	c.FlangeTop = Class(ec3.OutstandCompression.Class(c.FlangeTopRatio))
	c.FlangeBot = Class(ec3.OutstandCompression.Class(c.FlangeBotRatio))
	c.Section = lo.Max([]Class{c.Web, c.FlangeTop, c.FlangeBot})

	return c
}

// Plastic reports whether the section can form a plastic hinge (class 1)
func (c Classification) Plastic() bool {
	return c.Section == 1
}

package section

import (
	"fmt"
)

// calculatePlasticAxes locates the plastic neutral axes by equal areas
func (cs *CrossSection) calculatePlasticAxes() {
	d, p := cs.dims, &cs.props

	aTop := d.BfTop * d.TfTop
	aBot := d.BfBot * d.TfBot
	aWeb := cs.webDepth()*d.Tw + 4*filletArea(d.R)

	switch {
	case aTop+aWeb < aBot:
		// Half the area fits inside the bottom flange
		p.PNALocation = PNAFlangeBot
		p.PNAyy = p.A / (2 * d.BfBot)

	case aBot+aWeb < aTop:
		p.PNALocation = PNAFlangeTop
		p.PNAyy = p.H - p.A/(2*d.BfTop)

	default:
		// The web balances half the flange imbalance on each side of the axis
		p.PNALocation = PNAWeb
		deltaY := (aTop - aBot) / d.Tw
		p.PNAyy = d.TfBot + d.R + 0.5*d.Dw + 0.5*deltaY

		// Fillet area is not part of the equal-area balance above, so an axis
		// landing in a fillet zone is only approximate.
		lower := d.TfBot + d.R
		upper := p.H - d.TfTop - d.R
		if d.R != 0 && (p.PNAyy < lower || p.PNAyy > upper) {
			cs.warnings = append(cs.warnings, Warning{
				Code:    WarnPNAInFillet,
				Message: fmt.Sprintf("plastic neutral axis at %.2f mm lies within a root fillet; root fillet area not accounted for, clamped to straight web [%.2f, %.2f]", p.PNAyy, lower, upper),
			})
			p.PNAyy = min(max(p.PNAyy, lower), upper)
		}
	}

	// Symmetric about zz
	p.PNAzz = 0.5 * max(d.BfTop, d.BfBot, d.Tw)
}

// calculatePlasticModuli sums area times lever arm about each plastic neutral axis
func (cs *CrossSection) calculatePlasticModuli() {
	d, p := cs.dims, &cs.props
	af := filletArea(d.R)
	hw := cs.webDepth()

	// TODO: plastic modulus yy for an axis inside a flange needs the flange
	// split into parts above and below the axis.
	if p.PNALocation == PNAWeb {
		webAbove := d.TfBot + hw - p.PNAyy
		webBelow := p.PNAyy - d.TfBot

		wpl := webAbove*d.Tw*0.5*webAbove +
			2*af*((p.H-d.TfTop-filletCentroid*d.R)-p.PNAyy) +
			d.TfTop*d.BfTop*(webAbove+0.5*d.TfTop) +
			webBelow*d.Tw*0.5*webBelow +
			2*af*(p.PNAyy-d.TfBot-filletCentroid*d.R) +
			d.TfBot*d.BfBot*(p.PNAyy-0.5*d.TfBot)
		p.WplYY = &wpl
	}

	p.WplZZ = d.TfBot*d.BfBot*d.BfBot/4 +
		d.TfTop*d.BfTop*d.BfTop/4 +
		hw*d.Tw*d.Tw/4 +
		4*af*(0.5*d.Tw+filletCentroid*d.R)
}

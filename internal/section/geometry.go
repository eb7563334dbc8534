package section

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/ec3"
)

// Root fillet shape constants, scaled by r and r⁴ respectively
const (
	filletCentroid = 0.223367  // distance from the tangent corner to the fillet centroid
	filletInertia  = 0.0732137 // centroidal second moment of the fillet
)

// filletArea is the area of one root fillet: a square r×r minus a quarter circle
func filletArea(r float64) float64 {
	return r * r * (1 - 0.25*math.Pi)
}

// CrossSection is an open section symmetric about its minor axis.
// All properties are computed once by New and never change afterwards.
type CrossSection struct {
	dims     Dimensions
	props    Properties
	warnings []Warning
}

// New computes the properties of a general open section
func New(d Dimensions) (*CrossSection, error) {
	return build(d, KindCustom)
}

// NewRolledI computes the properties of a rolled I-section with equal flanges
func NewRolledI(b, tf, tw, dw, r float64) (*CrossSection, error) {
	d := Dimensions{
		BfTop: b,
		TfTop: tf,
		Tw:    tw,
		Dw:    dw,
		BfBot: b,
		TfBot: tf,
		R:     r,
	}
	return build(d, KindRolledI)
}

func build(d Dimensions, kind Kind) (*CrossSection, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cs := &CrossSection{dims: d}
	cs.props.Kind = kind

	cs.calculateArea()
	cs.calculateElasticAxes()
	cs.calculatePlasticAxes()
	cs.calculateSecondMoments()
	cs.calculateModuli()
	cs.calculatePlasticModuli()
	cs.calculateShearAreas()

	return cs, nil
}

// Dimensions returns the input dimensions
func (cs *CrossSection) Dimensions() Dimensions {
	return cs.dims
}

// Kind returns the section discriminator
func (cs *CrossSection) Kind() Kind {
	return cs.props.Kind
}

// Properties returns a copy of the computed properties
func (cs *CrossSection) Properties() Properties {
	p := cs.props
	if cs.props.WplYY != nil {
		w := *cs.props.WplYY
		p.WplYY = &w
	}
	return p
}

// Warnings returns the diagnostics raised while computing the properties
func (cs *CrossSection) Warnings() []Warning {
	return append([]Warning(nil), cs.warnings...)
}

// PlasticModulusYY returns the major-axis plastic modulus (mm³)
func (cs *CrossSection) PlasticModulusYY() (float64, error) {
	if cs.props.WplYY == nil {
		return 0, ErrPlasticModulusUnsupported
	}
	return *cs.props.WplYY, nil
}

// webDepth is the web height between the flanges, fillets included
func (cs *CrossSection) webDepth() float64 {
	return cs.dims.Dw + 2*cs.dims.R
}

func (cs *CrossSection) calculateArea() {
	d, p := cs.dims, &cs.props

	p.H = cs.webDepth() + d.TfTop + d.TfBot

	p.A = d.BfTop*d.TfTop +
		cs.webDepth()*d.Tw +
		d.BfBot*d.TfBot +
		4*filletArea(d.R)

	p.Mpm = ec3.MassPerMetre(p.A)
}

// calculateElasticAxes locates the centroid by first moment of area
func (cs *CrossSection) calculateElasticAxes() {
	d, p := cs.dims, &cs.props
	af := filletArea(d.R)
	hw := cs.webDepth()

	p.ENAyy = (d.TfTop*d.BfTop*(p.H-0.5*d.TfTop) +
		d.Tw*hw*(d.TfBot+0.5*hw) +
		d.TfBot*d.BfBot*(0.5*d.TfBot) +
		2*af*(d.TfBot+filletCentroid*d.R) +
		2*af*(p.H-d.TfTop-filletCentroid*d.R)) / p.A

	// Every part is centred on the zz axis
	p.ENAzz = 0.5 * max(d.BfTop, d.BfBot, d.Tw)
}

// calculateSecondMoments applies the parallel axis theorem to each part
func (cs *CrossSection) calculateSecondMoments() {
	d, p := cs.dims, &cs.props
	af := filletArea(d.R)
	hw := cs.webDepth()
	iFillet := filletInertia * math.Pow(d.R, 4)

	// Major axis (yy)
	webY := d.TfBot + d.R + 0.5*d.Dw
	iyyWeb := math.Pow(p.ENAyy-webY, 2)*hw*d.Tw + d.Tw*math.Pow(hw, 3)/12
	iyyFlangeTop := math.Pow(p.ENAyy-(p.H-0.5*d.TfTop), 2)*d.TfTop*d.BfTop + d.BfTop*math.Pow(d.TfTop, 3)/12
	iyyFlangeBot := math.Pow(p.ENAyy-0.5*d.TfBot, 2)*d.TfBot*d.BfBot + d.BfBot*math.Pow(d.TfBot, 3)/12
	iyyFilletBot := 2 * (math.Pow(p.ENAyy-d.TfBot-filletCentroid*d.R, 2)*af + iFillet)
	iyyFilletTop := 2 * (math.Pow(p.H-d.TfTop-filletCentroid*d.R-p.ENAyy, 2)*af + iFillet)
	p.Iyy = iyyWeb + iyyFlangeTop + iyyFlangeBot + iyyFilletBot + iyyFilletTop

	// Minor axis (zz), four identical fillets at the same offset
	izzWeb := hw * math.Pow(d.Tw, 3) / 12
	izzFlangeTop := d.TfTop * math.Pow(d.BfTop, 3) / 12
	izzFlangeBot := d.TfBot * math.Pow(d.BfBot, 3) / 12
	izzFillets := 4 * (iFillet + af*math.Pow(0.5*d.Tw+filletCentroid*d.R, 2))
	p.Izz = izzWeb + izzFlangeTop + izzFlangeBot + izzFillets

	p.Ryy = math.Sqrt(p.Iyy / p.A)
	p.Rzz = math.Sqrt(p.Izz / p.A)
}

// calculateModuli computes elastic moduli to each extreme fiber
func (cs *CrossSection) calculateModuli() {
	d, p := cs.dims, &cs.props

	p.WelYYTop = p.Iyy / (p.H - p.ENAyy)
	p.WelYYBot = p.Iyy / p.ENAyy

	p.WelZZTop = p.Izz / (0.5 * d.BfTop)
	p.WelZZBot = p.Izz / (0.5 * d.BfBot)
}

// calculateShearAreas follows EN 1993-1-1 6.2.6(3)
func (cs *CrossSection) calculateShearAreas() {
	d, p := cs.dims, &cs.props
	aTop := d.BfTop * d.TfTop
	aBot := d.BfBot * d.TfBot

	p.AvZ = p.A - aTop - aBot
	if p.Kind == KindRolledI {
		// Web to flange transition of rolled profiles
		p.AvZ += (d.Tw + 2*d.R) * 0.5 * (d.TfTop + d.TfBot)
	}

	p.AvY = math.Abs(aBot - aTop)
}

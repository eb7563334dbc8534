package section

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Kind distinguishes a custom build-up from a rolled I-section.
// It only affects the major-axis shear area.
type Kind string

const (
	KindCustom  Kind = "custom"
	KindRolledI Kind = "I_rolled"
)

// PNALocation names the part of the section holding the major-axis plastic neutral axis
type PNALocation string

const (
	PNAFlangeTop PNALocation = "flange_top"
	PNAFlangeBot PNALocation = "flange_bot"
	PNAWeb       PNALocation = "web"
)

// Dimensions of an open section symmetric about its minor (zz) axis.
// Both flanges and the web are centred on that axis. All values in mm.
type Dimensions struct {
	BfTop float64 `json:"bf_top" yaml:"bf_top"` // Top flange width
	TfTop float64 `json:"tf_top" yaml:"tf_top"` // Top flange thickness
	Tw    float64 `json:"tw" yaml:"tw"`         // Web thickness
	Dw    float64 `json:"dw" yaml:"dw"`         // Web depth between root fillets
	BfBot float64 `json:"bf_bot" yaml:"bf_bot"` // Bottom flange width
	TfBot float64 `json:"tf_bot" yaml:"tf_bot"` // Bottom flange thickness
	R     float64 `json:"r" yaml:"r"`           // Root fillet radius
}

// Properties holds the derived section properties.
// Lengths in mm, areas in mm², moduli in mm³, second moments in mm⁴.
// Neutral axes are measured from the bottom fiber (yy) and the left fiber (zz).
type Properties struct {
	Kind Kind `json:"type"`

	H   float64 `json:"h"`   // Total depth
	A   float64 `json:"a"`   // Cross-section area
	Mpm float64 `json:"mpm"` // Mass per metre (kg/m)

	ENAyy       float64     `json:"e_na_yy"`
	ENAzz       float64     `json:"e_na_zz"`
	PNAyy       float64     `json:"p_na_yy"`
	PNAzz       float64     `json:"p_na_zz"`
	PNALocation PNALocation `json:"p_na_location"`

	Iyy float64 `json:"iyy"`
	Izz float64 `json:"izz"`
	Ryy float64 `json:"ryy"`
	Rzz float64 `json:"rzz"`

	WelYYTop float64 `json:"wel_yy_top"`
	WelYYBot float64 `json:"wel_yy_bot"`
	WelZZTop float64 `json:"wel_zz_top"`
	WelZZBot float64 `json:"wel_zz_bot"`

	// WplYY is nil when the plastic neutral axis lies in a flange
	WplYY *float64 `json:"wpl_yy,omitempty"`
	WplZZ float64  `json:"wpl_zz"`

	AvZ float64 `json:"av_z"` // Shear area, load parallel to web
	AvY float64 `json:"av_y"` // Shear area, load parallel to flanges
}

// Warning codes
const (
	WarnPNAInFillet = "pna_in_fillet"
)

// Warning is a non-fatal diagnostic raised while computing properties
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrPlasticModulusUnsupported is returned when the major-axis plastic
// modulus is requested for a section whose plastic neutral axis is in a flange.
var ErrPlasticModulusUnsupported = errors.New("plastic modulus yy not supported with plastic neutral axis in a flange")

// Validate checks the dimensions describe a section the formulas can handle.
// Physically odd combinations such as a flange thinner than the root radius
// are not rejected.
func (d Dimensions) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"bf_top", d.BfTop},
		{"tf_top", d.TfTop},
		{"tw", d.Tw},
		{"dw", d.Dw},
		{"bf_bot", d.BfBot},
		{"tf_bot", d.TfBot},
		{"r", d.R},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidGeometryError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
		if f.value < 0 {
			return &InvalidGeometryError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}

	for _, f := range fields[1:4] {
		if f.value == 0 {
			return &InvalidGeometryError{Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}
	if d.TfBot == 0 {
		return &InvalidGeometryError{Field: "tf_bot", Value: d.TfBot, Reason: "must be positive"}
	}

	if d.BfTop < d.Tw {
		return &InvalidGeometryError{Field: "bf_top", Value: d.BfTop, Reason: fmt.Sprintf("must not be narrower than the web (tw=%g)", d.Tw)}
	}
	if d.BfBot < d.Tw {
		return &InvalidGeometryError{Field: "bf_bot", Value: d.BfBot, Reason: fmt.Sprintf("must not be narrower than the web (tw=%g)", d.Tw)}
	}
	return nil
}

// InvalidGeometryError represents a section dimension the formulas cannot handle
type InvalidGeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s=%g %s", e.Field, e.Value, e.Reason)
}

package section

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition is a section as written in a JSON or YAML file
type Definition struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        Kind   `json:"type,omitempty" yaml:"type,omitempty"`

	Dimensions `yaml:",inline"`

	// Span between points of zero bending moment (mm), optional
	Span float64 `json:"span,omitempty" yaml:"span,omitempty"`
}

// LoadFromFile loads a section definition from a .json, .yaml or .yml file
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading section file %s", path)
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrapf(err, "decoding section file %s", path)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrapf(err, "decoding section file %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported section file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}

	if def.Span < 0 {
		return nil, errors.Errorf("section file %s: span must not be negative", path)
	}

	return &def, nil
}

// Build computes the cross-section described by the definition.
// A rolled I-section takes its bottom flange from the top flange when omitted.
func (def *Definition) Build() (*CrossSection, error) {
	switch def.Kind {
	case "", KindCustom:
		return New(def.Dimensions)

	case KindRolledI:
		d := def.Dimensions
		if d.BfBot == 0 && d.TfBot == 0 {
			d.BfBot, d.TfBot = d.BfTop, d.TfTop
		}
		if d.BfBot != d.BfTop {
			return nil, &InvalidGeometryError{Field: "bf_bot", Value: d.BfBot, Reason: "must equal bf_top for a rolled I-section"}
		}
		if d.TfBot != d.TfTop {
			return nil, &InvalidGeometryError{Field: "tf_bot", Value: d.TfBot, Reason: "must equal tf_top for a rolled I-section"}
		}
		return NewRolledI(d.BfTop, d.TfTop, d.Tw, d.Dw, d.R)

	default:
		return nil, errors.Errorf("unknown section type %q (want %q or %q)", def.Kind, KindCustom, KindRolledI)
	}
}

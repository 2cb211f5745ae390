package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Quantity is a {value, unit} pair as found in driver records.
// Both members are pointers so that absence can be told apart from zero.
type Quantity struct {
	Value *float64 `json:"value" yaml:"value"`
	Unit  *string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Q builds a Quantity; handy when assembling records in code.
func Q(value float64, unit string) *Quantity {
	return &Quantity{Value: &value, Unit: &unit}
}

// Text returns a pointer to s, for GeneralInfo and PhysicalDimensions labels.
func Text(s string) *string { return &s }

// Flag returns a pointer to b.
func Flag(b bool) *bool { return &b }

// Record is the four-section driver record.
type Record struct {
	GeneralInfo          *GeneralInfo           `json:"general_info" yaml:"general_info"`
	ElectricalParameters *ElectricalParameters  `json:"electrical_parameters" yaml:"electrical_parameters"`
	ThieleSmall          *ThieleSmallParameters `json:"thiele_small_parameters" yaml:"thiele_small_parameters"`
	PhysicalDimensions   *PhysicalDimensions    `json:"physical_dimensions" yaml:"physical_dimensions"`
}

// GeneralInfo holds identity and provenance metadata.
type GeneralInfo struct {
	UUID         *string `json:"uuid" yaml:"uuid"`
	Brand        *string `json:"brand" yaml:"brand"`
	Manufacturer *string `json:"manufacturer" yaml:"manufacturer"`
	ProvidedBy   *string `json:"providedby" yaml:"providedby"`
	Comment      *string `json:"comment" yaml:"comment"`
	Model        *string `json:"model" yaml:"model"`
	Indexed      *bool   `json:"indexed" yaml:"indexed"`
	SpeakerType  string  `json:"speaker_type,omitempty" yaml:"speaker_type,omitempty"`
}

// ElectricalParameters are taken verbatim (value only, expected in SI).
// Sensitivity is derivable.
type ElectricalParameters struct {
	Impedance     *Quantity `json:"impedance" yaml:"impedance"`
	Sensitivity   *Quantity `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty"`
	Re            *Quantity `json:"re" yaml:"re"`
	Le            *Quantity `json:"le" yaml:"le"`
	Znom          *Quantity `json:"znom" yaml:"znom"`
	Pe            *Quantity `json:"pe" yaml:"pe"`
	Pmax          *Quantity `json:"pmax" yaml:"pmax"`
	Bl            *Quantity `json:"bl" yaml:"bl"`
	MotorConstant *Quantity `json:"motor_constant" yaml:"motor_constant"`
	FluxDensity   *Quantity `json:"flux_density" yaml:"flux_density"`
}

// ThieleSmallParameters mixes fundamental, derivable and optional values.
// Mms, Mmd, Sd, Xmax, Xlim, Vas and Vd are unit-converted.
type ThieleSmallParameters struct {
	Fs        *Quantity `json:"fs" yaml:"fs"`
	Qms       *Quantity `json:"qms" yaml:"qms"`
	Qes       *Quantity `json:"qes,omitempty" yaml:"qes,omitempty"`
	Qts       *Quantity `json:"qts,omitempty" yaml:"qts,omitempty"`
	Mms       *Quantity `json:"mms" yaml:"mms"`
	Mmd       *Quantity `json:"mmd" yaml:"mmd"`
	Stiffness *Quantity `json:"stiffness,omitempty" yaml:"stiffness,omitempty"`
	Cms       *Quantity `json:"cms,omitempty" yaml:"cms,omitempty"`
	Vas       *Quantity `json:"vas,omitempty" yaml:"vas,omitempty"`
	Rms       *Quantity `json:"rms" yaml:"rms"`
	Sd        *Quantity `json:"sd" yaml:"sd"`
	Xmax      *Quantity `json:"xmax,omitempty" yaml:"xmax,omitempty"`
	Xlim      *Quantity `json:"xlim,omitempty" yaml:"xlim,omitempty"`
	Vd        *Quantity `json:"vd,omitempty" yaml:"vd,omitempty"`
}

// PhysicalDimensions are all required; quantities are unit-converted.
type PhysicalDimensions struct {
	NominalDiameter      *string   `json:"nominal_diameter" yaml:"nominal_diameter"`
	VCDiameter           *Quantity `json:"vc_diameter" yaml:"vc_diameter"`
	WindingHeight        *Quantity `json:"winding_height" yaml:"winding_height"`
	AirGapHeight         *Quantity `json:"air_gap_height" yaml:"air_gap_height"`
	EffectiveDiameter    *Quantity `json:"effective_diameter" yaml:"effective_diameter"`
	BaffleCutoutDiameter *Quantity `json:"baffle_cutout_diameter" yaml:"baffle_cutout_diameter"`
	VolumeOccupied       *Quantity `json:"volume_occupied" yaml:"volume_occupied"`
	NetWeight            *Quantity `json:"net_weight" yaml:"net_weight"`
	Material             *string   `json:"material" yaml:"material"`
}

// speakerType returns general_info.speaker_type, or "" when unavailable.
func (r *Record) speakerType() string {
	if r == nil || r.GeneralInfo == nil {
		return ""
	}

	return r.GeneralInfo.SpeakerType
}

// ParseJSON decodes a JSON driver record.
//
// Errors:
//   - *FieldError wrapping ErrInvalidField when a field has the wrong type.
//   - ErrInvalidRecord for malformed JSON.
//
// Presence of fields is not checked here; New does that.
func ParseJSON(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			path := typeErr.Field
			if path == "" {
				path = "record"
			}

			return nil, &FieldError{Path: path, Err: fmt.Errorf("%w: want %s, got %s", ErrInvalidField, typeErr.Type, typeErr.Value)}
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return &rec, nil
}

// ParseYAML decodes a YAML driver record with the same schema as JSON.
func ParseYAML(data []byte) (*Record, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			msg := typeErr.Errors[0]
			return nil, &FieldError{Path: yamlPath(data, msg), Err: fmt.Errorf("%w: %s", ErrInvalidField, msg)}
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return &rec, nil
}

// yamlPath maps a yaml type error ("line N: ...") to the dotted path of
// the key whose value sits on line N, or "record" when none does.
func yamlPath(data []byte, msg string) string {
	var line int
	if _, err := fmt.Sscanf(msg, "line %d:", &line); err != nil {
		return "record"
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "record"
	}
	if p := nodePath(&root, line, ""); p != "" {
		return p
	}

	return "record"
}

func nodePath(n *yaml.Node, line int, prefix string) string {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if p := nodePath(c, line, prefix); p != "" {
				return p
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			path := k.Value
			if prefix != "" {
				path = prefix + "." + k.Value
			}
			if p := nodePath(v, line, path); p != "" {
				return p
			}
			if v.Line == line {
				return path
			}
		}
	}

	return ""
}

// Parse sniffs the format: a document starting with '{' is JSON, anything
// else is YAML.
func Parse(data []byte) (*Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidRecord)
	}
	if trimmed[0] == '{' {
		return ParseJSON(trimmed)
	}

	return ParseYAML(trimmed)
}

package codec

import "fmt"

// Institution is the compound record round-tripped through JSON and CBOR.
type Institution struct {
	Name                    string   `json:"name"`
	UndergraduateEnrollment uint16   `json:"undergraduate_enrollment"`
	GraduateEnrollment      uint16   `json:"graduate_enrollment"`
	Schools                 []string `json:"schools"`
	AcceptanceRate          float32  `json:"acceptance_rate"`
}

// institutionWire mirrors Institution with pointer fields so a strict
// decode can tell a missing field from a zero value.
type institutionWire struct {
	Name                    *string   `json:"name"`
	UndergraduateEnrollment *uint16   `json:"undergraduate_enrollment"`
	GraduateEnrollment      *uint16   `json:"graduate_enrollment"`
	Schools                 *[]string `json:"schools"`
	AcceptanceRate          *float32  `json:"acceptance_rate"`
}

func (w *institutionWire) toInstitution() (*Institution, error) {
	switch {
	case w.Name == nil:
		return nil, fmt.Errorf("institution: missing field %q", "name")
	case w.UndergraduateEnrollment == nil:
		return nil, fmt.Errorf("institution: missing field %q", "undergraduate_enrollment")
	case w.GraduateEnrollment == nil:
		return nil, fmt.Errorf("institution: missing field %q", "graduate_enrollment")
	case w.Schools == nil:
		return nil, fmt.Errorf("institution: missing field %q", "schools")
	case w.AcceptanceRate == nil:
		return nil, fmt.Errorf("institution: missing field %q", "acceptance_rate")
	}

	return &Institution{
		Name:                    *w.Name,
		UndergraduateEnrollment: *w.UndergraduateEnrollment,
		GraduateEnrollment:      *w.GraduateEnrollment,
		Schools:                 *w.Schools,
		AcceptanceRate:          *w.AcceptanceRate,
	}, nil
}

// MarshalInstitutionJSON renders the record as a JSON object.
func MarshalInstitutionJSON(r *Institution) (string, error) {
	data, err := NewJSON().Marshal(r)
	if err != nil {
		return "", fmt.Errorf("institution: %w", err)
	}
	return string(data), nil
}

// UnmarshalInstitutionJSON parses JSON text into a record. A missing
// field or a type mismatch is an error, not a zero value.
func UnmarshalInstitutionJSON(text string) (*Institution, error) {
	var w institutionWire
	if err := NewJSON().Unmarshal([]byte(text), &w); err != nil {
		return nil, fmt.Errorf("institution: %w", err)
	}
	return w.toInstitution()
}

// MarshalInstitutionCBOR encodes the record in CBOR.
func MarshalInstitutionCBOR(r *Institution) ([]byte, error) {
	data, err := NewCBOR().Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("institution: %w", err)
	}
	return data, nil
}

// UnmarshalInstitutionCBOR decodes a CBOR payload produced by
// MarshalInstitutionCBOR.
func UnmarshalInstitutionCBOR(data []byte) (*Institution, error) {
	var r Institution
	if err := NewCBOR().Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("institution: %w", err)
	}
	return &r, nil
}

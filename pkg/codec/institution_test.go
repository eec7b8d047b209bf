package codec

import (
	"reflect"
	"strings"
	"testing"
)

const uchicagoJSON = `
{
    "name": "University of Chicago",
    "undergraduate_enrollment": 7559,
    "graduate_enrollment": 10893,
    "schools": [
        "Biological Sciences Division",
        "Chicago Booth School of Business",
        "Crown Family School of Social Work, Policy, and Practice",
        "Divinity School",
        "Graham School of Continuing Liberal and Professional Studies",
        "Harris School of Public Policy",
        "Humanities Division",
        "Law School",
        "Physical Sciences Division",
        "Pritzker School of Medicine",
        "Pritzker School of Molecular Engineering",
        "Social Sciences Division"
    ],
    "acceptance_rate": 0.07
}`

func TestUnmarshalInstitutionJSON(t *testing.T) {
	r, err := UnmarshalInstitutionJSON(uchicagoJSON)
	if err != nil {
		t.Fatalf("UnmarshalInstitutionJSON failed: %v", err)
	}

	if r.Name != "University of Chicago" {
		t.Errorf("Name mismatch: got %q", r.Name)
	}
	if r.UndergraduateEnrollment != 7559 {
		t.Errorf("UndergraduateEnrollment mismatch: got %d", r.UndergraduateEnrollment)
	}
	if len(r.Schools) != 12 {
		t.Errorf("Schools length mismatch: got %d, want 12", len(r.Schools))
	}
	if r.AcceptanceRate != 0.07 {
		t.Errorf("AcceptanceRate mismatch: got %v, want 0.07", r.AcceptanceRate)
	}
}

func TestInstitution_JSONRoundTripIsIdempotent(t *testing.T) {
	first, err := UnmarshalInstitutionJSON(uchicagoJSON)
	if err != nil {
		t.Fatalf("UnmarshalInstitutionJSON failed: %v", err)
	}

	text, err := MarshalInstitutionJSON(first)
	if err != nil {
		t.Fatalf("MarshalInstitutionJSON failed: %v", err)
	}

	for _, field := range []string{"name", "undergraduate_enrollment", "graduate_enrollment", "schools", "acceptance_rate"} {
		if !strings.Contains(text, `"`+field+`"`) {
			t.Errorf("serialized JSON missing field %q: %s", field, text)
		}
	}

	second, err := UnmarshalInstitutionJSON(text)
	if err != nil {
		t.Fatalf("re-parsing serialized JSON failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip not idempotent: %+v != %+v", first, second)
	}
}

func TestUnmarshalInstitutionJSON_RejectsMissingFields(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{
			name: "missing name",
			text: `{"undergraduate_enrollment": 1, "graduate_enrollment": 2, "schools": [], "acceptance_rate": 0.5}`,
		},
		{
			name: "missing schools",
			text: `{"name": "X", "undergraduate_enrollment": 1, "graduate_enrollment": 2, "acceptance_rate": 0.5}`,
		},
		{
			name: "missing acceptance_rate",
			text: `{"name": "X", "undergraduate_enrollment": 1, "graduate_enrollment": 2, "schools": []}`,
		},
		{
			name: "empty object",
			text: `{}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UnmarshalInstitutionJSON(tc.text); err == nil {
				t.Error("expected an error for missing required field")
			}
		})
	}
}

func TestUnmarshalInstitutionJSON_RejectsTypeMismatch(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{
			name: "string where number expected",
			text: `{"name": "X", "undergraduate_enrollment": "lots", "graduate_enrollment": 2, "schools": [], "acceptance_rate": 0.5}`,
		},
		{
			name: "number where string expected",
			text: `{"name": 7, "undergraduate_enrollment": 1, "graduate_enrollment": 2, "schools": [], "acceptance_rate": 0.5}`,
		},
		{
			name: "object where array expected",
			text: `{"name": "X", "undergraduate_enrollment": 1, "graduate_enrollment": 2, "schools": {}, "acceptance_rate": 0.5}`,
		},
		{
			name: "not json at all",
			text: `undergrads: lots`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UnmarshalInstitutionJSON(tc.text); err == nil {
				t.Error("expected an error for type mismatch")
			}
		})
	}
}

func TestInstitution_CBORRoundTrip(t *testing.T) {
	original, err := UnmarshalInstitutionJSON(uchicagoJSON)
	if err != nil {
		t.Fatalf("UnmarshalInstitutionJSON failed: %v", err)
	}

	data, err := MarshalInstitutionCBOR(original)
	if err != nil {
		t.Fatalf("MarshalInstitutionCBOR failed: %v", err)
	}

	got, err := UnmarshalInstitutionCBOR(data)
	if err != nil {
		t.Fatalf("UnmarshalInstitutionCBOR failed: %v", err)
	}

	if !reflect.DeepEqual(original, got) {
		t.Errorf("CBOR round trip mismatch: %+v != %+v", original, got)
	}
	if got.GraduateEnrollment != 10893 {
		t.Errorf("GraduateEnrollment mismatch: got %d", got.GraduateEnrollment)
	}
	if got.AcceptanceRate != 0.07 {
		t.Errorf("AcceptanceRate mismatch: got %v", got.AcceptanceRate)
	}
}

func TestUnmarshalInstitutionCBOR_RejectsMalformedPayload(t *testing.T) {
	original := &Institution{Name: "X", Schools: []string{}}

	data, err := MarshalInstitutionCBOR(original)
	if err != nil {
		t.Fatalf("MarshalInstitutionCBOR failed: %v", err)
	}

	if _, err := UnmarshalInstitutionCBOR(data[:len(data)-2]); err == nil {
		t.Error("expected an error for truncated CBOR payload")
	}
	if _, err := UnmarshalInstitutionCBOR([]byte{0x9F, 0x00}); err == nil {
		t.Error("expected an error for malformed CBOR payload")
	}
}

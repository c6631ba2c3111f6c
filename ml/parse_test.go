package ml

import (
	"errors"
	"testing"
)

func validFormValues() map[string]string {
	return map[string]string{
		"age":      "63",
		"sex":      "1",
		"cp":       "0",
		"trestbps": "145",
		"chol":     "233",
		"fbs":      "1",
		"restecg":  "0",
		"thalach":  "150",
		"exang":    "0",
		"oldpeak":  "2.3",
		"slope":    "0",
		"ca":       "0",
		"thal":     "1",
	}
}

func TestParseFeatures(t *testing.T) {
	f, err := ParseFeatures(validFormValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Age != 63 || f.Oldpeak != 2.3 || f.Thal != 1 {
		t.Fatalf("unexpected features: %+v", f)
	}
}

func TestParseFeaturesCheckboxSpellings(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"on", 1},
		{"true", 1},
		{"yes", 1},
		{"off", 0},
		{"false", 0},
		{"no", 0},
		{"1", 1},
		{"0", 0},
	}

	for _, tc := range cases {
		values := validFormValues()
		values["exang"] = tc.raw
		f, err := ParseFeatures(values)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.raw, err)
		}
		if f.Exang != tc.want {
			t.Errorf("%q: got %g, want %g", tc.raw, f.Exang, tc.want)
		}
	}
}

func TestParseFeaturesMissingField(t *testing.T) {
	values := validFormValues()
	delete(values, "chol")

	_, err := ParseFeatures(values)
	if err == nil {
		t.Fatal("expected error for missing field")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "chol" {
		t.Fatalf("expected chol validation error, got %v", err)
	}
}

func TestParseFeaturesNonNumeric(t *testing.T) {
	values := validFormValues()
	values["age"] = "old"

	_, err := ParseFeatures(values)
	if err == nil {
		t.Fatal("expected error for non-numeric field")
	}
}

func TestParseFeaturesRejectsOutOfRange(t *testing.T) {
	values := validFormValues()
	values["trestbps"] = "9000"

	_, err := ParseFeatures(values)
	if err == nil {
		t.Fatal("expected range error")
	}
}

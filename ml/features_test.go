package ml

import (
	"errors"
	"testing"
)

func validFeatures() PatientFeatures {
	return PatientFeatures{
		Age:      63,
		Sex:      1,
		CP:       0,
		Trestbps: 145,
		Chol:     233,
		FBS:      1,
		RestECG:  0,
		Thalach:  150,
		Exang:    0,
		Oldpeak:  2.3,
		Slope:    0,
		CA:       0,
		Thal:     1,
	}
}

func TestFeatureVectorOrder(t *testing.T) {
	f := validFeatures()
	vector := FeatureVector(f)
	if len(vector) != FeatureCount {
		t.Fatalf("expected %d features, got %d", FeatureCount, len(vector))
	}
	expected := []float64{63, 1, 0, 145, 233, 1, 0, 150, 0, 2.3, 0, 0, 1}
	for i, v := range expected {
		if vector[i] != v {
			t.Errorf("feature %s: got %g, want %g", FeatureNames()[i], vector[i], v)
		}
	}
}

func TestFeatureNamesMatchRanges(t *testing.T) {
	names := FeatureNames()
	if len(names) != FeatureCount {
		t.Fatalf("expected %d names, got %d", FeatureCount, len(names))
	}
	for _, name := range names {
		if _, ok := featureRanges[name]; !ok {
			t.Errorf("no range defined for %s", name)
		}
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	if err := validFeatures().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PatientFeatures)
		field  string
	}{
		{"age too high", func(f *PatientFeatures) { f.Age = 200 }, "age"},
		{"age zero", func(f *PatientFeatures) { f.Age = 0 }, "age"},
		{"sex not binary", func(f *PatientFeatures) { f.Sex = 2 }, "sex"},
		{"cp too high", func(f *PatientFeatures) { f.CP = 4 }, "cp"},
		{"trestbps too low", func(f *PatientFeatures) { f.Trestbps = 10 }, "trestbps"},
		{"chol too high", func(f *PatientFeatures) { f.Chol = 900 }, "chol"},
		{"oldpeak negative", func(f *PatientFeatures) { f.Oldpeak = -1 }, "oldpeak"},
		{"ca too high", func(f *PatientFeatures) { f.CA = 5 }, "ca"},
		{"thal fractional", func(f *PatientFeatures) { f.Thal = 1.5 }, "thal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFeatures()
			tc.mutate(&f)
			err := f.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, verr.Field)
			}
		})
	}
}

func TestValidateAllowsFractionalOldpeak(t *testing.T) {
	f := validFeatures()
	f.Oldpeak = 3.7
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

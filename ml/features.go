package ml

import (
	"fmt"
)

// PatientFeatures holds the 13 clinical parameters in the exact order the
// trained artifact expects. Field order and encoding must not change without
// retraining the model.
type PatientFeatures struct {
	Age      float64 // years
	Sex      float64 // 1 = male, 0 = female
	CP       float64 // chest pain type, 0..3
	Trestbps float64 // resting blood pressure, mm Hg
	Chol     float64 // serum cholesterol, mg/dl
	FBS      float64 // fasting blood sugar > 120 mg/dl, 0/1
	RestECG  float64 // resting ECG result, 0..2
	Thalach  float64 // maximum heart rate achieved
	Exang    float64 // exercise induced angina, 0/1
	Oldpeak  float64 // ST depression induced by exercise
	Slope    float64 // slope of the peak exercise ST segment, 0..2
	CA       float64 // number of major vessels colored by fluoroscopy, 0..4
	Thal     float64 // thalassemia category, 0..3
}

// FeatureCount is the input arity the artifact was trained with.
const FeatureCount = 13

type featureRange struct {
	min, max float64
	integer  bool
}

var featureRanges = map[string]featureRange{
	"age":      {1, 120, true},
	"sex":      {0, 1, true},
	"cp":       {0, 3, true},
	"trestbps": {50, 300, true},
	"chol":     {50, 700, true},
	"fbs":      {0, 1, true},
	"restecg":  {0, 2, true},
	"thalach":  {40, 250, true},
	"exang":    {0, 1, true},
	"oldpeak":  {0, 10, false},
	"slope":    {0, 2, true},
	"ca":       {0, 4, true},
	"thal":     {0, 3, true},
}

func FeatureNames() []string {
	return []string{
		"age",
		"sex",
		"cp",
		"trestbps",
		"chol",
		"fbs",
		"restecg",
		"thalach",
		"exang",
		"oldpeak",
		"slope",
		"ca",
		"thal",
	}
}

func FeatureVector(f PatientFeatures) []float64 {
	return []float64{
		f.Age,
		f.Sex,
		f.CP,
		f.Trestbps,
		f.Chol,
		f.FBS,
		f.RestECG,
		f.Thalach,
		f.Exang,
		f.Oldpeak,
		f.Slope,
		f.CA,
		f.Thal,
	}
}

// ValidationError names the rejected field so handlers can surface it as a
// form error rather than a server failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate performs basic range checks on every field. Bad vectors are
// rejected here before they ever reach the model call.
func (f PatientFeatures) Validate() error {
	vector := FeatureVector(f)
	for i, name := range FeatureNames() {
		r := featureRanges[name]
		v := vector[i]
		if v != v { // NaN
			return &ValidationError{Field: name, Reason: "not a number"}
		}
		if v < r.min || v > r.max {
			return &ValidationError{
				Field:  name,
				Reason: fmt.Sprintf("value %g outside range [%g, %g]", v, r.min, r.max),
			}
		}
		if r.integer && v != float64(int64(v)) {
			return &ValidationError{Field: name, Reason: "must be a whole number"}
		}
	}
	return nil
}

package ml

import (
	"strconv"
	"strings"
)

// ParseFeatures maps named form or JSON fields onto PatientFeatures. Binary
// fields tolerate the spellings browsers actually send for checkboxes
// ("on"/"off", "true"/"false", "yes"/"no") in addition to "0"/"1".
func ParseFeatures(values map[string]string) (PatientFeatures, error) {
	var f PatientFeatures
	targets := map[string]*float64{
		"age":      &f.Age,
		"sex":      &f.Sex,
		"cp":       &f.CP,
		"trestbps": &f.Trestbps,
		"chol":     &f.Chol,
		"fbs":      &f.FBS,
		"restecg":  &f.RestECG,
		"thalach":  &f.Thalach,
		"exang":    &f.Exang,
		"oldpeak":  &f.Oldpeak,
		"slope":    &f.Slope,
		"ca":       &f.CA,
		"thal":     &f.Thal,
	}

	for _, name := range FeatureNames() {
		raw, ok := values[name]
		if !ok || strings.TrimSpace(raw) == "" {
			return PatientFeatures{}, &ValidationError{Field: name, Reason: "missing"}
		}
		v, err := parseValue(raw)
		if err != nil {
			return PatientFeatures{}, &ValidationError{Field: name, Reason: "not numeric"}
		}
		*targets[name] = v
	}

	if err := f.Validate(); err != nil {
		return PatientFeatures{}, err
	}
	return f, nil
}

func parseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	switch strings.ToLower(s) {
	case "on", "true", "yes":
		return 1, nil
	case "off", "false", "no":
		return 0, nil
	}
	return 0, strconv.ErrSyntax
}

package http

import (
	"golang.org/x/text/language"
)

var labelMatcher = language.NewMatcher([]language.Tag{
	language.English, // default
	language.Chinese,
})

var riskLabelsEN = map[int]string{
	1: "Very Low Risk",
	2: "Low to Moderate Risk",
	3: "Moderate Risk",
	4: "High Risk",
	5: "Very High Risk",
}

var riskLabelsZH = map[int]string{
	1: "风险极低",
	2: "风险较低",
	3: "风险中等",
	4: "风险较高",
	5: "风险极高",
}

// riskLabel localizes the risk-level name using the request's
// Accept-Language header. Unknown languages fall back to English.
func riskLabel(level int, acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return riskLabelsEN[level]
	}

	_, index, _ := labelMatcher.Match(tags...)
	if index == 1 {
		return riskLabelsZH[level]
	}
	return riskLabelsEN[level]
}

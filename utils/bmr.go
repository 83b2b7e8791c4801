package utils

import "strings"

// RecommendedCalories estimates daily caloric need from the revised
// Harris-Benedict formula with sex-specific coefficients. Weight in kg,
// height in cm. Inputs are taken as-is; callers validate ranges first.
func RecommendedCalories(weightKg, heightCm float64, ageYears int, gender string) float64 {
	age := float64(ageYears)
	if strings.EqualFold(strings.TrimSpace(gender), "male") {
		return 13.397*weightKg + 4.799*heightCm - 5.677*age + 88.362
	}
	return 9.247*weightKg + 3.098*heightCm - 4.330*age + 447.593
}

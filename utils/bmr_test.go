package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecommendedCaloriesMale(t *testing.T) {
	got := RecommendedCalories(70, 175, 30, "Male")
	// 13.397*70 + 4.799*175 - 5.677*30 + 88.362
	require.InDelta(t, 1695.667, got, 0.001)
}

func TestRecommendedCaloriesFemale(t *testing.T) {
	got := RecommendedCalories(60, 165, 25, "Female")
	// 9.247*60 + 3.098*165 - 4.330*25 + 447.593
	require.InDelta(t, 1405.333, got, 0.001)
}

func TestRecommendedCaloriesOtherUsesFemaleCoefficients(t *testing.T) {
	require.Equal(t, RecommendedCalories(60, 165, 25, "Other"), RecommendedCalories(60, 165, 25, "Female"))
}

func TestRecommendedCaloriesPositiveForPositiveInputs(t *testing.T) {
	require.Greater(t, RecommendedCalories(45, 150, 80, "Male"), 0.0)
	require.Greater(t, RecommendedCalories(45, 150, 80, "Female"), 0.0)
}

package utils

import "strconv"

// ParseCalorieText pulls the caloric estimate out of free-form model output.
// Only the first contiguous digit run counts, so a trailing serving count
// ("245 kcal (2 servings)") cannot corrupt the value. No digits means 0.
func ParseCalorieText(s string) int {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			if err != nil {
				return 0
			}
			return n
		}
	}
	if start < 0 {
		return 0
	}
	n, err := strconv.Atoi(s[start:])
	if err != nil {
		return 0
	}
	return n
}

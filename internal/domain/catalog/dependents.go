package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"nanny_booking/internal/domain/entities"
)

const (
	maxDependentAgeYears  = 18
	maxDependentAgeMonths = maxDependentAgeYears * 12
)

var ageNumber = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseAge reads an age token such as "6 months", "4 years" or "9".
// It reports whether the value is in months; unparseable tokens are age 0.
func ParseAge(token string) (value float64, months bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if m := ageNumber.FindString(t); m != "" {
		value, _ = strconv.ParseFloat(m, 64)
	}
	return value, strings.Contains(t, "month")
}

// IsDependentAge reports whether an age token belongs to a child aged 18 or younger.
func IsDependentAge(token string) bool {
	value, months := ParseAge(token)
	if months {
		return value <= maxDependentAgeMonths
	}
	return value <= maxDependentAgeYears
}

// CountDependents counts children aged 18 or younger plus other dependents.
// Without any recorded ages the declared number of children is used.
func CountDependents(p entities.UserPreferences) int {
	children := 0
	if len(p.ChildrenAges) == 0 {
		children = p.NumberOfChildren
	} else {
		for _, age := range p.ChildrenAges {
			if IsDependentAge(age) {
				children++
			}
		}
	}
	if children < 0 {
		children = 0
	}
	others := p.OtherDependents
	if others < 0 {
		others = 0
	}
	return children + others
}

package tariff

import (
	"fmt"

	"premium-quote/core/quote"
)

// Category maps a vehicle type to its rate category; unknown types get DefaultCategory
func (r *Rules) Category(v quote.VehicleType) Category {
	if c, ok := r.VehicleCategories[v]; ok {
		return c
	}
	return r.DefaultCategory
}

// AgeGroup resolves the age bracket of a vehicle. NoGroup means the vehicle
// is too young to be rated in its category.
func (r *Rules) AgeGroup(age int, c Category) AgeGroup {
	for _, th := range r.Categories[c].Thresholds {
		if age >= th.MinAge {
			return th.Group
		}
	}
	return NoGroup
}

// GroupRange describes the age span of a group, e.g. "40+" or "25-39"
func (r *Rules) GroupRange(c Category, g AgeGroup) string {
	thresholds := r.Categories[c].Thresholds
	for i, th := range thresholds {
		if th.Group != g {
			continue
		}
		if i == 0 {
			return fmt.Sprintf("%d+", th.MinAge)
		}
		return fmt.Sprintf("%d-%d", th.MinAge, thresholds[i-1].MinAge-1)
	}
	return ""
}

// VehicleAge is the plain year difference used by the tariff, not a calendar-exact age
func VehicleAge(registration quote.Date, currentYear int) int {
	return currentYear - registration.Year()
}

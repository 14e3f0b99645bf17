// Package preferences holds the merge and normalization rules of the booking
// wizard document. Nothing here fails: malformed input is normalized, not rejected.
package preferences

import (
	"strings"

	"nanny_booking/internal/domain/entities"
)

// Defaults returns the document a fresh booking wizard starts from.
func Defaults() entities.UserPreferences {
	return entities.UserPreferences{
		ChildrenAges:       []string{},
		HouseholdSupport:   []string{},
		ChildrenFocusAreas: []string{},
		SelectedDates:      []string{},
		TimeSlots:          []entities.TimeSlot{},
	}
}

// NormalizeDurationType lower-cases the value and replaces hyphens with underscores.
func NormalizeDurationType(d entities.DurationType) entities.DurationType {
	s := strings.ToLower(strings.TrimSpace(string(d)))
	return entities.DurationType(strings.ReplaceAll(s, "-", "_"))
}

// Apply merges patch into current and re-establishes every document invariant.
//
// Order matters: the merge happens first and the long-term guard runs on the
// merged result, so a patch that sets long_term together with dates or slots
// still ends up with them cleared.
func Apply(current entities.UserPreferences, patch entities.PreferencesPatch) entities.UserPreferences {
	prevCooking := current.Cooking
	next := merge(current.Clone(), patch)
	next = Normalize(next)

	if patch.Cooking == nil {
		if patch.TouchesTags() {
			next.Cooking = next.HasTag(entities.TagFoodPrep)
		} else {
			next.Cooking = prevCooking || next.HasTag(entities.TagFoodPrep)
		}
	}
	return next
}

// Normalize enforces the invariants that do not depend on what an update touched.
// It is also applied to documents loaded from the remote profile or the cache.
func Normalize(p entities.UserPreferences) entities.UserPreferences {
	p.DurationType = NormalizeDurationType(p.DurationType)
	p.BookingSubType = entities.BookingSubType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(p.BookingSubType))), "-", "_"))

	if p.ChildrenAges == nil {
		p.ChildrenAges = []string{}
	}
	if p.HouseholdSupport == nil {
		p.HouseholdSupport = []string{}
	}
	if p.ChildrenFocusAreas == nil {
		p.ChildrenFocusAreas = []string{}
	}
	if p.SelectedDates == nil {
		p.SelectedDates = []string{}
	}
	if p.TimeSlots == nil {
		p.TimeSlots = []entities.TimeSlot{}
	}
	if p.NumberOfChildren < 0 {
		p.NumberOfChildren = 0
	}
	if p.OtherDependents < 0 {
		p.OtherDependents = 0
	}

	// long-term bookings recur on the weekly schedule; date-specific fields
	// from a short-term attempt must not survive alongside them.
	if p.DurationType == entities.DurationLongTerm {
		p.BookingSubType = entities.SubTypeNone
		p.SelectedDates = []string{}
		p.TimeSlots = []entities.TimeSlot{}
	}
	if p.HasTag(entities.TagFoodPrep) {
		p.Cooking = true
	}
	return p
}

func merge(p entities.UserPreferences, patch entities.PreferencesPatch) entities.UserPreferences {
	setString(&p.Location, patch.Location)
	setString(&p.StreetAddress, patch.StreetAddress)
	setString(&p.Suburb, patch.Suburb)
	setString(&p.City, patch.City)
	setString(&p.Province, patch.Province)
	setString(&p.PostalCode, patch.PostalCode)
	setString(&p.EstateInfo, patch.EstateInfo)

	setInt(&p.NumberOfChildren, patch.NumberOfChildren)
	setStrings(&p.ChildrenAges, patch.ChildrenAges)
	setInt(&p.OtherDependents, patch.OtherDependents)
	setString(&p.PetsInHome, patch.PetsInHome)
	if patch.HomeSize != nil {
		p.HomeSize = *patch.HomeSize
	}

	setBool(&p.SpecialNeeds, patch.SpecialNeeds)
	setBool(&p.ECDTraining, patch.ECDTraining)
	setBool(&p.DrivingSupport, patch.DrivingSupport)
	setBool(&p.DrivingRequirement, patch.DrivingRequirement)
	setBool(&p.Cooking, patch.Cooking)
	setBool(&p.Montessori, patch.Montessori)
	setBool(&p.BackupNanny, patch.BackupNanny)
	setBool(&p.LightHouseKeeping, patch.LightHouseKeeping)
	setBool(&p.ErrandRuns, patch.ErrandRuns)
	setStrings(&p.HouseholdSupport, patch.HouseholdSupport)
	setStrings(&p.ChildrenFocusAreas, patch.ChildrenFocusAreas)

	if patch.Schedule != nil {
		p.Schedule = *patch.Schedule
	}
	setStrings(&p.SelectedDates, patch.SelectedDates)
	if patch.TimeSlots != nil {
		p.TimeSlots = append([]entities.TimeSlot{}, (*patch.TimeSlots)...)
	}

	if patch.DurationType != nil {
		p.DurationType = *patch.DurationType
	}
	if patch.BookingSubType != nil {
		p.BookingSubType = *patch.BookingSubType
	}
	if patch.LivingArrangement != nil {
		p.LivingArrangement = *patch.LivingArrangement
	}
	if patch.ExperienceLevel != nil {
		p.ExperienceLevel = *patch.ExperienceLevel
	}
	setString(&p.Languages, patch.Languages)
	return p
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v != nil {
		*dst = append([]string{}, (*v)...)
	}
}

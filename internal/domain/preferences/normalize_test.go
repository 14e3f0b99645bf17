package preferences

import (
	"testing"

	"nanny_booking/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeDurationType(t *testing.T) {
	tests := []struct {
		in   entities.DurationType
		want entities.DurationType
	}{
		{"long-term", entities.DurationLongTerm},
		{"short-term", entities.DurationShortTerm},
		{" Short_Term ", entities.DurationShortTerm},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDurationType(tt.in))
		})
	}
}

func TestApply_MergesShallowly(t *testing.T) {
	current := Defaults()
	current.City = "Cape Town"
	current.NumberOfChildren = 2

	next := Apply(current, entities.PreferencesPatch{
		NumberOfChildren: ptr(3),
		ChildrenAges:     ptr([]string{"6 months", "4 years", "9"}),
	})

	assert.Equal(t, "Cape Town", next.City)
	assert.Equal(t, 3, next.NumberOfChildren)
	assert.Equal(t, []string{"6 months", "4 years", "9"}, next.ChildrenAges)
	assert.Equal(t, 2, current.NumberOfChildren, "input must not be mutated")
}

func TestApply_DoesNotAliasPatchSlices(t *testing.T) {
	dates := []string{"2024-06-01"}
	next := Apply(Defaults(), entities.PreferencesPatch{SelectedDates: &dates})
	dates[0] = "1999-01-01"

	assert.Equal(t, []string{"2024-06-01"}, next.SelectedDates)
}

func TestApply_LongTermClearsDateSpecificFields(t *testing.T) {
	t.Run("same update sets long term and short-term fields", func(t *testing.T) {
		next := Apply(Defaults(), entities.PreferencesPatch{
			BookingSubType: ptr(entities.SubTypeEmergency),
			SelectedDates:  ptr([]string{"2024-06-01"}),
			TimeSlots:      ptr([]entities.TimeSlot{{Start: "18:00", End: "22:00"}}),
			DurationType:   ptr(entities.DurationType("long-term")),
		})

		assert.Equal(t, entities.DurationLongTerm, next.DurationType)
		assert.Equal(t, entities.SubTypeNone, next.BookingSubType)
		assert.Empty(t, next.SelectedDates)
		assert.Empty(t, next.TimeSlots)
		assert.NotNil(t, next.SelectedDates)
	})

	t.Run("existing long term rejects later date writes", func(t *testing.T) {
		current := Apply(Defaults(), entities.PreferencesPatch{DurationType: ptr(entities.DurationLongTerm)})
		next := Apply(current, entities.PreferencesPatch{
			SelectedDates:  ptr([]string{"2024-06-03"}),
			BookingSubType: ptr(entities.SubTypeDateNight),
		})

		assert.Empty(t, next.SelectedDates)
		assert.Equal(t, entities.SubTypeNone, next.BookingSubType)
	})

	t.Run("switching to short term keeps new dates", func(t *testing.T) {
		current := Apply(Defaults(), entities.PreferencesPatch{DurationType: ptr(entities.DurationLongTerm)})
		next := Apply(current, entities.PreferencesPatch{
			DurationType:  ptr(entities.DurationShortTerm),
			SelectedDates: ptr([]string{"2024-06-03"}),
		})

		assert.Equal(t, []string{"2024-06-03"}, next.SelectedDates)
	})
}

func TestApply_CookingDerivation(t *testing.T) {
	t.Run("food-prep tag implies cooking", func(t *testing.T) {
		next := Apply(Defaults(), entities.PreferencesPatch{
			HouseholdSupport: ptr([]string{entities.TagFoodPrep}),
		})
		assert.True(t, next.Cooking)
	})

	t.Run("food-prep focus area implies cooking", func(t *testing.T) {
		next := Apply(Defaults(), entities.PreferencesPatch{
			ChildrenFocusAreas: ptr([]string{"homework", entities.TagFoodPrep}),
		})
		assert.True(t, next.Cooking)
	})

	t.Run("unrelated update keeps food-prep derived cooking", func(t *testing.T) {
		current := Apply(Defaults(), entities.PreferencesPatch{
			HouseholdSupport: ptr([]string{entities.TagFoodPrep}),
		})
		next := Apply(current, entities.PreferencesPatch{City: ptr("Durban")})
		assert.True(t, next.Cooking)
	})

	t.Run("unrelated update keeps explicit cooking", func(t *testing.T) {
		current := Apply(Defaults(), entities.PreferencesPatch{Cooking: ptr(true)})
		next := Apply(current, entities.PreferencesPatch{City: ptr("Durban")})
		assert.True(t, next.Cooking)
	})

	t.Run("removing the tag clears derived cooking", func(t *testing.T) {
		current := Apply(Defaults(), entities.PreferencesPatch{
			HouseholdSupport: ptr([]string{entities.TagFoodPrep}),
		})
		next := Apply(current, entities.PreferencesPatch{
			HouseholdSupport: ptr([]string{entities.TagLightHousekeeping}),
		})
		assert.False(t, next.Cooking)
	})

	t.Run("explicit cooking without tags is honoured", func(t *testing.T) {
		next := Apply(Defaults(), entities.PreferencesPatch{Cooking: ptr(true)})
		assert.True(t, next.Cooking)

		next = Apply(next, entities.PreferencesPatch{Cooking: ptr(false)})
		assert.False(t, next.Cooking)
	})
}

func TestApply_Idempotent(t *testing.T) {
	patches := []entities.PreferencesPatch{
		{DurationType: ptr(entities.DurationType("short-term")), BookingSubType: ptr(entities.SubTypeEmergency), SelectedDates: ptr([]string{"2024-06-01"})},
		{DurationType: ptr(entities.DurationLongTerm), TimeSlots: ptr([]entities.TimeSlot{{Start: "08:00", End: "17:00"}})},
		{HouseholdSupport: ptr([]string{entities.TagFoodPrep})},
		{HouseholdSupport: ptr([]string{})},
		{HomeSize: ptr(entities.HomeSizeGrandRetreat), LightHouseKeeping: ptr(true)},
	}

	start := Apply(Defaults(), entities.PreferencesPatch{City: ptr("Pretoria"), Cooking: ptr(true)})
	for i, p := range patches {
		once := Apply(start, p)
		twice := Apply(once, p)
		require.Equal(t, once, twice, "patch %d is not idempotent", i)
	}
}

func TestNormalize_FillsCollections(t *testing.T) {
	p := Normalize(entities.UserPreferences{NumberOfChildren: -2})

	assert.NotNil(t, p.ChildrenAges)
	assert.NotNil(t, p.HouseholdSupport)
	assert.NotNil(t, p.ChildrenFocusAreas)
	assert.NotNil(t, p.SelectedDates)
	assert.NotNil(t, p.TimeSlots)
	assert.Equal(t, 0, p.NumberOfChildren)
}

package catalog

import (
	"testing"
	"time"

	"nanny_booking/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomyFor(t *testing.T) {
	tests := []struct {
		name string
		d    entities.DurationType
		sub  entities.BookingSubType
		want Taxonomy
	}{
		{"emergency", entities.DurationShortTerm, entities.SubTypeEmergency, TaxonomyHourly},
		{"date night", entities.DurationShortTerm, entities.SubTypeDateNight, TaxonomyHourly},
		{"temporary", entities.DurationShortTerm, entities.SubTypeTemporarySupport, TaxonomyTemporary},
		{"school holiday", entities.DurationShortTerm, entities.SubTypeSchoolHoliday, TaxonomyDaily},
		{"unset sub type", entities.DurationShortTerm, entities.SubTypeNone, TaxonomyDaily},
		{"long term", entities.DurationLongTerm, entities.SubTypeNone, TaxonomyLongTerm},
		{"unset duration", "", entities.SubTypeEmergency, TaxonomyLongTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaxonomyFor(tt.d, tt.sub))
		})
	}
}

func TestIsDependentAge(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"6 months", true},
		{"216 months", true},
		{"217 months", false},
		{"19 years", false},
		{"18 years", true},
		{"18", true},
		{"19", false},
		{"toddler", true},
		{"", true},
		{"2.5 Years", true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDependentAge(tt.token))
		})
	}
}

func TestCountDependents(t *testing.T) {
	p := entities.UserPreferences{
		NumberOfChildren: 3,
		ChildrenAges:     []string{"6 months", "19 years", "18"},
		OtherDependents:  1,
	}
	assert.Equal(t, 3, CountDependents(p))

	p.ChildrenAges = nil
	assert.Equal(t, 4, CountDependents(p), "falls back to declared children")
}

func TestDayRate(t *testing.T) {
	assert.Equal(t, TemporaryWeekendRate, DayRate(time.Saturday))
	assert.Equal(t, TemporaryWeekendRate, DayRate(time.Sunday))
	assert.Equal(t, TemporaryWeekendRate, DayRate(time.Friday))
	assert.Equal(t, TemporaryWeekdayRate, DayRate(time.Monday))
	assert.Equal(t, TemporaryWeekdayRate, DayRate(time.Thursday))
}

func TestLightHousekeepingRate(t *testing.T) {
	assert.Equal(t, 80.0, LightHousekeepingRate(entities.HomeSizePocketPalace))
	assert.Equal(t, 150.0, LightHousekeepingRate(entities.HomeSizeFamilyHub))
	assert.Equal(t, 200.0, LightHousekeepingRate(entities.HomeSizeGrandRetreat))
	assert.Equal(t, 300.0, LightHousekeepingRate(entities.HomeSizeEpicEstates))
	assert.Equal(t, 150.0, LightHousekeepingRate(""))
}

func TestBaseRate(t *testing.T) {
	t.Run("hourly by sub type", func(t *testing.T) {
		assert.Equal(t, 80.0, BaseRate(RateKey{Taxonomy: TaxonomyHourly, SubType: entities.SubTypeEmergency}))
		assert.Equal(t, 120.0, BaseRate(RateKey{Taxonomy: TaxonomyHourly, SubType: entities.SubTypeDateNight}))
	})

	t.Run("daily extra dependents", func(t *testing.T) {
		assert.Equal(t, 450.0, BaseRate(RateKey{Taxonomy: TaxonomyDaily, Dependents: 3}))
		assert.Equal(t, 550.0, BaseRate(RateKey{Taxonomy: TaxonomyDaily, Dependents: 5}))
	})

	t.Run("long term table and tiers", func(t *testing.T) {
		key := RateKey{Taxonomy: TaxonomyLongTerm, HomeSize: entities.HomeSizeGrandRetreat, LivingArrangement: entities.LivingIn, Dependents: 2}
		assert.Equal(t, 6500.0, BaseRate(key))

		key.Dependents = 4
		assert.Equal(t, 7500.0, BaseRate(key))

		key.Services = ServiceFlags{Cooking: true}
		assert.Equal(t, 7700.0, BaseRate(key))

		key.Services = ServiceFlags{Cooking: true, Montessori: true}
		assert.Equal(t, 8000.0, BaseRate(key))
	})

	t.Run("long term defaults", func(t *testing.T) {
		assert.Equal(t, 5000.0, BaseRate(RateKey{Taxonomy: TaxonomyLongTerm}))
	})
}

func TestAddOns_PerTaxonomyUnits(t *testing.T) {
	price := func(tax Taxonomy, key AddOnKey) (float64, bool) {
		for _, r := range AddOns(tax) {
			if r.Key == key {
				return r.Price, true
			}
		}
		return 0, false
	}

	cooking, _ := price(TaxonomyHourly, AddOnCooking)
	assert.Equal(t, 12.0, cooking)
	cooking, _ = price(TaxonomyTemporary, AddOnCooking)
	assert.Equal(t, 120.0, cooking)
	cooking, _ = price(TaxonomyLongTerm, AddOnCooking)
	assert.Equal(t, 1500.0, cooking)

	_, listed := price(TaxonomyLongTerm, AddOnLightHousekeeping)
	assert.False(t, listed, "light housekeeping is bundled for long term")
}

func TestAddOns_ReturnsCopy(t *testing.T) {
	list := AddOns(TaxonomyLongTerm)
	list[0].Price = 1

	assert.Equal(t, 2000.0, AddOns(TaxonomyLongTerm)[0].Price)
}

func TestSelected_HonoursTags(t *testing.T) {
	p := entities.UserPreferences{HouseholdSupport: []string{entities.TagFoodPrep, entities.TagLightHousekeeping}}

	assert.True(t, Selected(p, AddOnCooking))
	assert.True(t, Selected(p, AddOnLightHousekeeping))
	assert.False(t, Selected(p, AddOnDrivingSupport))
}

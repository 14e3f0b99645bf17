package catalog

import (
	"time"

	"nanny_booking/internal/domain/entities"
)

const (
	DefaultHomeSize          = entities.HomeSizeFamilyHub
	DefaultLivingArrangement = entities.LivingOut

	// HourlyServiceFee is added once to every hourly booking.
	HourlyServiceFee = 35.0

	DailyBaseRate = 450.0

	// Dependents above this count pay the extra-child surcharge.
	DependentThreshold      = 3
	ExtraDependentSurcharge = 50.0

	TemporaryWeekendRate = 350.0
	TemporaryWeekdayRate = 280.0
)

var hourlyBaseRates = map[entities.BookingSubType]float64{
	entities.SubTypeEmergency: 80,
	entities.SubTypeDateNight: 120,
}

var lightHousekeepingRates = map[entities.HomeSize]float64{
	entities.HomeSizePocketPalace: 80,
	entities.HomeSizeFamilyHub:    150,
	entities.HomeSizeGrandRetreat: 200,
	entities.HomeSizeEpicEstates:  300,
}

type longTermKey struct {
	arrangement entities.LivingArrangement
	homeSize    entities.HomeSize
	overThree   bool
}

// Monthly base rates before service tier and experience adjustments.
var longTermBaseRates = map[longTermKey]float64{
	{entities.LivingOut, entities.HomeSizePocketPalace, false}: 4500,
	{entities.LivingOut, entities.HomeSizePocketPalace, true}:  5500,
	{entities.LivingOut, entities.HomeSizeFamilyHub, false}:    5000,
	{entities.LivingOut, entities.HomeSizeFamilyHub, true}:     6000,
	{entities.LivingOut, entities.HomeSizeGrandRetreat, false}: 6000,
	{entities.LivingOut, entities.HomeSizeGrandRetreat, true}:  7000,
	{entities.LivingOut, entities.HomeSizeEpicEstates, false}:  7500,
	{entities.LivingOut, entities.HomeSizeEpicEstates, true}:   8500,
	{entities.LivingIn, entities.HomeSizePocketPalace, false}:  5000,
	{entities.LivingIn, entities.HomeSizePocketPalace, true}:   6000,
	{entities.LivingIn, entities.HomeSizeFamilyHub, false}:     5500,
	{entities.LivingIn, entities.HomeSizeFamilyHub, true}:      6500,
	{entities.LivingIn, entities.HomeSizeGrandRetreat, false}:  6500,
	{entities.LivingIn, entities.HomeSizeGrandRetreat, true}:   7500,
	{entities.LivingIn, entities.HomeSizeEpicEstates, false}:   8000,
	{entities.LivingIn, entities.HomeSizeEpicEstates, true}:    9000,
}

// ServiceTier groups nannies by the skills the selected services require.
type ServiceTier string

const (
	TierStandard   ServiceTier = "standard"
	TierAllRounder ServiceTier = "all_rounder"
	TierSpecialist ServiceTier = "specialist"
)

var longTermTierAdjustments = map[ServiceTier]float64{
	TierStandard:   0,
	TierAllRounder: 200,
	TierSpecialist: 500,
}

var experienceSurcharges = map[Taxonomy]map[entities.ExperienceLevel]float64{
	TaxonomyDaily: {
		entities.ExperienceMid:    50,
		entities.ExperienceSenior: 100,
	},
	TaxonomyLongTerm: {
		entities.ExperienceMid:    250,
		entities.ExperienceSenior: 500,
	},
}

// RateKey is everything a base-rate lookup may depend on.
type RateKey struct {
	Taxonomy          Taxonomy
	SubType           entities.BookingSubType
	HomeSize          entities.HomeSize
	LivingArrangement entities.LivingArrangement
	Dependents        int
	Services          ServiceFlags
}

// ServiceFlags are the service selections that feed the long-term base rate.
type ServiceFlags struct {
	Cooking        bool
	SpecialNeeds   bool
	DrivingSupport bool
	ECDTraining    bool
	Montessori     bool
	BackupNanny    bool
}

// Tier classifies the selections; any specialist skill wins over all-rounder duties.
func (f ServiceFlags) Tier() ServiceTier {
	switch {
	case f.ECDTraining || f.Montessori || f.SpecialNeeds:
		return TierSpecialist
	case f.Cooking || f.DrivingSupport || f.BackupNanny:
		return TierAllRounder
	default:
		return TierStandard
	}
}

// BaseRate looks up the base rate for a key, in the taxonomy's own unit.
//
// Temporary support has no single base rate (it depends on the weekday of each
// date) and returns the weekday rate; use DayRate for per-date pricing.
func BaseRate(k RateKey) float64 {
	switch k.Taxonomy {
	case TaxonomyHourly:
		return HourlyBaseRate(k.SubType)
	case TaxonomyTemporary:
		return TemporaryWeekdayRate
	case TaxonomyDaily:
		return DailyBaseRate + ExtraDependentSurcharge*float64(ExtraDependents(k.Dependents))
	default:
		homeSize := k.HomeSize
		if _, ok := lightHousekeepingRates[homeSize]; !ok {
			homeSize = DefaultHomeSize
		}
		arrangement := k.LivingArrangement
		if arrangement != entities.LivingIn {
			arrangement = DefaultLivingArrangement
		}
		base := longTermBaseRates[longTermKey{arrangement: arrangement, homeSize: homeSize, overThree: k.Dependents > DependentThreshold}]
		return base + longTermTierAdjustments[k.Services.Tier()]
	}
}

// HourlyBaseRate is the per-hour rate of an hourly sub-type; 0 for other sub-types.
func HourlyBaseRate(sub entities.BookingSubType) float64 {
	return hourlyBaseRates[sub]
}

// DayRate is the temporary-support rate of a calendar day.
// Friday, Saturday and Sunday bill at the weekend rate.
func DayRate(day time.Weekday) float64 {
	switch day {
	case time.Sunday, time.Friday, time.Saturday:
		return TemporaryWeekendRate
	default:
		return TemporaryWeekdayRate
	}
}

// LightHousekeepingRate returns the home-size tier; unknown sizes use the default tier.
func LightHousekeepingRate(size entities.HomeSize) float64 {
	if rate, ok := lightHousekeepingRates[size]; ok {
		return rate
	}
	return lightHousekeepingRates[DefaultHomeSize]
}

// ExperienceSurcharge is added to the base rate; taxonomies without a table add nothing.
func ExperienceSurcharge(t Taxonomy, level entities.ExperienceLevel) float64 {
	return experienceSurcharges[t][level]
}

// ExtraDependents is the number of dependents above the surcharge threshold.
func ExtraDependents(dependents int) int {
	if dependents > DependentThreshold {
		return dependents - DependentThreshold
	}
	return 0
}

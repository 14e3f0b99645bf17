package catalog

import "nanny_booking/internal/domain/entities"

// AddOnKey identifies a chargeable service.
type AddOnKey string

const (
	AddOnCooking            AddOnKey = "cooking"
	AddOnSpecialNeeds       AddOnKey = "special_needs"
	AddOnDrivingSupport     AddOnKey = "driving_support"
	AddOnLightHousekeeping  AddOnKey = "light_housekeeping"
	AddOnECDTraining        AddOnKey = "ecd_training"
	AddOnMontessori         AddOnKey = "montessori"
	AddOnBackupNanny        AddOnKey = "backup_nanny"
	AddOnDrivingRequirement AddOnKey = "driving_requirement"
)

// AddOnRate is one row of an add-on price list.
// HomeSizeTiered rows take their price from the light-housekeeping tier table.
type AddOnRate struct {
	Key            AddOnKey
	Name           string
	Price          float64
	Unit           PriceUnit
	HomeSizeTiered bool
}

// Price lists are kept per taxonomy: the same service is billed in
// different units (per hour, per day, per month) and the numbers are unrelated.
var addOnPriceLists = map[Taxonomy][]AddOnRate{
	TaxonomyHourly: {
		{Key: AddOnCooking, Name: "Cooking", Price: 12, Unit: PerHour},
		{Key: AddOnSpecialNeeds, Name: "Diverse-ability support", Price: 0, Unit: PerHour},
		{Key: AddOnLightHousekeeping, Name: "Light housekeeping", Unit: PerHour, HomeSizeTiered: true},
		{Key: AddOnDrivingSupport, Name: "Driving support", Price: 20, Unit: PerHour},
	},
	TaxonomyTemporary: {
		{Key: AddOnCooking, Name: "Cooking", Price: 120, Unit: PerDay},
		{Key: AddOnSpecialNeeds, Name: "Special needs care", Price: 200, Unit: PerDay},
		{Key: AddOnDrivingSupport, Name: "Driving support", Price: 200, Unit: PerDay},
	},
	TaxonomyDaily: {
		{Key: AddOnDrivingSupport, Name: "Driving support", Price: 100, Unit: PerDay},
		{Key: AddOnSpecialNeeds, Name: "Special needs care", Price: 100, Unit: PerDay},
	},
	// Light housekeeping is bundled into long-term base rates and has no row here.
	TaxonomyLongTerm: {
		{Key: AddOnDrivingSupport, Name: "Driving support", Price: 2000, Unit: PerMonth},
		{Key: AddOnCooking, Name: "Cooking / food prep", Price: 1500, Unit: PerMonth},
		{Key: AddOnSpecialNeeds, Name: "Special needs care", Price: 1500, Unit: PerMonth},
		{Key: AddOnECDTraining, Name: "ECD training", Price: 500, Unit: PerMonth},
		{Key: AddOnMontessori, Name: "Montessori", Price: 450, Unit: PerMonth},
		{Key: AddOnBackupNanny, Name: "Backup nanny", Price: 100, Unit: PerMonth},
		{Key: AddOnDrivingRequirement, Name: "Transport (driving requirement)", Price: 2000, Unit: PerMonth},
	},
}

// AddOns returns a copy of the price list of a taxonomy, in display order.
func AddOns(t Taxonomy) []AddOnRate {
	list := addOnPriceLists[t]
	out := make([]AddOnRate, len(list))
	copy(out, list)
	return out
}

// PriceFor resolves the price of a row for a home size.
func (r AddOnRate) PriceFor(size entities.HomeSize) float64 {
	if r.HomeSizeTiered {
		return LightHousekeepingRate(size)
	}
	return r.Price
}

// Selected reports whether the preferences ask for the service behind key.
// Tags are honoured alongside the boolean flags, each service counted once.
func Selected(p entities.UserPreferences, key AddOnKey) bool {
	switch key {
	case AddOnCooking:
		return p.Cooking || p.HasTag(entities.TagFoodPrep)
	case AddOnSpecialNeeds:
		return p.SpecialNeeds
	case AddOnDrivingSupport:
		return p.DrivingSupport
	case AddOnLightHousekeeping:
		return p.LightHouseKeeping || p.HasTag(entities.TagLightHousekeeping)
	case AddOnECDTraining:
		return p.ECDTraining
	case AddOnMontessori:
		return p.Montessori
	case AddOnBackupNanny:
		return p.BackupNanny
	case AddOnDrivingRequirement:
		return p.DrivingRequirement
	default:
		return false
	}
}

// FlagsOf extracts the service flags that feed base-rate lookups.
func FlagsOf(p entities.UserPreferences) ServiceFlags {
	return ServiceFlags{
		Cooking:        Selected(p, AddOnCooking),
		SpecialNeeds:   p.SpecialNeeds,
		DrivingSupport: p.DrivingSupport,
		ECDTraining:    p.ECDTraining,
		Montessori:     p.Montessori,
		BackupNanny:    p.BackupNanny,
	}
}

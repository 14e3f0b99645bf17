package preferences

import "nanny_booking/internal/domain/entities"

// Attribute names of the flat remote profile document. They match the JSON
// names of UserPreferences.
const (
	FieldLocation      = "location"
	FieldStreetAddress = "streetAddress"
	FieldSuburb        = "suburb"
	FieldCity          = "city"
	FieldProvince      = "province"
	FieldPostalCode    = "postalCode"
	FieldEstateInfo    = "estateInfo"

	FieldNumberOfChildren = "numberOfChildren"
	FieldChildrenAges     = "childrenAges"
	FieldOtherDependents  = "otherDependents"
	FieldPetsInHome       = "petsInHome"
	FieldHomeSize         = "homeSize"

	FieldSpecialNeeds       = "specialNeeds"
	FieldECDTraining        = "ecdTraining"
	FieldDrivingSupport     = "drivingSupport"
	FieldDrivingRequirement = "drivingRequirement"
	FieldCooking            = "cooking"
	FieldMontessori         = "montessori"
	FieldBackupNanny        = "backupNanny"
	FieldLightHouseKeeping  = "lightHouseKeeping"
	FieldErrandRuns         = "errandRuns"
	FieldHouseholdSupport   = "householdSupport"
	FieldChildrenFocusAreas = "childrenFocusAreas"

	FieldSchedule      = "schedule"
	FieldSelectedDates = "selectedDates"
	FieldTimeSlots     = "timeSlots"

	FieldDurationType      = "durationType"
	FieldBookingSubType    = "bookingSubType"
	FieldLivingArrangement = "livingArrangement"
)

// AddressFields are written together or not at all.
var AddressFields = []string{
	FieldStreetAddress,
	FieldSuburb,
	FieldCity,
	FieldProvince,
	FieldPostalCode,
	FieldEstateInfo,
	FieldLocation,
}

// Fields flattens the persistable part of the document. experienceLevel and
// languages are runtime-only and never stored.
func Fields(p entities.UserPreferences) map[string]any {
	p = Normalize(p.Clone())
	return map[string]any{
		FieldLocation:      p.Location,
		FieldStreetAddress: p.StreetAddress,
		FieldSuburb:        p.Suburb,
		FieldCity:          p.City,
		FieldProvince:      p.Province,
		FieldPostalCode:    p.PostalCode,
		FieldEstateInfo:    p.EstateInfo,

		FieldNumberOfChildren: p.NumberOfChildren,
		FieldChildrenAges:     p.ChildrenAges,
		FieldOtherDependents:  p.OtherDependents,
		FieldPetsInHome:       p.PetsInHome,
		FieldHomeSize:         string(p.HomeSize),

		FieldSpecialNeeds:       p.SpecialNeeds,
		FieldECDTraining:        p.ECDTraining,
		FieldDrivingSupport:     p.DrivingSupport,
		FieldDrivingRequirement: p.DrivingRequirement,
		FieldCooking:            p.Cooking,
		FieldMontessori:         p.Montessori,
		FieldBackupNanny:        p.BackupNanny,
		FieldLightHouseKeeping:  p.LightHouseKeeping,
		FieldErrandRuns:         p.ErrandRuns,
		FieldHouseholdSupport:   p.HouseholdSupport,
		FieldChildrenFocusAreas: p.ChildrenFocusAreas,

		FieldSchedule:      p.Schedule,
		FieldSelectedDates: p.SelectedDates,
		FieldTimeSlots:     p.TimeSlots,

		FieldDurationType:      string(p.DurationType),
		FieldBookingSubType:    string(p.BookingSubType),
		FieldLivingArrangement: string(p.LivingArrangement),
	}
}

// StripEmptyAddress removes every address key unless at least one carries a
// non-empty value, so a partial upsert leaves a stored address alone.
func StripEmptyAddress(fields map[string]any) map[string]any {
	for _, key := range AddressFields {
		if s, ok := fields[key].(string); ok && s != "" {
			return fields
		}
	}
	for _, key := range AddressFields {
		delete(fields, key)
	}
	return fields
}

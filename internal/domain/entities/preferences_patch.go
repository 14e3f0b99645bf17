package entities

// PreferencesPatch is a partial update of UserPreferences.
//
// A nil field was not set by the caller and leaves the current value untouched.
type PreferencesPatch struct {
	Location      *string `json:"location,omitempty"`
	StreetAddress *string `json:"streetAddress,omitempty"`
	Suburb        *string `json:"suburb,omitempty"`
	City          *string `json:"city,omitempty"`
	Province      *string `json:"province,omitempty"`
	PostalCode    *string `json:"postalCode,omitempty"`
	EstateInfo    *string `json:"estateInfo,omitempty"`

	NumberOfChildren *int      `json:"numberOfChildren,omitempty"`
	ChildrenAges     *[]string `json:"childrenAges,omitempty"`
	OtherDependents  *int      `json:"otherDependents,omitempty"`
	PetsInHome       *string   `json:"petsInHome,omitempty"`
	HomeSize         *HomeSize `json:"homeSize,omitempty"`

	SpecialNeeds       *bool     `json:"specialNeeds,omitempty"`
	ECDTraining        *bool     `json:"ecdTraining,omitempty"`
	DrivingSupport     *bool     `json:"drivingSupport,omitempty"`
	DrivingRequirement *bool     `json:"drivingRequirement,omitempty"`
	Cooking            *bool     `json:"cooking,omitempty"`
	Montessori         *bool     `json:"montessori,omitempty"`
	BackupNanny        *bool     `json:"backupNanny,omitempty"`
	LightHouseKeeping  *bool     `json:"lightHouseKeeping,omitempty"`
	ErrandRuns         *bool     `json:"errandRuns,omitempty"`
	HouseholdSupport   *[]string `json:"householdSupport,omitempty"`
	ChildrenFocusAreas *[]string `json:"childrenFocusAreas,omitempty"`

	Schedule      *Schedule   `json:"schedule,omitempty"`
	SelectedDates *[]string   `json:"selectedDates,omitempty"`
	TimeSlots     *[]TimeSlot `json:"timeSlots,omitempty"`

	DurationType      *DurationType      `json:"durationType,omitempty"`
	BookingSubType    *BookingSubType    `json:"bookingSubType,omitempty"`
	LivingArrangement *LivingArrangement `json:"livingArrangement,omitempty"`

	ExperienceLevel *ExperienceLevel `json:"experienceLevel,omitempty"`
	Languages       *string          `json:"languages,omitempty"`
}

// TouchesTags reports whether the patch replaces either service tag list.
func (p PreferencesPatch) TouchesTags() bool {
	return p.HouseholdSupport != nil || p.ChildrenFocusAreas != nil
}

package entities

// DurationType separates date-specific short bookings from schedule-recurring ones.
//
// The canonical form always uses underscores; hyphenated input ("long-term") is
// normalized by the preference store before it is stored.
type DurationType string

const (
	DurationShortTerm DurationType = "short_term"
	DurationLongTerm  DurationType = "long_term"
)

type BookingSubType string

const (
	SubTypeNone             BookingSubType = ""
	SubTypeDateNight        BookingSubType = "date_night"
	SubTypeEmergency        BookingSubType = "emergency"
	SubTypeTemporarySupport BookingSubType = "temporary_support"
	SubTypeSchoolHoliday    BookingSubType = "school_holiday"
	SubTypeDateDay          BookingSubType = "date_day"
)

type HomeSize string

const (
	HomeSizePocketPalace HomeSize = "pocket_palace"
	HomeSizeFamilyHub    HomeSize = "family_hub"
	HomeSizeGrandRetreat HomeSize = "grand_retreat"
	HomeSizeEpicEstates  HomeSize = "epic_estates"
)

type LivingArrangement string

const (
	LivingIn  LivingArrangement = "live-in"
	LivingOut LivingArrangement = "live-out"
)

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "1-3"
	ExperienceMid    ExperienceLevel = "3-6"
	ExperienceSenior ExperienceLevel = "6+"
)

// Service tags that may appear in HouseholdSupport / ChildrenFocusAreas.
const (
	TagFoodPrep          = "food-prep"
	TagLightHousekeeping = "light-housekeeping"
)

// TimeSlot is a wall-clock interval ("HH:MM") independent of any calendar date.
type TimeSlot struct {
	Start string `json:"start" dynamodbav:"start" bson:"start"`
	End   string `json:"end" dynamodbav:"end" bson:"end"`
}

// Schedule marks the weekdays a long-term booking recurs on.
type Schedule struct {
	Monday    bool `json:"monday" dynamodbav:"monday" bson:"monday"`
	Tuesday   bool `json:"tuesday" dynamodbav:"tuesday" bson:"tuesday"`
	Wednesday bool `json:"wednesday" dynamodbav:"wednesday" bson:"wednesday"`
	Thursday  bool `json:"thursday" dynamodbav:"thursday" bson:"thursday"`
	Friday    bool `json:"friday" dynamodbav:"friday" bson:"friday"`
	Saturday  bool `json:"saturday" dynamodbav:"saturday" bson:"saturday"`
	Sunday    bool `json:"sunday" dynamodbav:"sunday" bson:"sunday"`
}

// UserPreferences is the in-progress booking wizard document of one client session.
//
// Ownership: a single booking session owns the document and is its only writer.
// The remote profile record and the recovery cache hold copies, never the master.
type UserPreferences struct {
	Location      string `json:"location"`
	StreetAddress string `json:"streetAddress"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	EstateInfo    string `json:"estateInfo"`

	NumberOfChildren int      `json:"numberOfChildren"`
	ChildrenAges     []string `json:"childrenAges"`
	OtherDependents  int      `json:"otherDependents"`
	PetsInHome       string   `json:"petsInHome"`
	HomeSize         HomeSize `json:"homeSize"`

	SpecialNeeds       bool     `json:"specialNeeds"`
	ECDTraining        bool     `json:"ecdTraining"`
	DrivingSupport     bool     `json:"drivingSupport"`
	DrivingRequirement bool     `json:"drivingRequirement"`
	Cooking            bool     `json:"cooking"`
	Montessori         bool     `json:"montessori"`
	BackupNanny        bool     `json:"backupNanny"`
	LightHouseKeeping  bool     `json:"lightHouseKeeping"`
	ErrandRuns         bool     `json:"errandRuns"`
	HouseholdSupport   []string `json:"householdSupport"`
	ChildrenFocusAreas []string `json:"childrenFocusAreas"`

	Schedule      Schedule   `json:"schedule"`
	SelectedDates []string   `json:"selectedDates"`
	TimeSlots     []TimeSlot `json:"timeSlots"`

	DurationType      DurationType      `json:"durationType"`
	BookingSubType    BookingSubType    `json:"bookingSubType"`
	LivingArrangement LivingArrangement `json:"livingArrangement"`

	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Languages       string          `json:"languages"`
}

// HasTag reports whether either tag list carries tag.
func (p UserPreferences) HasTag(tag string) bool {
	for _, t := range p.HouseholdSupport {
		if t == tag {
			return true
		}
	}
	for _, t := range p.ChildrenFocusAreas {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy; slices are never shared with the receiver.
func (p UserPreferences) Clone() UserPreferences {
	cp := p
	cp.ChildrenAges = cloneStrings(p.ChildrenAges)
	cp.HouseholdSupport = cloneStrings(p.HouseholdSupport)
	cp.ChildrenFocusAreas = cloneStrings(p.ChildrenFocusAreas)
	cp.SelectedDates = cloneStrings(p.SelectedDates)
	cp.TimeSlots = cloneSlots(p.TimeSlots)
	return cp
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSlots(in []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, len(in))
	copy(out, in)
	return out
}

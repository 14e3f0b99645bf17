package repository

import (
	"time"

	"nanny_booking/internal/domain/entities"
)

// Attribute names of the profile key and timestamp. Preference attributes use
// the names from the preferences package.
const (
	profileKeyDynamo = "client_id"
	profileKeyMongo  = "_id"
	profileUpdatedAt = "updatedAt"
)

// profileDocument is the stored shape of a profile in both backends.
// Missing attributes decode to zero values.
type profileDocument struct {
	ClientID  string `dynamodbav:"client_id" bson:"_id"`
	UpdatedAt string `dynamodbav:"updatedAt" bson:"updatedAt"`

	Location      string `dynamodbav:"location" bson:"location"`
	StreetAddress string `dynamodbav:"streetAddress" bson:"streetAddress"`
	Suburb        string `dynamodbav:"suburb" bson:"suburb"`
	City          string `dynamodbav:"city" bson:"city"`
	Province      string `dynamodbav:"province" bson:"province"`
	PostalCode    string `dynamodbav:"postalCode" bson:"postalCode"`
	EstateInfo    string `dynamodbav:"estateInfo" bson:"estateInfo"`

	NumberOfChildren int      `dynamodbav:"numberOfChildren" bson:"numberOfChildren"`
	ChildrenAges     []string `dynamodbav:"childrenAges" bson:"childrenAges"`
	OtherDependents  int      `dynamodbav:"otherDependents" bson:"otherDependents"`
	PetsInHome       string   `dynamodbav:"petsInHome" bson:"petsInHome"`
	HomeSize         string   `dynamodbav:"homeSize" bson:"homeSize"`

	SpecialNeeds       bool     `dynamodbav:"specialNeeds" bson:"specialNeeds"`
	ECDTraining        bool     `dynamodbav:"ecdTraining" bson:"ecdTraining"`
	DrivingSupport     bool     `dynamodbav:"drivingSupport" bson:"drivingSupport"`
	DrivingRequirement bool     `dynamodbav:"drivingRequirement" bson:"drivingRequirement"`
	Cooking            bool     `dynamodbav:"cooking" bson:"cooking"`
	Montessori         bool     `dynamodbav:"montessori" bson:"montessori"`
	BackupNanny        bool     `dynamodbav:"backupNanny" bson:"backupNanny"`
	LightHouseKeeping  bool     `dynamodbav:"lightHouseKeeping" bson:"lightHouseKeeping"`
	ErrandRuns         bool     `dynamodbav:"errandRuns" bson:"errandRuns"`
	HouseholdSupport   []string `dynamodbav:"householdSupport" bson:"householdSupport"`
	ChildrenFocusAreas []string `dynamodbav:"childrenFocusAreas" bson:"childrenFocusAreas"`

	Schedule      entities.Schedule   `dynamodbav:"schedule" bson:"schedule"`
	SelectedDates []string            `dynamodbav:"selectedDates" bson:"selectedDates"`
	TimeSlots     []entities.TimeSlot `dynamodbav:"timeSlots" bson:"timeSlots"`

	DurationType      string `dynamodbav:"durationType" bson:"durationType"`
	BookingSubType    string `dynamodbav:"bookingSubType" bson:"bookingSubType"`
	LivingArrangement string `dynamodbav:"livingArrangement" bson:"livingArrangement"`
}

func fromProfileDocument(d profileDocument) entities.Profile {
	updatedAt, _ := time.Parse(time.RFC3339Nano, d.UpdatedAt)
	return entities.Profile{
		ClientID:  d.ClientID,
		UpdatedAt: updatedAt,
		Preferences: entities.UserPreferences{
			Location:      d.Location,
			StreetAddress: d.StreetAddress,
			Suburb:        d.Suburb,
			City:          d.City,
			Province:      d.Province,
			PostalCode:    d.PostalCode,
			EstateInfo:    d.EstateInfo,

			NumberOfChildren: d.NumberOfChildren,
			ChildrenAges:     d.ChildrenAges,
			OtherDependents:  d.OtherDependents,
			PetsInHome:       d.PetsInHome,
			HomeSize:         entities.HomeSize(d.HomeSize),

			SpecialNeeds:       d.SpecialNeeds,
			ECDTraining:        d.ECDTraining,
			DrivingSupport:     d.DrivingSupport,
			DrivingRequirement: d.DrivingRequirement,
			Cooking:            d.Cooking,
			Montessori:         d.Montessori,
			BackupNanny:        d.BackupNanny,
			LightHouseKeeping:  d.LightHouseKeeping,
			ErrandRuns:         d.ErrandRuns,
			HouseholdSupport:   d.HouseholdSupport,
			ChildrenFocusAreas: d.ChildrenFocusAreas,

			Schedule:      d.Schedule,
			SelectedDates: d.SelectedDates,
			TimeSlots:     d.TimeSlots,

			DurationType:      entities.DurationType(d.DurationType),
			BookingSubType:    entities.BookingSubType(d.BookingSubType),
			LivingArrangement: entities.LivingArrangement(d.LivingArrangement),
		},
	}
}

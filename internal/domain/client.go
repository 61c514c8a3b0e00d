package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender type for the client's registered gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid reports whether g is one of the known gender values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Address is an optional structured postal address on a Client.
// All fields are optional free-form strings.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

// Client represents a registered patient record.
// FirstName, LastName, Gender, DateOfBirth and PhoneNumber are always
// present on a persisted Client; the rest is optional.
type Client struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Gender         Gender             `bson:"gender" json:"gender"`
	DateOfBirth    time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	Address        *Address           `bson:"address,omitempty" json:"address,omitempty"`
	MedicalHistory string             `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Package user defines the account documents persisted in the store.
package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User is an account record. Password holds the bcrypt hash and must never
// be serialized to clients; the profile service strips it.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Phone       string             `bson:"phone"`
	Password    string             `bson:"password"`
	Address     string             `bson:"address,omitempty"`
	Email       string             `bson:"email,omitempty"`
	Gender      string             `bson:"gender,omitempty"`
	DateOfBirth string             `bson:"dateOfBirth,omitempty"`
	Image       string             `bson:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func IsValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

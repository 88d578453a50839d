// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusUnknown is the default attendance status assigned at creation; it
// means the user has not reported anything yet.
const StatusUnknown = 3

// User is one document per person in the "users" collection.
//
// Email is the natural external identity key: repeated OAuth logins with the
// same email must resolve to the same document (enforced by the unique email
// index plus the upsert flow). Group and the status fields are written by
// the bot side, never by the OAuth login path.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GivenName  string             `bson:"given_name" json:"given_name"`
	FamilyName string             `bson:"family_name" json:"family_name"`
	Email      string             `bson:"email" json:"email"`
	AvatarURL  string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`

	// Group is a class code of the form "<digits>-<letter>" (e.g., "10-А").
	// Nil until the user is assigned to a group.
	Group *string `bson:"group,omitempty" json:"group,omitempty"`

	Status          int      `bson:"status" json:"status"`
	StatusMessage   *string  `bson:"status_message,omitempty" json:"status_message,omitempty"`
	StatusUpdatedAt *float64 `bson:"status_updated_at,omitempty" json:"status_updated_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DisplayName is the "family_name given_name" string the attendance report
// keys members by.
func (u User) DisplayName() string {
	return u.FamilyName + " " + u.GivenName
}

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Artemka1806/LyBotAPI/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with no group or status history, the shape a
// first OAuth login produces.
func (f *Fixtures) CreateUser(ctx context.Context, givenName, familyName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		GivenName:  givenName,
		FamilyName: familyName,
		Email:      email,
		AvatarURL:  "https://example.com/avatar.jpg",
		Status:     models.StatusUnknown,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateReportingUser inserts a user assigned to a group with a reported
// status, the shape the attendance report consumes.
func (f *Fixtures) CreateReportingUser(ctx context.Context, givenName, familyName, email, group string, status int, statusUpdatedAt float64) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	message := "test status"
	user := models.User{
		ID:              primitive.NewObjectID(),
		GivenName:       givenName,
		FamilyName:      familyName,
		Email:           email,
		AvatarURL:       "https://example.com/avatar.jpg",
		Group:           &group,
		Status:          status,
		StatusMessage:   &message,
		StatusUpdatedAt: &statusUpdatedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

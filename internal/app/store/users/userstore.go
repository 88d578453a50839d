package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/Artemka1806/LyBotAPI/internal/app/system/normalize"
	"github.com/Artemka1806/LyBotAPI/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when an insert hits the unique email index.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrMissingIdentity is returned when the update branch of an upsert finds
	// no document for an email that just reported a conflict. That breaks the
	// one-document-per-email invariant and is fatal for the request.
	ErrMissingIdentity = errors.New("no user found for conflicting email")

	errNoEmail = errors.New("profile has no email")
)

// Profile is the normalized identity-provider profile the upsert consumes.
type Profile struct {
	GivenName  string
	FamilyName string
	Email      string
	AvatarURL  string
}

// Outcome tags which branch an upsert took.
type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeUpdated
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by normalized email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert resolves a profile to exactly one user document.
//
// The flow is check-then-branch: look the email up once, then either insert
// a fresh document with default status fields, or overwrite only the profile
// fields (given_name, family_name, avatar_url) in place, preserving group
// and the status fields. An insert that loses the race to the unique email
// index falls back to the update branch. Last write wins on conflict.
func (s *Store) Upsert(ctx context.Context, p Profile) (models.User, Outcome, error) {
	email := normalize.Email(p.Email)
	if email == "" {
		return models.User{}, 0, errNoEmail
	}
	givenName := normalize.Name(p.GivenName)
	familyName := normalize.Name(p.FamilyName)

	existing, err := s.GetByEmail(ctx, email)
	switch {
	case err == nil:
		u, uerr := s.updateProfile(ctx, existing.ID, givenName, familyName, p.AvatarURL)
		if uerr != nil {
			return models.User{}, 0, uerr
		}
		return u, OutcomeUpdated, nil

	case errors.Is(err, mongo.ErrNoDocuments):
		u, cerr := s.create(ctx, givenName, familyName, email, p.AvatarURL)
		if cerr == nil {
			return u, OutcomeCreated, nil
		}
		if !errors.Is(cerr, ErrDuplicateEmail) {
			return models.User{}, 0, cerr
		}
		// Lost an insert race: another login for this email landed between
		// the lookup and the insert. Fall back to updating that document.
		raced, rerr := s.GetByEmail(ctx, email)
		if rerr != nil {
			if errors.Is(rerr, mongo.ErrNoDocuments) {
				return models.User{}, 0, ErrMissingIdentity
			}
			return models.User{}, 0, rerr
		}
		u, uerr := s.updateProfile(ctx, raced.ID, givenName, familyName, p.AvatarURL)
		if uerr != nil {
			return models.User{}, 0, uerr
		}
		return u, OutcomeUpdated, nil

	default:
		return models.User{}, 0, err
	}
}

// create inserts a new user with default status fields.
func (s *Store) create(ctx context.Context, givenName, familyName, email, avatarURL string) (models.User, error) {
	now := time.Now()
	u := models.User{
		ID:         primitive.NewObjectID(),
		GivenName:  givenName,
		FamilyName: familyName,
		Email:      email,
		AvatarURL:  avatarURL,
		Status:     models.StatusUnknown,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// updateProfile overwrites only the identity-provider fields, leaving group
// and every status field untouched.
func (s *Store) updateProfile(ctx context.Context, id primitive.ObjectID, givenName, familyName, avatarURL string) (models.User, error) {
	set := bson.M{
		"given_name":  givenName,
		"family_name": familyName,
		"avatar_url":  avatarURL,
		"updated_at":  time.Now(),
	}

	if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return models.User{}, err
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return *u, nil
}

// ListStatusesSince returns users that belong to a group and whose
// status_updated_at exceeds since, sorted by family_name ascending. The
// ordering matters: the attendance report relies on this single global sort
// and never re-sorts members afterwards.
//
// since=0 means unbounded: every user with a recorded status is included,
// a timestamp of exactly 0 among them. Users who never reported (no
// status_updated_at field) never match either bound.
func (s *Store) ListStatusesSince(ctx context.Context, since float64) ([]models.User, error) {
	updatedAt := bson.M{"$gt": since}
	if since == 0 {
		updatedAt = bson.M{"$gte": since}
	}
	filter := bson.M{
		"group":             bson.M{"$exists": true, "$ne": nil},
		"status_updated_at": updatedAt,
	}
	opts := options.Find().SetSort(bson.D{{Key: "family_name", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

package userstore_test

import (
	"testing"

	userstore "github.com/Artemka1806/LyBotAPI/internal/app/store/users"
	"github.com/Artemka1806/LyBotAPI/internal/domain/models"
	"github.com/Artemka1806/LyBotAPI/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpsert_CreatesNewUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user, outcome, err := store.Upsert(ctx, userstore.Profile{
		GivenName:  "Іван",
		FamilyName: "Іваненко",
		Email:      "ivan@example.com",
		AvatarURL:  "https://example.com/ivan.jpg",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if outcome != userstore.OutcomeCreated {
		t.Errorf("expected OutcomeCreated, got %v", outcome)
	}
	if user.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if user.Status != models.StatusUnknown {
		t.Errorf("expected default status %d, got %d", models.StatusUnknown, user.Status)
	}
	if user.Group != nil {
		t.Error("a fresh user must not have a group")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestUpsert_RepeatedLoginIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	profile := userstore.Profile{
		GivenName:  "Іван",
		FamilyName: "Іваненко",
		Email:      "ivan@example.com",
	}

	first, _, err := store.Upsert(ctx, profile)
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		again, outcome, err := store.Upsert(ctx, profile)
		if err != nil {
			t.Fatalf("repeated Upsert failed: %v", err)
		}
		if outcome != userstore.OutcomeUpdated {
			t.Errorf("expected OutcomeUpdated on repeat login, got %v", outcome)
		}
		if again.ID != first.ID {
			t.Errorf("repeated login must resolve to the same document: %s != %s",
				again.ID.Hex(), first.ID.Hex())
		}
	}

	count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "ivan@example.com"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one document per email, got %d", count)
	}
}

func TestUpsert_UpdatePreservesGroupAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	existing := fixtures.CreateReportingUser(ctx, "Іван", "Іваненко", "ivan@example.com", "10-А", 1, 1234.5)

	updated, outcome, err := store.Upsert(ctx, userstore.Profile{
		GivenName:  "Іванко", // changed by the identity provider
		FamilyName: "Іваненко",
		Email:      "ivan@example.com",
		AvatarURL:  "https://example.com/new.jpg",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if outcome != userstore.OutcomeUpdated {
		t.Errorf("expected OutcomeUpdated, got %v", outcome)
	}
	if updated.ID != existing.ID {
		t.Error("update must keep the original identifier")
	}
	if updated.GivenName != "Іванко" {
		t.Errorf("given_name should be refreshed, got %q", updated.GivenName)
	}
	if updated.AvatarURL != "https://example.com/new.jpg" {
		t.Errorf("avatar_url should be refreshed, got %q", updated.AvatarURL)
	}
	if updated.Group == nil || *updated.Group != "10-А" {
		t.Errorf("group must be preserved, got %v", updated.Group)
	}
	if updated.Status != 1 {
		t.Errorf("status must be preserved, got %d", updated.Status)
	}
	if updated.StatusUpdatedAt == nil || *updated.StatusUpdatedAt != 1234.5 {
		t.Errorf("status_updated_at must be preserved, got %v", updated.StatusUpdatedAt)
	}
}

func TestUpsert_NormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, _, err := store.Upsert(ctx, userstore.Profile{
		GivenName: "Іван", FamilyName: "Іваненко", Email: "Ivan@Example.COM",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	again, _, err := store.Upsert(ctx, userstore.Profile{
		GivenName: "Іван", FamilyName: "Іваненко", Email: "  ivan@example.com ",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if again.ID != first.ID {
		t.Error("differently cased emails must resolve to the same document")
	}
}

func TestUpsert_EmptyEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, _, err := store.Upsert(ctx, userstore.Profile{GivenName: "Іван", FamilyName: "Іваненко"}); err == nil {
		t.Error("expected an error for a profile with no email")
	}
}

func TestListStatusesSince_FiltersAndSorts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateReportingUser(ctx, "Яків", "Яковенко", "yakiv@example.com", "10-А", 1, 100)
	fixtures.CreateReportingUser(ctx, "Андрій", "Антоненко", "andrii@example.com", "10-А", 2, 200)
	fixtures.CreateUser(ctx, "Іван", "Іваненко", "ivan@example.com") // no group, no status

	all, err := store.ListStatusesSince(ctx, 0)
	if err != nil {
		t.Fatalf("ListStatusesSince failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reporting users, got %d", len(all))
	}
	if all[0].FamilyName != "Антоненко" || all[1].FamilyName != "Яковенко" {
		t.Errorf("expected family-name ascending order, got [%s %s]",
			all[0].FamilyName, all[1].FamilyName)
	}

	recent, err := store.ListStatusesSince(ctx, 150)
	if err != nil {
		t.Fatalf("ListStatusesSince failed: %v", err)
	}
	if len(recent) != 1 || recent[0].FamilyName != "Антоненко" {
		t.Errorf("expected only the later status, got %v", recent)
	}

	none, err := store.ListStatusesSince(ctx, 1000)
	if err != nil {
		t.Fatalf("ListStatusesSince failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no users above the bound, got %d", len(none))
	}
}

func TestListStatusesSince_ZeroBoundIsUnbounded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateReportingUser(ctx, "Іван", "Іваненко", "ivan@example.com", "10-А", 1, 0)
	fixtures.CreateReportingUser(ctx, "Петро", "Петренко", "petro@example.com", "10-А", 2, 50)

	all, err := store.ListStatusesSince(ctx, 0)
	if err != nil {
		t.Fatalf("ListStatusesSince failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("a zero bound must include a status recorded at exactly 0, got %d users", len(all))
	}

	later, err := store.ListStatusesSince(ctx, 25)
	if err != nil {
		t.Fatalf("ListStatusesSince failed: %v", err)
	}
	if len(later) != 1 || later[0].FamilyName != "Петренко" {
		t.Errorf("a positive bound stays strict, got %v", later)
	}
}

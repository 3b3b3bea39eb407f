package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

func strPtr(s string) *string { return &s }

func TestCreateAndGetOrigin(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	origins := NewOrigins(database)

	o, err := origins.Create(ctx, model.OriginInput{Name: "Ethiopia", Notes: strPtr("Yirgacheffe region")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if o.ID == 0 {
		t.Error("expected generated id")
	}
	if o.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := origins.Get(ctx, o.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ethiopia" {
		t.Errorf("expected name 'Ethiopia', got %q", got.Name)
	}
	if got.Notes == nil || *got.Notes != "Yirgacheffe region" {
		t.Errorf("unexpected notes %v", got.Notes)
	}
}

func TestCreateDuplicateOrigin(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	origins := NewOrigins(database)

	if _, err := origins.Create(ctx, model.OriginInput{Name: "Ethiopia"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := origins.Create(ctx, model.OriginInput{Name: "Ethiopia"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	all, _ := origins.List(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 origin, got %d", len(all))
	}
}

func TestUniqueIndexBacksDuplicateCheck(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Simulate a writer that won the race between lookup and insert.
	if _, err := database.ExecContext(ctx, `INSERT INTO origins (name) VALUES (?)`, "Kenya"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_, err := database.ExecContext(ctx, `INSERT INTO origins (name) VALUES (?)`, "Kenya")
	if !db.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestListOriginsOrderedByName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	origins := NewOrigins(database)

	for _, name := range []string{"Kenya", "Brazil", "Ethiopia"} {
		if _, err := origins.Create(ctx, model.OriginInput{Name: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	all, err := origins.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Brazil", "Ethiopia", "Kenya"}
	for i, o := range all {
		if o.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], o.Name)
		}
	}
}

func TestListOriginsEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	all, err := NewOrigins(database).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", all)
	}
}

func TestFindOriginByName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	origins := NewOrigins(database)

	if _, err := origins.FindByName(ctx, "Panama"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	created, _ := origins.Create(ctx, model.OriginInput{Name: "Panama"})
	found, err := origins.FindByName(ctx, "Panama")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, found.ID)
	}
}

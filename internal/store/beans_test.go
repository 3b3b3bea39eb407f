package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

func TestCreateBeanWithEnums(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	beans := NewBeans(database)

	roast := model.RoastCity
	process := model.ProcessNatural
	b, err := beans.Create(ctx, model.BeanMasterInput{
		Name:       "Guji",
		Origin:     strPtr("Ethiopia"),
		RoastLevel: &roast,
		Process:    &process,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.RoastLevel == nil || *b.RoastLevel != model.RoastCity {
		t.Errorf("expected roast level CITY, got %v", b.RoastLevel)
	}
	if b.Process == nil || *b.Process != model.ProcessNatural {
		t.Errorf("expected process NATURAL, got %v", b.Process)
	}
	if b.Notes != nil {
		t.Errorf("expected nil notes, got %q", *b.Notes)
	}
	if b.UsageCount != 0 {
		t.Errorf("expected usage count 0, got %d", b.UsageCount)
	}
}

func TestCreateBeanWithoutEnums(t *testing.T) {
	database := db.NewTestDB(t)

	b, err := NewBeans(database).Create(context.Background(), model.BeanMasterInput{Name: "House Blend"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.RoastLevel != nil || b.Process != nil || b.Origin != nil {
		t.Errorf("expected nil optional fields, got %+v", b)
	}
}

func TestListBeansOrderedByNameWithUsage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	beans := NewBeans(database)
	tastings := NewTastings(database)

	sidamo, _ := beans.Create(ctx, model.BeanMasterInput{Name: "Sidamo"})
	beans.Create(ctx, model.BeanMasterInput{Name: "Antigua"})

	for range 2 {
		if _, err := tastings.Create(ctx, model.TastingInput{BeanID: &sidamo.ID}); err != nil {
			t.Fatalf("creating tasting: %v", err)
		}
	}

	all, err := beans.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 beans, got %d", len(all))
	}
	if all[0].Name != "Antigua" || all[1].Name != "Sidamo" {
		t.Errorf("unexpected order: %q, %q", all[0].Name, all[1].Name)
	}
	if all[0].UsageCount != 0 {
		t.Errorf("expected Antigua usage 0, got %d", all[0].UsageCount)
	}
	if all[1].UsageCount != 2 {
		t.Errorf("expected Sidamo usage 2, got %d", all[1].UsageCount)
	}
}

func TestGetBeanNotFound(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := NewBeans(database).Get(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

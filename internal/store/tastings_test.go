package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

func TestCreateTastingWithNames(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	bean, _ := NewBeans(database).Create(ctx, model.BeanMasterInput{Name: "Huila"})
	dripper, _ := NewDrippers(database).Create(ctx, model.DripperInput{Name: "Kalita"})

	tasting, err := NewTastings(database).Create(ctx, model.TastingInput{
		BeanID:    &bean.ID,
		DripperID: &dripper.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tasting.BeanName != "Huila" || tasting.DripperName != "Kalita" {
		t.Errorf("unexpected joined names %q, %q", tasting.BeanName, tasting.DripperName)
	}
	if tasting.FilterID != nil || tasting.FilterName != "" {
		t.Errorf("expected no filter")
	}
}

func TestCreateTastingUnknownReference(t *testing.T) {
	database := db.NewTestDB(t)

	missing := int64(404)
	_, err := NewTastings(database).Create(context.Background(), model.TastingInput{BeanID: &missing})
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestListTastingsNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	tastings := NewTastings(database)

	first, _ := tastings.Create(ctx, model.TastingInput{Notes: strPtr("first")})
	second, _ := tastings.Create(ctx, model.TastingInput{Notes: strPtr("second")})

	all, err := tastings.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tastings, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("expected newest first")
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/testutil"
)

func TestCategoryCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	empty, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no categories, got %d", len(empty))
	}

	science, err := svc.Create(ctx, "  Science ")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if science.Type != "Science" {
		t.Errorf("Type = %q, want trimmed %q", science.Type, "Science")
	}
	if _, err := svc.Create(ctx, "Art"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	categories, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(categories) != 2 || categories[0].Type != "Science" || categories[1].Type != "Art" {
		t.Errorf("List = %+v, want Science then Art", categories)
	}

	exists, err := svc.Exists(ctx, science.ID)
	if err != nil || !exists {
		t.Errorf("Exists(%d) = %v, %v", science.ID, exists, err)
	}
	exists, err = svc.Exists(ctx, 999)
	if err != nil || exists {
		t.Errorf("Exists(999) = %v, %v", exists, err)
	}
}

func TestCategoryCreateRequiresType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCategoryService(db)

	for _, typ := range []string{"", "   "} {
		if _, err := svc.Create(context.Background(), typ); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Create(%q) error = %v, want ErrInvalidInput", typ, err)
		}
	}
}

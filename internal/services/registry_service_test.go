package services_test

import (
	"slices"
	"testing"

	"packtrack/internal/repos"
	"packtrack/internal/services"
)

// the fixed set of pastel colors a new category may be assigned
var wantPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B88B", "#ABEBC6",
	"#FAD7A0", "#D7BDE2", "#A9CCE3", "#F9E79F", "#A3E4D7",
	"#E8DAEF", "#D5F4E6", "#FADBD8", "#F5CBA7", "#D6EAF8",
	"#FCF3CF", "#E59866", "#85929E", "#F39C12", "#27AE60",
}

func TestEnsureCategoryStable(t *testing.T) {
	db := memdb(t)
	reg := services.NewRegistryService(repos.NewRegistryRepo(db))

	first, err := reg.EnsureCategory("Clothing")
	if err != nil || first == nil {
		t.Fatalf("want a category id, got id=%v err=%v", first, err)
	}

	cats, err := reg.Reg.ListCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 || cats[0].Name != "Clothing" {
		t.Fatalf("want one Clothing category, got %+v", cats)
	}
	color := cats[0].Color
	if !slices.Contains(wantPalette, color) {
		t.Fatalf("color should come from the fixed palette, got %q", color)
	}

	// same name again: same id, color untouched
	second, err := reg.EnsureCategory("Clothing")
	if err != nil {
		t.Fatal(err)
	}
	if *second != *first {
		t.Fatalf("want stable id %d, got %d", *first, *second)
	}
	cats, _ = reg.Reg.ListCategories()
	if cats[0].Color != color {
		t.Fatalf("color must not change on re-ensure: %q -> %q", color, cats[0].Color)
	}
}

func TestEnsureCategoryEmptyName(t *testing.T) {
	db := memdb(t)
	reg := services.NewRegistryService(repos.NewRegistryRepo(db))

	id, err := reg.EnsureCategory("")
	if err != nil {
		t.Fatal(err)
	}
	if id != nil {
		t.Fatalf("empty name means no category, got id %v", *id)
	}
	cats, _ := reg.Reg.ListCategories()
	if len(cats) != 0 {
		t.Fatalf("no category row should be created, got %+v", cats)
	}
}

func TestEnsureItemTypeRecategorize(t *testing.T) {
	db := memdb(t)
	reg := services.NewRegistryService(repos.NewRegistryRepo(db))

	if err := reg.EnsureItemType("shirt", "Clothing"); err != nil {
		t.Fatal(err)
	}
	// re-point the existing type at a different category
	if err := reg.EnsureItemType("shirt", "Laundry"); err != nil {
		t.Fatal(err)
	}

	types, err := reg.Reg.ListItemTypes()
	if err != nil {
		t.Fatal(err)
	}
	if len(types) != 1 {
		t.Fatalf("want a single registry entry, got %+v", types)
	}
	if types[0].CategoryName == nil || *types[0].CategoryName != "Laundry" {
		t.Fatalf("want category Laundry after re-categorization, got %+v", types[0])
	}

	// both categories exist; neither is pruned
	cats, _ := reg.Reg.ListCategories()
	if len(cats) != 2 {
		t.Fatalf("categories accumulate, want 2, got %+v", cats)
	}
}

func TestEnsureItemTypeKeepsCategoryWhenOmitted(t *testing.T) {
	db := memdb(t)
	reg := services.NewRegistryService(repos.NewRegistryRepo(db))

	if err := reg.EnsureItemType("shirt", "Clothing"); err != nil {
		t.Fatal(err)
	}
	if err := reg.EnsureItemType("shirt", ""); err != nil {
		t.Fatal(err)
	}

	types, _ := reg.Reg.ListItemTypes()
	if types[0].CategoryName == nil || *types[0].CategoryName != "Clothing" {
		t.Fatalf("omitting the category must not clear it, got %+v", types[0])
	}
}

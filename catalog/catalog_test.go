// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/frscoding-sono/personal-stylist/db"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("Default catalog invalid: %v", err)
	}
	if len(cat.Week) != 7 {
		t.Errorf("Expected 7 forecast days, got %d", len(cat.Week))
	}
	for _, c := range Categories {
		if len(cat.Trending[c]) != 3 {
			t.Errorf("Expected 3 trending items for %s, got %d", c, len(cat.Trending[c]))
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"HAIR", CategoryHair, false},
		{"TOP", CategoryTop, false},
		{"BOTTOM", CategoryBottom, false},
		{"SHOES", CategoryShoes, false},
		{"top", "", true},
		{"HATS", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("Expected ErrUnknownCategory, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrendingItem(t *testing.T) {
	cat := Default()

	name, ok := cat.TrendingItem(CategoryShoes, 2)
	if !ok || name != "Chelsea Boots" {
		t.Errorf("TrendingItem(SHOES, 2) = %q, %v", name, ok)
	}
	if _, ok := cat.TrendingItem(CategoryShoes, 3); ok {
		t.Error("Expected index 3 to be out of range")
	}
	if _, ok := cat.TrendingItem(CategoryShoes, -1); ok {
		t.Error("Expected index -1 to be out of range")
	}
}

func TestTemplateFor(t *testing.T) {
	cat := Default()

	tmpl, ok := cat.TemplateFor(2)
	if !ok {
		t.Fatal("Expected template for Wednesday")
	}
	if tmpl.Name != "Winter Protection" {
		t.Errorf("Expected Winter Protection, got %q", tmpl.Name)
	}
	if _, ok := cat.TemplateFor(7); ok {
		t.Error("Expected day 7 to have no template")
	}
}

func TestAutoFillItemsFor(t *testing.T) {
	p := DefaultAutoFill()

	tests := []struct {
		temp int
		want []string
	}{
		{25, []string{"Light Cotton", "Linen"}},
		{21, []string{"Light Cotton", "Linen"}},
		{20, []string{"Wool Blend", "Cashmere"}},
		{-2, []string{"Wool Blend", "Cashmere"}},
	}

	for _, tt := range tests {
		got := p.ItemsFor(tt.temp)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ItemsFor(%d) = %v, want %v", tt.temp, got, tt.want)
		}
	}

	// Returned slices must not alias the policy
	got := p.ItemsFor(0)
	got[0] = "changed"
	if p.Cool[0] != "Wool Blend" {
		t.Error("ItemsFor returned a slice aliasing the policy")
	}
}

func TestWeekLabel(t *testing.T) {
	cat := Default()
	if got := cat.WeekLabel(); got != "27th - 2nd" {
		t.Errorf("WeekLabel() = %q, want %q", got, "27th - 2nd")
	}

	empty := &Catalog{}
	if got := empty.WeekLabel(); got != "" {
		t.Errorf("Expected empty label for empty week, got %q", got)
	}
}

func TestValidateRejectsMissingTemplate(t *testing.T) {
	cat := Default()
	delete(cat.Templates, ConditionRain)
	if err := cat.Validate(); err == nil {
		t.Fatal("Expected error for a forecast day without a template")
	}
}

func setupRepository(t *testing.T) *Repository {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return NewRepository(conn)
}

func TestRepositorySeedAndLoad(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seeded, err := repo.Seed(ctx, Default())
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if !seeded {
		t.Fatal("Expected first Seed to write")
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, Default()) {
		t.Errorf("Loaded catalog differs from default:\n got %+v\nwant %+v", loaded, Default())
	}
}

func TestRepositorySeedOnlyOnce(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	if _, err := repo.Seed(ctx, Default()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	custom := Default()
	custom.AutoFill.ScoreMin = 50
	seeded, err := repo.Seed(ctx, custom)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if seeded {
		t.Error("Expected second Seed to be a no-op")
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.AutoFill.ScoreMin != 85 {
		t.Errorf("Expected original score_min 85, got %d", loaded.AutoFill.ScoreMin)
	}
}

func TestRepositoryLoadEmpty(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.Load(context.Background())
	if !errors.Is(err, ErrNotSeeded) {
		t.Errorf("Expected ErrNotSeeded, got %v", err)
	}
}

func TestRepositoryLoadFallsBackToDefaultPolicy(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	if _, err := repo.Seed(ctx, Default()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if _, err := repo.db.ExecContext(ctx, "DELETE FROM autofill_item"); err != nil {
		t.Fatalf("Failed to clear auto-fill items: %v", err)
	}
	if _, err := repo.db.ExecContext(ctx, "DELETE FROM autofill_policy"); err != nil {
		t.Fatalf("Failed to clear auto-fill policy: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.AutoFill, DefaultAutoFill()) {
		t.Errorf("Expected default policy, got %+v", loaded.AutoFill)
	}
}

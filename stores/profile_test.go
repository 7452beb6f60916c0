// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stores

import (
	"errors"
	"strconv"
	"testing"
)

func TestNewProfileStoreDefaults(t *testing.T) {
	s := NewProfileStore()
	if got := s.Profile(); got != (Profile{Height: 178, Weight: 72}) {
		t.Errorf("Expected {178 72}, got %+v", got)
	}
}

func TestSetFieldClamps(t *testing.T) {
	tests := []struct {
		name  string
		field string
		raw   string
		want  int
	}{
		{"height above max", FieldHeight, "999", 210},
		{"weight below min", FieldWeight, "-5", 40},
		{"height in range", FieldHeight, "165", 165},
		{"height at min", FieldHeight, "140", 140},
		{"weight at max", FieldWeight, "130", 130},
		{"whitespace trimmed", FieldWeight, " 80 ", 80},
		{"fraction truncated", FieldHeight, "180.9", 180},
		{"overflow positive", FieldHeight, "99999999999999999999999", 210},
		{"overflow negative", FieldWeight, "-99999999999999999999999", 40},
		{"exponent", FieldWeight, "1e400", 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProfileStore()
			got, err := s.SetField(tt.field, tt.raw)
			if err != nil {
				t.Fatalf("SetField(%q, %q) failed: %v", tt.field, tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("SetField(%q, %q) = %d, want %d", tt.field, tt.raw, got, tt.want)
			}

			p := s.Profile()
			stored := p.Height
			if tt.field == FieldWeight {
				stored = p.Weight
			}
			if stored != tt.want {
				t.Errorf("stored %s = %d, want %d", tt.field, stored, tt.want)
			}
		})
	}
}

func TestSetFieldAlwaysWithinBounds(t *testing.T) {
	s := NewProfileStore()
	for v := -1000; v <= 1000; v += 7 {
		raw := strconv.Itoa(v)
		if _, err := s.SetField(FieldHeight, raw); err != nil {
			t.Fatalf("SetField(height, %s) failed: %v", raw, err)
		}
		if _, err := s.SetField(FieldWeight, raw); err != nil {
			t.Fatalf("SetField(weight, %s) failed: %v", raw, err)
		}
		p := s.Profile()
		if p.Height < HeightBounds.Min || p.Height > HeightBounds.Max {
			t.Fatalf("height %d out of bounds after %d", p.Height, v)
		}
		if p.Weight < WeightBounds.Min || p.Weight > WeightBounds.Max {
			t.Fatalf("weight %d out of bounds after %d", p.Weight, v)
		}
	}
}

func TestSetFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		raw     string
		wantErr error
	}{
		{"unknown field", "age", "30", ErrUnknownField},
		{"empty value", FieldHeight, "", ErrInvalidValue},
		{"letters", FieldHeight, "tall", ErrInvalidValue},
		{"nan", FieldWeight, "NaN", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProfileStore()
			_, err := s.SetField(tt.field, tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if s.Profile() != DefaultProfile() {
				t.Errorf("Profile changed on error: %+v", s.Profile())
			}
		})
	}
}

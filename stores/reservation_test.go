// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stores

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/frscoding-sono/personal-stylist/catalog"
)

func newTestReservations(seed int64) *ReservationStore {
	return NewReservationStore(catalog.Default(), rand.New(rand.NewSource(seed)))
}

func TestCommitSingleToggledItem(t *testing.T) {
	s := newTestReservations(1)

	if s.IsReserved(2) {
		t.Fatal("Expected day 2 to start unreserved")
	}
	if selected, err := s.Toggle(2, 0); err != nil || !selected {
		t.Fatalf("Toggle(2, 0) = %v, %v", selected, err)
	}

	rec, err := s.Commit(2)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if !reflect.DeepEqual(rec.ItemIndexes, []int{0}) {
		t.Errorf("Expected item indexes [0], got %v", rec.ItemIndexes)
	}
	if !reflect.DeepEqual(rec.Items, []string{"Long Padding"}) {
		t.Errorf("Expected [Long Padding], got %v", rec.Items)
	}
	if len(s.Pending(2)) != 0 {
		t.Errorf("Expected pending cleared, got %v", s.Pending(2))
	}

	// Re-committing without new toggles keeps the same selection
	rec, err = s.Commit(2)
	if err != nil {
		t.Fatalf("second Commit failed: %v", err)
	}
	if !reflect.DeepEqual(rec.ItemIndexes, []int{0}) {
		t.Errorf("Expected re-commit to keep [0], got %v", rec.ItemIndexes)
	}
	stored, _ := s.Record(2)
	if !reflect.DeepEqual(stored.Items, []string{"Long Padding"}) {
		t.Errorf("Expected stored [Long Padding], got %v", stored.Items)
	}
}

func TestCommitWithoutTogglesUsesFullTemplate(t *testing.T) {
	s := newTestReservations(1)

	rec, err := s.Commit(0)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	want := []string{"Wool Coat", "Knit Sweater", "Slacks", "Muffler"}
	if !reflect.DeepEqual(rec.Items, want) {
		t.Errorf("Expected full template %v, got %v", want, rec.Items)
	}
	if rec.Template != "Light Layered Look" {
		t.Errorf("Expected Light Layered Look, got %q", rec.Template)
	}
	if rec.Source != SourceManual {
		t.Errorf("Expected manual source, got %s", rec.Source)
	}
}

func TestToggleTwiceUndoes(t *testing.T) {
	s := newTestReservations(1)

	s.Toggle(3, 1)
	s.Toggle(3, 2)
	if selected, _ := s.Toggle(3, 1); selected {
		t.Error("Expected second toggle to deselect")
	}
	if got := s.Pending(3); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Expected pending [2], got %v", got)
	}

	s.Toggle(3, 2)
	rec, _ := s.Commit(3)
	if len(rec.Items) != 4 {
		t.Errorf("Expected a fully undone selection to commit the full template, got %v", rec.Items)
	}
}

func TestCommitOverwrites(t *testing.T) {
	s := newTestReservations(1)

	s.Toggle(1, 0)
	s.Toggle(1, 3)
	s.Commit(1)

	s.Toggle(1, 2)
	rec, _ := s.Commit(1)
	if !reflect.DeepEqual(rec.ItemIndexes, []int{2}) {
		t.Errorf("Expected overwrite with [2], got %v", rec.ItemIndexes)
	}
}

func TestCommitNeverEmpty(t *testing.T) {
	s := newTestReservations(1)
	for day := 0; day < s.Days(); day++ {
		// Leave every other day with a toggled-then-untoggled item
		if day%2 == 0 {
			s.Toggle(day, 1)
			s.Toggle(day, 1)
		}
		rec, err := s.Commit(day)
		if err != nil {
			t.Fatalf("Commit(%d) failed: %v", day, err)
		}
		if len(rec.Items) == 0 {
			t.Errorf("day %d committed with no items", day)
		}
	}
}

func TestToggleAndCommitRangeErrors(t *testing.T) {
	s := newTestReservations(1)

	if _, err := s.Toggle(7, 0); !errors.Is(err, ErrDayOutOfRange) {
		t.Errorf("Toggle(7, 0): expected ErrDayOutOfRange, got %v", err)
	}
	if _, err := s.Toggle(-1, 0); !errors.Is(err, ErrDayOutOfRange) {
		t.Errorf("Toggle(-1, 0): expected ErrDayOutOfRange, got %v", err)
	}
	if _, err := s.Toggle(0, 4); !errors.Is(err, ErrItemOutOfRange) {
		t.Errorf("Toggle(0, 4): expected ErrItemOutOfRange, got %v", err)
	}
	if _, err := s.Commit(7); !errors.Is(err, ErrDayOutOfRange) {
		t.Errorf("Commit(7): expected ErrDayOutOfRange, got %v", err)
	}
}

func TestAutoFillSkipsExistingRecords(t *testing.T) {
	s := newTestReservations(42)

	s.Toggle(4, 3)
	manual, _ := s.Commit(4)

	filled := s.AutoFill()
	if want := []int{0, 1, 2, 3, 5, 6}; !reflect.DeepEqual(filled, want) {
		t.Errorf("Expected filled days %v, got %v", want, filled)
	}

	got, _ := s.Record(4)
	if !reflect.DeepEqual(got, manual) {
		t.Errorf("AutoFill modified day 4:\n got %+v\nwant %+v", got, manual)
	}

	policy := catalog.DefaultAutoFill()
	for _, day := range filled {
		rec, ok := s.Record(day)
		if !ok {
			t.Fatalf("day %d has no record after AutoFill", day)
		}
		if rec.Source != SourceAutoFill || !rec.Fresh {
			t.Errorf("day %d: expected fresh auto-fill record, got %+v", day, rec)
		}
		if rec.MatchScore < policy.ScoreMin || rec.MatchScore > policy.ScoreMax {
			t.Errorf("day %d: score %d outside [%d, %d]", day, rec.MatchScore, policy.ScoreMin, policy.ScoreMax)
		}
		if !reflect.DeepEqual(rec.Items, policy.Cool) {
			t.Errorf("day %d (%d°C): expected cool set, got %v", day, rec.Weather.TempC, rec.Items)
		}
	}

	if again := s.AutoFill(); len(again) != 0 {
		t.Errorf("Expected second AutoFill to fill nothing, got %v", again)
	}
}

func TestAutoFillWarmDays(t *testing.T) {
	cat := catalog.Default()
	cat.Week[6].TempC = 24
	s := NewReservationStore(cat, rand.New(rand.NewSource(7)))

	s.AutoFill()
	rec, _ := s.Record(6)
	if !reflect.DeepEqual(rec.Items, []string{"Light Cotton", "Linen"}) {
		t.Errorf("Expected warm set for 24°C, got %v", rec.Items)
	}
}

func TestAutoFillDeterministicWithSeed(t *testing.T) {
	a := newTestReservations(99)
	b := newTestReservations(99)
	a.AutoFill()
	b.AutoFill()

	if !reflect.DeepEqual(a.Records(), b.Records()) {
		t.Error("Expected identical records for identical seeds")
	}
}

func TestClearFresh(t *testing.T) {
	s := newTestReservations(3)
	s.Commit(0)
	s.AutoFill()

	if n := s.ClearFresh(); n != 6 {
		t.Errorf("Expected 6 fresh records cleared, got %d", n)
	}
	for _, rec := range s.Records() {
		if rec.Fresh {
			t.Errorf("day %d still fresh", rec.Day)
		}
	}
	if n := s.ClearFresh(); n != 0 {
		t.Errorf("Expected nothing left to clear, got %d", n)
	}
}

func TestRecordReturnsCopy(t *testing.T) {
	s := newTestReservations(1)
	s.Commit(0)

	rec, _ := s.Record(0)
	rec.Items[0] = "changed"

	again, _ := s.Record(0)
	if again.Items[0] != "Wool Coat" {
		t.Error("Record returned a slice aliasing the store")
	}
}

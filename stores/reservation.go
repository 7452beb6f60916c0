// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stores

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/frscoding-sono/personal-stylist/catalog"
)

var ErrDayOutOfRange = errors.New("day index out of range")

// Source records how a reservation was created
type Source string

const (
	SourceManual   Source = "manual"
	SourceAutoFill Source = "auto_fill"
)

// Record is the reservation for one day of the week. Items is never empty.
type Record struct {
	Day      int                 `json:"day"`
	Template string              `json:"template"`
	Items    []string            `json:"items"`
	Weather  catalog.DayForecast `json:"weather"`
	Source   Source              `json:"source"`

	// Template positions of Items, set for manual records only
	ItemIndexes []int `json:"item_indexes,omitempty"`

	// Set for auto-filled records only
	MatchScore int  `json:"match_score,omitempty"`
	Fresh      bool `json:"fresh,omitempty"`
}

func (r *Record) clone() Record {
	out := *r
	out.Items = append([]string(nil), r.Items...)
	out.ItemIndexes = append([]int(nil), r.ItemIndexes...)
	return out
}

// ReservationStore holds the weekly plan: committed records plus the items
// toggled on each day but not yet committed.
type ReservationStore struct {
	cat     *catalog.Catalog
	rng     *rand.Rand
	records map[int]*Record
	pending map[int]map[int]bool
}

// NewReservationStore builds a store for cat's week. rng drives auto-fill
// match scores.
func NewReservationStore(cat *catalog.Catalog, rng *rand.Rand) *ReservationStore {
	return &ReservationStore{
		cat:     cat,
		rng:     rng,
		records: make(map[int]*Record),
		pending: make(map[int]map[int]bool),
	}
}

// Days returns the number of days in the week
func (s *ReservationStore) Days() int {
	return len(s.cat.Week)
}

func (s *ReservationStore) template(day int) (catalog.OutfitTemplate, error) {
	tmpl, ok := s.cat.TemplateFor(day)
	if !ok {
		return catalog.OutfitTemplate{}, fmt.Errorf("%w: %d", ErrDayOutOfRange, day)
	}
	return tmpl, nil
}

// Toggle flips item in day's pending selection and reports whether it is
// now selected.
func (s *ReservationStore) Toggle(day, item int) (bool, error) {
	tmpl, err := s.template(day)
	if err != nil {
		return false, err
	}
	if item < 0 || item >= len(tmpl.Items) {
		return false, fmt.Errorf("%w: day %d item %d", ErrItemOutOfRange, day, item)
	}

	set := s.pending[day]
	if set == nil {
		set = make(map[int]bool)
		s.pending[day] = set
	}
	if set[item] {
		delete(set, item)
		return false, nil
	}
	set[item] = true
	return true, nil
}

// Pending returns day's uncommitted selection in template order
func (s *ReservationStore) Pending(day int) []int {
	out := make([]int, 0, len(s.pending[day]))
	for item := range s.pending[day] {
		out = append(out, item)
	}
	sort.Ints(out)
	return out
}

// Commit writes day's reservation and clears its pending selection. The
// items come from the pending selection; when nothing is pending, a manual
// record already on the day is re-committed as is, otherwise the full
// template is used. Any existing record is replaced.
func (s *ReservationStore) Commit(day int) (Record, error) {
	tmpl, err := s.template(day)
	if err != nil {
		return Record{}, err
	}

	indexes := s.Pending(day)
	if len(indexes) == 0 {
		if prev, ok := s.records[day]; ok && prev.Source == SourceManual {
			indexes = append(indexes, prev.ItemIndexes...)
		}
	}
	if len(indexes) == 0 {
		for i := range tmpl.Items {
			indexes = append(indexes, i)
		}
	}

	items := make([]string, len(indexes))
	for i, idx := range indexes {
		items[i] = tmpl.Items[idx].Name
	}

	rec := &Record{
		Day:         day,
		Template:    tmpl.Name,
		Items:       items,
		ItemIndexes: indexes,
		Weather:     s.cat.Week[day],
		Source:      SourceManual,
	}
	s.records[day] = rec
	delete(s.pending, day)
	return rec.clone(), nil
}

// IsReserved reports whether day has a record
func (s *ReservationStore) IsReserved(day int) bool {
	_, ok := s.records[day]
	return ok
}

// Record returns a copy of day's record
func (s *ReservationStore) Record(day int) (Record, bool) {
	rec, ok := s.records[day]
	if !ok {
		return Record{}, false
	}
	return rec.clone(), true
}

// Records returns copies of every record ordered by day
func (s *ReservationStore) Records() []Record {
	days := make([]int, 0, len(s.records))
	for d := range s.records {
		days = append(days, d)
	}
	sort.Ints(days)

	out := make([]Record, 0, len(days))
	for _, d := range days {
		out = append(out, s.records[d].clone())
	}
	return out
}

// AutoFill creates a record for every day without one, using the catalog's
// auto-fill policy. Existing records are never touched. New records are
// marked Fresh. It returns the filled days in order.
func (s *ReservationStore) AutoFill() []int {
	policy := s.cat.AutoFill
	span := policy.ScoreMax - policy.ScoreMin + 1

	var filled []int
	for _, d := range s.cat.Week {
		if s.IsReserved(d.Index) {
			continue
		}
		tmpl, _ := s.cat.TemplateFor(d.Index)
		s.records[d.Index] = &Record{
			Day:        d.Index,
			Template:   tmpl.Name,
			Items:      policy.ItemsFor(d.TempC),
			Weather:    d,
			Source:     SourceAutoFill,
			MatchScore: policy.ScoreMin + s.rng.Intn(span),
			Fresh:      true,
		}
		filled = append(filled, d.Index)
	}
	return filled
}

// ClearFresh ends the freshly-filled display cycle and returns how many
// records were marked.
func (s *ReservationStore) ClearFresh() int {
	n := 0
	for _, rec := range s.records {
		if rec.Fresh {
			rec.Fresh = false
			n++
		}
	}
	return n
}

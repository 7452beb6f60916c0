// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stores

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown profile field")
	ErrInvalidValue = errors.New("value is not a number")
)

// Profile field names
const (
	FieldHeight = "height"
	FieldWeight = "weight"
)

// Bounds is an inclusive integer range
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clamp pins v into b
func (b Bounds) Clamp(v int64) int {
	if v < int64(b.Min) {
		return b.Min
	}
	if v > int64(b.Max) {
		return b.Max
	}
	return int(v)
}

var (
	HeightBounds = Bounds{Min: 140, Max: 210}
	WeightBounds = Bounds{Min: 40, Max: 130}
)

// Profile is the body measurement pair entered on the profile screen
type Profile struct {
	Height int `json:"height"`
	Weight int `json:"weight"`
}

// DefaultProfile is the profile every session starts with
func DefaultProfile() Profile {
	return Profile{Height: 178, Weight: 72}
}

// ProfileStore holds a Profile whose fields are always within bounds
type ProfileStore struct {
	profile Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profile: DefaultProfile()}
}

// Profile returns the current values
func (s *ProfileStore) Profile() Profile {
	return s.profile
}

// BoundsFor returns the allowed range of a field
func BoundsFor(key string) (Bounds, error) {
	switch key {
	case FieldHeight:
		return HeightBounds, nil
	case FieldWeight:
		return WeightBounds, nil
	default:
		return Bounds{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
}

// SetField parses raw as an integer, clamps it into the field's bounds and
// stores it. Out-of-range values are never an error. Fractional input is
// truncated toward zero. The stored value is returned.
func (s *ProfileStore) SetField(key, raw string) (int, error) {
	bounds, err := BoundsFor(key)
	if err != nil {
		return 0, err
	}

	v, err := parseInteger(raw)
	if err != nil {
		return 0, err
	}

	clamped := bounds.Clamp(v)
	switch key {
	case FieldHeight:
		s.profile.Height = clamped
	case FieldWeight:
		s.profile.Weight = clamped
	}
	return clamped, nil
}

func parseInteger(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)

	v, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		// ParseInt already saturated v at MinInt64/MaxInt64
		return v, nil
	}

	f, ferr := strconv.ParseFloat(raw, 64)
	if ferr != nil && !errors.Is(ferr, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	switch {
	case math.IsNaN(f):
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(f), nil
}

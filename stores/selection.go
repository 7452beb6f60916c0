// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stores

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/frscoding-sono/personal-stylist/catalog"
)

var ErrItemOutOfRange = errors.New("item index out of range")

// OriginalBase is the final look before any trending item is picked
const OriginalBase = "Original Base"

// Selection is the state of the solution screen
type Selection struct {
	ActiveCategory catalog.Category `json:"active_category"`
	FinalLook      string           `json:"final_look"`
}

// SelectionStore holds the active category and the composed final look
type SelectionStore struct {
	cat       *catalog.Catalog
	selection Selection
}

func NewSelectionStore(cat *catalog.Catalog) *SelectionStore {
	return &SelectionStore{
		cat: cat,
		selection: Selection{
			ActiveCategory: catalog.CategoryTop,
			FinalLook:      OriginalBase,
		},
	}
}

func (s *SelectionStore) Selection() Selection {
	return s.selection
}

// SetCategory switches the trending list being shown
func (s *SelectionStore) SetCategory(c catalog.Category) {
	s.selection.ActiveCategory = c
}

// SetFinalLook stores the "{category}_{index}" key for a trending item.
// Indexes outside the category's trending list are rejected and leave the
// selection unchanged.
func (s *SelectionStore) SetFinalLook(c catalog.Category, index int) (string, error) {
	if _, ok := s.cat.TrendingItem(c, index); !ok {
		return "", fmt.Errorf("%w: %s[%d]", ErrItemOutOfRange, c, index)
	}
	key := FinalLookKey(c, index)
	s.selection.FinalLook = key
	return key, nil
}

// ResetFinalLook goes back to OriginalBase
func (s *SelectionStore) ResetFinalLook() {
	s.selection.FinalLook = OriginalBase
}

// FinalLookItem returns the trending item name the final look refers to
func (s *SelectionStore) FinalLookItem() (string, bool) {
	c, index, ok := DecomposeFinalLook(s.selection.FinalLook)
	if !ok {
		return "", false
	}
	return s.cat.TrendingItem(c, index)
}

// FinalLookKey composes a final look key
func FinalLookKey(c catalog.Category, index int) string {
	return string(c) + "_" + strconv.Itoa(index)
}

// DecomposeFinalLook splits a key made by FinalLookKey. OriginalBase and
// malformed keys return ok == false.
func DecomposeFinalLook(key string) (c catalog.Category, index int, ok bool) {
	i := strings.LastIndexByte(key, '_')
	if i <= 0 {
		return "", 0, false
	}
	c, err := catalog.ParseCategory(key[:i])
	if err != nil {
		return "", 0, false
	}
	index, err = strconv.Atoi(key[i+1:])
	if err != nil || index < 0 {
		return "", 0, false
	}
	return c, index, true
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownCondition = errors.New("unknown weather condition")
)

// Category is a trending-item category shown on the solution screen
type Category string

const (
	CategoryHair   Category = "HAIR"
	CategoryTop    Category = "TOP"
	CategoryBottom Category = "BOTTOM"
	CategoryShoes  Category = "SHOES"
)

// Categories lists every category in display order
var Categories = []Category{CategoryHair, CategoryTop, CategoryBottom, CategoryShoes}

// ParseCategory validates a wire value
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Condition is a forecast weather condition
type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionSnow   Condition = "snow"
	ConditionRain   Condition = "rain"
)

// Conditions lists every condition a template can be keyed by
var Conditions = []Condition{ConditionSunny, ConditionCloudy, ConditionSnow, ConditionRain}

// ParseCondition validates a stored or wire value
func ParseCondition(s string) (Condition, error) {
	for _, c := range Conditions {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCondition, s)
}

// OutfitItem is one garment inside an outfit template
type OutfitItem struct {
	Name string `json:"name"`
	Slot string `json:"slot"`
	Icon string `json:"icon"`
}

// OutfitTemplate is the suggested outfit for a weather condition
type OutfitTemplate struct {
	Name  string       `json:"name"`
	Items []OutfitItem `json:"items"`
}

// DayForecast is one day of the planning week
type DayForecast struct {
	Index     int       `json:"index"`
	Day       string    `json:"day"`
	Date      int       `json:"date"`
	Condition Condition `json:"condition"`
	TempC     int       `json:"temp_c"`
	Icon      string    `json:"icon"`
}

// AutoFillPolicy decides what the calendar's magic fill writes into empty days.
// Days warmer than ThresholdC get Warm, the rest get Cool. Scores are drawn
// uniformly from [ScoreMin, ScoreMax].
type AutoFillPolicy struct {
	ThresholdC int      `json:"threshold_c"`
	Warm       []string `json:"warm"`
	Cool       []string `json:"cool"`
	ScoreMin   int      `json:"score_min"`
	ScoreMax   int      `json:"score_max"`
}

// ItemsFor returns the fabric set for a temperature
func (p AutoFillPolicy) ItemsFor(tempC int) []string {
	if tempC > p.ThresholdC {
		return append([]string(nil), p.Warm...)
	}
	return append([]string(nil), p.Cool...)
}

// Catalog is the reference data every session reads from
type Catalog struct {
	Trending  map[Category][]string        `json:"trending"`
	Templates map[Condition]OutfitTemplate `json:"templates"`
	Week      []DayForecast                `json:"week"`
	AutoFill  AutoFillPolicy               `json:"auto_fill"`
}

// TrendingItem returns the trending name at index within category
func (c *Catalog) TrendingItem(cat Category, index int) (string, bool) {
	items, ok := c.Trending[cat]
	if !ok || index < 0 || index >= len(items) {
		return "", false
	}
	return items[index], true
}

// TemplateFor returns the outfit template for a day of the week
func (c *Catalog) TemplateFor(day int) (OutfitTemplate, bool) {
	if day < 0 || day >= len(c.Week) {
		return OutfitTemplate{}, false
	}
	t, ok := c.Templates[c.Week[day].Condition]
	return t, ok
}

// WeekLabel renders the date range of the week, e.g. "27th - 2nd"
func (c *Catalog) WeekLabel() string {
	if len(c.Week) == 0 {
		return ""
	}
	first := c.Week[0].Date
	last := c.Week[len(c.Week)-1].Date
	return humanize.Ordinal(first) + " - " + humanize.Ordinal(last)
}

// Validate checks that every forecast day has a template with at least one item
func (c *Catalog) Validate() error {
	for _, d := range c.Week {
		t, ok := c.Templates[d.Condition]
		if !ok {
			return fmt.Errorf("day %d: no template for condition %q", d.Index, d.Condition)
		}
		if len(t.Items) == 0 {
			return fmt.Errorf("template %q has no items", t.Name)
		}
	}
	if c.AutoFill.ScoreMax < c.AutoFill.ScoreMin {
		return fmt.Errorf("auto-fill score range [%d, %d] is empty", c.AutoFill.ScoreMin, c.AutoFill.ScoreMax)
	}
	if len(c.AutoFill.Warm) == 0 || len(c.AutoFill.Cool) == 0 {
		return errors.New("auto-fill item sets must not be empty")
	}
	return nil
}

// DefaultAutoFill is the policy used when none is stored
func DefaultAutoFill() AutoFillPolicy {
	return AutoFillPolicy{
		ThresholdC: 20,
		Warm:       []string{"Light Cotton", "Linen"},
		Cool:       []string{"Wool Blend", "Cashmere"},
		ScoreMin:   85,
		ScoreMax:   94,
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{
		Trending: map[Category][]string{
			CategoryHair:   {"Silk Smooth", "Natural Perm", "Classic Cut"},
			CategoryTop:    {"Premium Knit", "Silk Shirt", "Wool Jacket"},
			CategoryBottom: {"Wide Slacks", "Raw Denim", "Cargo Pants"},
			CategoryShoes:  {"Derby Shoes", "Classic Sneaker", "Chelsea Boots"},
		},
		Templates: map[Condition]OutfitTemplate{
			ConditionSunny: {
				Name: "Light Layered Look",
				Items: []OutfitItem{
					{Name: "Wool Coat", Slot: "outer", Icon: "🧥"},
					{Name: "Knit Sweater", Slot: "top", Icon: "👔"},
					{Name: "Slacks", Slot: "bottom", Icon: "👖"},
					{Name: "Muffler", Slot: "accessory", Icon: "🧣"},
				},
			},
			ConditionCloudy: {
				Name: "Cozy Warm Look",
				Items: []OutfitItem{
					{Name: "Padded Jacket", Slot: "outer", Icon: "🧥"},
					{Name: "Turtleneck", Slot: "top", Icon: "👕"},
					{Name: "Fleece-Lined Pants", Slot: "bottom", Icon: "👖"},
					{Name: "Gloves", Slot: "accessory", Icon: "🧤"},
				},
			},
			ConditionSnow: {
				Name: "Winter Protection",
				Items: []OutfitItem{
					{Name: "Long Padding", Slot: "outer", Icon: "🧥"},
					{Name: "Heattech", Slot: "top", Icon: "👕"},
					{Name: "Fleece-Lined Jeans", Slot: "bottom", Icon: "👖"},
					{Name: "Winter Boots", Slot: "shoes", Icon: "👢"},
				},
			},
			ConditionRain: {
				Name: "Rain Ready Look",
				Items: []OutfitItem{
					{Name: "Trench Coat", Slot: "outer", Icon: "🧥"},
					{Name: "Waterproof Jacket", Slot: "top", Icon: "👕"},
					{Name: "Slacks", Slot: "bottom", Icon: "👖"},
					{Name: "Rain Boots", Slot: "shoes", Icon: "👢"},
				},
			},
		},
		Week: []DayForecast{
			{Index: 0, Day: "Mon", Date: 27, Condition: ConditionSunny, TempC: 5, Icon: "☀️"},
			{Index: 1, Day: "Tue", Date: 28, Condition: ConditionCloudy, TempC: 3, Icon: "🌤️"},
			{Index: 2, Day: "Wed", Date: 29, Condition: ConditionSnow, TempC: -2, Icon: "❄️"},
			{Index: 3, Day: "Thu", Date: 30, Condition: ConditionRain, TempC: 1, Icon: "🌧️"},
			{Index: 4, Day: "Fri", Date: 31, Condition: ConditionSunny, TempC: 4, Icon: "☀️"},
			{Index: 5, Day: "Sat", Date: 1, Condition: ConditionCloudy, TempC: 6, Icon: "🌤️"},
			{Index: 6, Day: "Sun", Date: 2, Condition: ConditionSunny, TempC: 8, Icon: "☀️"},
		},
		AutoFill: DefaultAutoFill(),
	}
}

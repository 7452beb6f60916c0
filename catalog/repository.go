// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frscoding-sono/personal-stylist/db"
)

var ErrNotSeeded = errors.New("catalog tables are empty")

// Repository stores catalog reference data in SQL tables
type Repository struct {
	db *db.DB
}

func NewRepository(conn *db.DB) *Repository {
	return &Repository{db: conn}
}

// Seed writes cat into empty tables. It returns false without writing when
// the catalog was seeded before.
func (r *Repository) Seed(ctx context.Context, cat *Catalog) (bool, error) {
	if err := cat.Validate(); err != nil {
		return false, fmt.Errorf("refusing to seed invalid catalog: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM forecast_day").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count forecast days: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exec := func(query string, args ...any) error {
		_, err := tx.ExecContext(ctx, r.db.Rebind(query), args...)
		return err
	}

	for _, category := range Categories {
		for i, name := range cat.Trending[category] {
			if err := exec("INSERT INTO trending_item (category, sort_order, name) VALUES (?, ?, ?)",
				string(category), i, name); err != nil {
				return false, fmt.Errorf("failed to insert trending item: %w", err)
			}
		}
	}

	for _, cond := range Conditions {
		tmpl, ok := cat.Templates[cond]
		if !ok {
			continue
		}
		if err := exec("INSERT INTO outfit_template (weather, name) VALUES (?, ?)", string(cond), tmpl.Name); err != nil {
			return false, fmt.Errorf("failed to insert outfit template: %w", err)
		}
		for i, item := range tmpl.Items {
			if err := exec("INSERT INTO template_item (weather, sort_order, name, slot, icon) VALUES (?, ?, ?, ?, ?)",
				string(cond), i, item.Name, item.Slot, item.Icon); err != nil {
				return false, fmt.Errorf("failed to insert template item: %w", err)
			}
		}
	}

	for _, d := range cat.Week {
		if err := exec("INSERT INTO forecast_day (day_index, day_name, day_date, weather, temp_c, icon) VALUES (?, ?, ?, ?, ?, ?)",
			d.Index, d.Day, d.Date, string(d.Condition), d.TempC, d.Icon); err != nil {
			return false, fmt.Errorf("failed to insert forecast day: %w", err)
		}
	}

	p := cat.AutoFill
	if err := exec("INSERT INTO autofill_policy (id, threshold_c, score_min, score_max) VALUES (?, ?, ?, ?)",
		1, p.ThresholdC, p.ScoreMin, p.ScoreMax); err != nil {
		return false, fmt.Errorf("failed to insert auto-fill policy: %w", err)
	}
	for band, names := range map[string][]string{"warm": p.Warm, "cool": p.Cool} {
		for i, name := range names {
			if err := exec("INSERT INTO autofill_item (band, sort_order, name) VALUES (?, ?, ?)", band, i, name); err != nil {
				return false, fmt.Errorf("failed to insert auto-fill item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit catalog seed: %w", err)
	}

	slog.Info("catalog seeded", "days", len(cat.Week), "templates", len(cat.Templates))
	return true, nil
}

// Load reads the catalog back. A missing auto-fill policy falls back to
// DefaultAutoFill.
func (r *Repository) Load(ctx context.Context) (*Catalog, error) {
	cat := &Catalog{
		Trending:  make(map[Category][]string),
		Templates: make(map[Condition]OutfitTemplate),
		AutoFill:  DefaultAutoFill(),
	}

	if err := r.loadTrending(ctx, cat); err != nil {
		return nil, err
	}
	if err := r.loadTemplates(ctx, cat); err != nil {
		return nil, err
	}
	if err := r.loadWeek(ctx, cat); err != nil {
		return nil, err
	}
	if err := r.loadAutoFill(ctx, cat); err != nil {
		return nil, err
	}

	if len(cat.Week) == 0 {
		return nil, ErrNotSeeded
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("stored catalog is invalid: %w", err)
	}
	return cat, nil
}

func (r *Repository) loadTrending(ctx context.Context, cat *Catalog) error {
	rows, err := r.db.QueryContext(ctx, "SELECT category, name FROM trending_item ORDER BY category, sort_order")
	if err != nil {
		return fmt.Errorf("failed to query trending items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rawCategory, name string
		if err := rows.Scan(&rawCategory, &name); err != nil {
			return fmt.Errorf("failed to scan trending item: %w", err)
		}
		category, err := ParseCategory(rawCategory)
		if err != nil {
			return err
		}
		cat.Trending[category] = append(cat.Trending[category], name)
	}
	return rows.Err()
}

func (r *Repository) loadTemplates(ctx context.Context, cat *Catalog) error {
	rows, err := r.db.QueryContext(ctx, "SELECT weather, name FROM outfit_template")
	if err != nil {
		return fmt.Errorf("failed to query outfit templates: %w", err)
	}
	names := make(map[Condition]string)
	for rows.Next() {
		var rawCond, name string
		if err := rows.Scan(&rawCond, &name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan outfit template: %w", err)
		}
		cond, err := ParseCondition(rawCond)
		if err != nil {
			rows.Close()
			return err
		}
		names[cond] = name
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx, "SELECT weather, name, slot, icon FROM template_item ORDER BY weather, sort_order")
	if err != nil {
		return fmt.Errorf("failed to query template items: %w", err)
	}
	defer rows.Close()

	items := make(map[Condition][]OutfitItem)
	for rows.Next() {
		var rawCond string
		var item OutfitItem
		if err := rows.Scan(&rawCond, &item.Name, &item.Slot, &item.Icon); err != nil {
			return fmt.Errorf("failed to scan template item: %w", err)
		}
		items[Condition(rawCond)] = append(items[Condition(rawCond)], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for cond, name := range names {
		cat.Templates[cond] = OutfitTemplate{Name: name, Items: items[cond]}
	}
	return nil
}

func (r *Repository) loadWeek(ctx context.Context, cat *Catalog) error {
	rows, err := r.db.QueryContext(ctx, "SELECT day_index, day_name, day_date, weather, temp_c, icon FROM forecast_day ORDER BY day_index")
	if err != nil {
		return fmt.Errorf("failed to query forecast: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d DayForecast
		var rawCond string
		if err := rows.Scan(&d.Index, &d.Day, &d.Date, &rawCond, &d.TempC, &d.Icon); err != nil {
			return fmt.Errorf("failed to scan forecast day: %w", err)
		}
		if d.Condition, err = ParseCondition(rawCond); err != nil {
			return err
		}
		if d.Index != len(cat.Week) {
			return fmt.Errorf("forecast day_index %d out of sequence", d.Index)
		}
		cat.Week = append(cat.Week, d)
	}
	return rows.Err()
}

func (r *Repository) loadAutoFill(ctx context.Context, cat *Catalog) error {
	var p AutoFillPolicy
	err := r.db.QueryRowContext(ctx, "SELECT threshold_c, score_min, score_max FROM autofill_policy WHERE id = 1").
		Scan(&p.ThresholdC, &p.ScoreMin, &p.ScoreMax)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query auto-fill policy: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, "SELECT band, name FROM autofill_item ORDER BY band, sort_order")
	if err != nil {
		return fmt.Errorf("failed to query auto-fill items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var band, name string
		if err := rows.Scan(&band, &name); err != nil {
			return fmt.Errorf("failed to scan auto-fill item: %w", err)
		}
		switch band {
		case "warm":
			p.Warm = append(p.Warm, name)
		case "cool":
			p.Cool = append(p.Cool, name)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	defaults := DefaultAutoFill()
	if len(p.Warm) == 0 {
		p.Warm = defaults.Warm
	}
	if len(p.Cool) == 0 {
		p.Cool = defaults.Cool
	}
	cat.AutoFill = p
	return nil
}

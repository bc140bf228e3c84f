package db

import (
	"context"

	"github.com/aveslog/backend/internal/model"
)

func (db *Postgres) Locales(ctx context.Context) ([]model.Locale, error) {
	query := `
		SELECT id, code
		FROM locale
		ORDER BY code
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locales []model.Locale
	for rows.Next() {
		var locale model.Locale
		if err := rows.Scan(&locale.ID, &locale.Code); err != nil {
			return nil, err
		}
		locales = append(locales, locale)
	}
	if locales == nil {
		locales = []model.Locale{}
	}
	return locales, rows.Err()
}

func (db *Postgres) LocaleByCode(ctx context.Context, code string) (*model.Locale, error) {
	query := `
		SELECT id, code
		FROM locale
		WHERE code = $1
	`
	var locale model.Locale
	err := db.Pool.QueryRow(ctx, query, code).Scan(&locale.ID, &locale.Code)
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

package db

import (
	"context"

	"github.com/aveslog/backend/internal/model"
)

func (db *Postgres) Birds(ctx context.Context) ([]model.Bird, error) {
	query := `
		SELECT id, binomial_name
		FROM bird
		ORDER BY binomial_name
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var birds []model.Bird
	for rows.Next() {
		var bird model.Bird
		if err := rows.Scan(&bird.ID, &bird.BinomialName); err != nil {
			return nil, err
		}
		birds = append(birds, bird)
	}
	if birds == nil {
		birds = []model.Bird{}
	}
	return birds, rows.Err()
}

func (db *Postgres) BirdByBinomialName(ctx context.Context, binomialName string) (*model.Bird, error) {
	query := `
		SELECT id, binomial_name
		FROM bird
		WHERE LOWER(binomial_name) = LOWER($1)
	`
	var bird model.Bird
	err := db.Pool.QueryRow(ctx, query, binomialName).Scan(&bird.ID, &bird.BinomialName)
	if err != nil {
		return nil, err
	}
	return &bird, nil
}

func (db *Postgres) BirdByID(ctx context.Context, id int64) (*model.Bird, error) {
	query := `
		SELECT id, binomial_name
		FROM bird
		WHERE id = $1
	`
	var bird model.Bird
	err := db.Pool.QueryRow(ctx, query, id).Scan(&bird.ID, &bird.BinomialName)
	if err != nil {
		return nil, err
	}
	return &bird, nil
}

package db

import (
	"context"

	"github.com/aveslog/backend/internal/model"
)

func (db *Postgres) CreateSighting(ctx context.Context, sighting *model.Sighting) (*model.Sighting, error) {
	query := `
		INSERT INTO sighting (birder_id, bird_id, sighting_date, sighting_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, birder_id, bird_id, sighting_date, sighting_time
	`
	var created model.Sighting
	err := db.Pool.QueryRow(ctx, query,
		sighting.BirderID,
		sighting.BirdID,
		sighting.SightingDate,
		sighting.SightingTime,
	).Scan(
		&created.ID,
		&created.BirderID,
		&created.BirdID,
		&created.SightingDate,
		&created.SightingTime,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (db *Postgres) SightingByID(ctx context.Context, id int64) (*model.Sighting, error) {
	query := `
		SELECT id, birder_id, bird_id, sighting_date, sighting_time
		FROM sighting
		WHERE id = $1
	`
	var sighting model.Sighting
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&sighting.ID,
		&sighting.BirderID,
		&sighting.BirdID,
		&sighting.SightingDate,
		&sighting.SightingTime,
	)
	if err != nil {
		return nil, err
	}
	return &sighting, nil
}

func (db *Postgres) SightingsByBirder(ctx context.Context, birderID int64) ([]model.Sighting, error) {
	query := `
		SELECT id, birder_id, bird_id, sighting_date, sighting_time
		FROM sighting
		WHERE birder_id = $1
		ORDER BY sighting_date DESC, id DESC
	`
	rows, err := db.Pool.Query(ctx, query, birderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sightings []model.Sighting
	for rows.Next() {
		var sighting model.Sighting
		if err := rows.Scan(
			&sighting.ID,
			&sighting.BirderID,
			&sighting.BirdID,
			&sighting.SightingDate,
			&sighting.SightingTime,
		); err != nil {
			return nil, err
		}
		sightings = append(sightings, sighting)
	}
	if sightings == nil {
		sightings = []model.Sighting{}
	}
	return sightings, rows.Err()
}

func (db *Postgres) DeleteSighting(ctx context.Context, id int64) error {
	query := `
		DELETE FROM sighting
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id)
	return err
}

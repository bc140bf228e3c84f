package service

import (
	"context"
	"errors"
	"time"

	"github.com/aveslog/backend/internal/db"
	"github.com/aveslog/backend/internal/model"
)

var (
	ErrSightingMissing = errors.New("sighting missing")
	ErrBirdMissing     = errors.New("bird missing")

	// ErrNotSightingOwner means the sighting exists but belongs to another
	// birder.
	ErrNotSightingOwner = errors.New("not sighting owner")
)

// SightingService records and serves bird sightings, attributed to the
// birder profile of the acting account.
type SightingService struct {
	store *db.Postgres
}

func NewSightingService(store *db.Postgres) *SightingService {
	return &SightingService{store: store}
}

func (s *SightingService) CreateSighting(ctx context.Context, birderID, birdID int64, date time.Time, timeOfDay *time.Time) (*model.Sighting, error) {
	if _, err := s.store.BirdByID(ctx, birdID); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrBirdMissing
		}
		return nil, err
	}
	return s.store.CreateSighting(ctx, &model.Sighting{
		BirderID:     birderID,
		BirdID:       birdID,
		SightingDate: date,
		SightingTime: timeOfDay,
	})
}

func (s *SightingService) SightingsByBirder(ctx context.Context, birderID int64) ([]model.Sighting, error) {
	return s.store.SightingsByBirder(ctx, birderID)
}

func (s *SightingService) SightingByID(ctx context.Context, id int64) (*model.Sighting, error) {
	sighting, err := s.store.SightingByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrSightingMissing
		}
		return nil, err
	}
	return sighting, nil
}

// DeleteSighting removes a sighting on behalf of a birder. Only the owner
// may delete.
func (s *SightingService) DeleteSighting(ctx context.Context, id, birderID int64) error {
	sighting, err := s.SightingByID(ctx, id)
	if err != nil {
		return err
	}
	if sighting.BirderID != birderID {
		return ErrNotSightingOwner
	}
	return s.store.DeleteSighting(ctx, id)
}

package model

import "time"

type Sighting struct {
	ID           int64
	BirderID     int64
	BirdID       int64
	SightingDate time.Time
	SightingTime *time.Time
}

package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoryStore defines persistence operations for travel stories.
// Every read and mutation is scoped by owner; a story owned by someone
// else is reported as ErrNotFound.
type StoryStore interface {
	Create(ctx context.Context, story Story) (Story, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (Story, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Story, error)
	Update(ctx context.Context, story Story) (Story, error)
	SetFavourite(ctx context.Context, id, ownerID uuid.UUID, isFavourite bool) (Story, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (Story, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string) ([]Story, error)
	ListByVisitedDate(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]Story, error)
}

// Story represents a stored travel story.
type Story struct {
	ID              uuid.UUID `json:"_id"`
	OwnerID         uuid.UUID `json:"userId"`
	Title           string    `json:"title"`
	Story           string    `json:"story"`
	VisitedLocation []string  `json:"visitedLocation"`
	ImageURL        string    `json:"imageUrl"`
	VisitedDate     time.Time `json:"visitedDate"`
	IsFavourite     bool      `json:"isFavourite"`
	CreatedAt       time.Time `json:"createdOn"`
}

// StoryParams contains client-supplied story content.
// VisitedDate is epoch milliseconds.
type StoryParams struct {
	Title           string
	Story           string
	VisitedLocation []string
	ImageURL        string
	VisitedDate     int64
}

// DateRange is an inclusive range of visited dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// FromEpochMillis converts epoch milliseconds to UTC time.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

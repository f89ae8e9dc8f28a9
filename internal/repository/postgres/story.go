package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/travelstory-server/internal/model"
)

var _ model.StoryStore = (*StoryRepository)(nil)

const storyColumns = `id, user_id, title, story, visited_location, image_url, visited_date, is_favourite, created_at`

// Favourites first, then insertion order.
const storyOrder = `ORDER BY is_favourite DESC, created_at ASC, id ASC`

type StoryRepository struct {
	db *Connection
}

func NewStoryRepository(db *Connection) *StoryRepository {
	return &StoryRepository{
		db: db,
	}
}

func (r *StoryRepository) Create(ctx context.Context, story model.Story) (model.Story, error) {
	query := `
		INSERT INTO travel_stories (id, user_id, title, story, visited_location, image_url, visited_date, is_favourite, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + storyColumns

	saved, err := scanStory(r.db.QueryRow(ctx, query,
		story.ID, story.OwnerID, story.Title, story.Story, story.VisitedLocation,
		story.ImageURL, story.VisitedDate, story.IsFavourite, story.CreatedAt,
	))
	if err != nil {
		return model.Story{}, fmt.Errorf("failed to create story: %w", err)
	}

	return saved, nil
}

func (r *StoryRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM travel_stories WHERE id = $1 AND user_id = $2`

	story, err := scanStory(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Story{}, model.ErrNotFound
		}
		return model.Story{}, fmt.Errorf("failed to get story by id: %w", err)
	}

	return story, nil
}

func (r *StoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM travel_stories WHERE user_id = $1 ` + storyOrder

	return r.list(ctx, query, ownerID)
}

// Update replaces the content fields of a story owned by story.OwnerID.
// Favourite flag and owner are left untouched.
func (r *StoryRepository) Update(ctx context.Context, story model.Story) (model.Story, error) {
	query := `
		UPDATE travel_stories
		SET title = $3, story = $4, visited_location = $5, image_url = $6, visited_date = $7
		WHERE id = $1 AND user_id = $2
		RETURNING ` + storyColumns

	saved, err := scanStory(r.db.QueryRow(ctx, query,
		story.ID, story.OwnerID, story.Title, story.Story, story.VisitedLocation,
		story.ImageURL, story.VisitedDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Story{}, model.ErrNotFound
		}
		return model.Story{}, fmt.Errorf("failed to update story: %w", err)
	}

	return saved, nil
}

func (r *StoryRepository) SetFavourite(ctx context.Context, id, ownerID uuid.UUID, isFavourite bool) (model.Story, error) {
	query := `
		UPDATE travel_stories SET is_favourite = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + storyColumns

	saved, err := scanStory(r.db.QueryRow(ctx, query, id, ownerID, isFavourite))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Story{}, model.ErrNotFound
		}
		return model.Story{}, fmt.Errorf("failed to set favourite: %w", err)
	}

	return saved, nil
}

// Delete removes the story and returns the removed row.
func (r *StoryRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (model.Story, error) {
	query := `DELETE FROM travel_stories WHERE id = $1 AND user_id = $2 RETURNING ` + storyColumns

	deleted, err := scanStory(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Story{}, model.ErrNotFound
		}
		return model.Story{}, fmt.Errorf("failed to delete story: %w", err)
	}

	return deleted, nil
}

// Search matches query as a case-insensitive substring of the title, the
// story text or any visited location.
func (r *StoryRepository) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]model.Story, error) {
	q := `
		SELECT ` + storyColumns + `
		FROM travel_stories
		WHERE user_id = $1
		  AND (title ILIKE $2
		       OR story ILIKE $2
		       OR EXISTS (SELECT 1 FROM unnest(visited_location) AS loc WHERE loc ILIKE $2))
		` + storyOrder

	return r.list(ctx, q, ownerID, containsPattern(query))
}

// ListByVisitedDate returns stories visited within [start, end].
func (r *StoryRepository) ListByVisitedDate(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]model.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM travel_stories
		WHERE user_id = $1 AND visited_date >= $2 AND visited_date <= $3
		` + storyOrder

	return r.list(ctx, query, ownerID, start, end)
}

func (r *StoryRepository) list(ctx context.Context, query string, args ...any) ([]model.Story, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer rows.Close()

	stories := make([]model.Story, 0)
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		stories = append(stories, story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stories: %w", err)
	}

	return stories, nil
}

func scanStory(row pgx.Row) (model.Story, error) {
	var s model.Story
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.Story, &s.VisitedLocation,
		&s.ImageURL, &s.VisitedDate, &s.IsFavourite, &s.CreatedAt,
	)
	if err != nil {
		return model.Story{}, err
	}
	s.VisitedDate = s.VisitedDate.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	if s.VisitedLocation == nil {
		s.VisitedLocation = []string{}
	}
	return s, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching query literally anywhere.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

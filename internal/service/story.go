package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// ImageRemover deletes a hosted image by its public URL.
type ImageRemover interface {
	DeleteImage(ctx context.Context, imageURL string) error
}

type Story struct {
	storyStore     model.StoryStore
	images         ImageRemover
	placeholderURL string
	logger         *logger.Logger
	now            func() time.Time
}

func NewStory(storyStore model.StoryStore, images ImageRemover, placeholderURL string, logger *logger.Logger) *Story {
	return &Story{
		storyStore:     storyStore,
		images:         images,
		placeholderURL: placeholderURL,
		logger:         logger,
		now:            time.Now,
	}
}

// AddStory creates a story owned by userID. Every field is required.
func (s *Story) AddStory(ctx context.Context, userID uuid.UUID, params model.StoryParams) (model.Story, error) {
	params = trimParams(params)
	if !hasContent(params) || params.ImageURL == "" {
		return model.Story{}, apierror.NewErrAllFieldsRequired()
	}

	s.logger.Debug("Story service: creating story", "user_id", userID)

	story, err := s.storyStore.Create(ctx, model.Story{
		ID:              uuid.New(),
		OwnerID:         userID,
		Title:           params.Title,
		Story:           params.Story,
		VisitedLocation: params.VisitedLocation,
		ImageURL:        params.ImageURL,
		VisitedDate:     model.FromEpochMillis(params.VisitedDate),
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("Story service: failed to create story",
			"user_id", userID,
			"error", err.Error())
		return model.Story{}, fmt.Errorf("failed to create story: %w", err)
	}

	s.logger.Info("Story service: story created",
		"user_id", userID,
		"story_id", story.ID)

	return story, nil
}

// GetStory returns a single story of the user.
func (s *Story) GetStory(ctx context.Context, userID, storyID uuid.UUID) (model.Story, error) {
	story, err := s.storyStore.GetByID(ctx, storyID, userID)
	if err != nil {
		return model.Story{}, storeError(err, "failed to get story")
	}
	return story, nil
}

// ListStories returns all stories of the user, favourites first, then by creation time.
func (s *Story) ListStories(ctx context.Context, userID uuid.UUID) ([]model.Story, error) {
	stories, err := s.storyStore.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Story service: failed to list stories",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// EditStory replaces the content of a story. A missing image URL is replaced
// by the placeholder. Ownership and favourite state are preserved.
func (s *Story) EditStory(ctx context.Context, userID, storyID uuid.UUID, params model.StoryParams) (model.Story, error) {
	params = trimParams(params)
	if !hasContent(params) {
		return model.Story{}, apierror.NewErrAllFieldsRequired()
	}
	if params.ImageURL == "" {
		params.ImageURL = s.placeholderURL
	}

	story, err := s.storyStore.Update(ctx, model.Story{
		ID:              storyID,
		OwnerID:         userID,
		Title:           params.Title,
		Story:           params.Story,
		VisitedLocation: params.VisitedLocation,
		ImageURL:        params.ImageURL,
		VisitedDate:     model.FromEpochMillis(params.VisitedDate),
	})
	if err != nil {
		return model.Story{}, storeError(err, "failed to update story")
	}

	s.logger.Info("Story service: story updated",
		"user_id", userID,
		"story_id", storyID)

	return story, nil
}

// DeleteStory removes the story and then its hosted image. Image removal
// failures are logged and do not fail the deletion.
func (s *Story) DeleteStory(ctx context.Context, userID, storyID uuid.UUID) error {
	story, err := s.storyStore.Delete(ctx, storyID, userID)
	if err != nil {
		return storeError(err, "failed to delete story")
	}

	s.logger.Info("Story service: story deleted",
		"user_id", userID,
		"story_id", storyID)

	if story.ImageURL == "" || story.ImageURL == s.placeholderURL {
		return nil
	}

	if err := s.images.DeleteImage(ctx, story.ImageURL); err != nil {
		s.logger.Error("Story service: failed to delete story image",
			"story_id", storyID,
			"image_url", story.ImageURL,
			"error", err.Error())
	}

	return nil
}

// SetFavourite sets the favourite flag to the given value.
func (s *Story) SetFavourite(ctx context.Context, userID, storyID uuid.UUID, isFavourite bool) (model.Story, error) {
	story, err := s.storyStore.SetFavourite(ctx, storyID, userID, isFavourite)
	if err != nil {
		return model.Story{}, storeError(err, "failed to update favourite")
	}
	return story, nil
}

// SearchStories returns the user's stories whose title, body or any visited
// location contains query, case-insensitively.
func (s *Story) SearchStories(ctx context.Context, userID uuid.UUID, query string) ([]model.Story, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apierror.NewErrValidation("query is required")
	}

	stories, err := s.storyStore.Search(ctx, userID, query)
	if err != nil {
		s.logger.Error("Story service: search failed",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to search stories: %w", err)
	}
	return stories, nil
}

// FilterStoriesByDate returns the user's stories visited within the
// inclusive range of epoch milliseconds.
func (s *Story) FilterStoriesByDate(ctx context.Context, userID uuid.UUID, startMs, endMs int64) ([]model.Story, error) {
	if startMs > endMs {
		return nil, apierror.NewErrValidation("Start date cannot be after end date")
	}

	stories, err := s.storyStore.ListByVisitedDate(ctx, userID,
		model.FromEpochMillis(startMs), model.FromEpochMillis(endMs))
	if err != nil {
		s.logger.Error("Story service: date filter failed",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to filter stories: %w", err)
	}
	return stories, nil
}

func storeError(err error, msg string) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrStoryNotFound()
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func trimParams(p model.StoryParams) model.StoryParams {
	p.Title = strings.TrimSpace(p.Title)
	p.Story = strings.TrimSpace(p.Story)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	locations := make([]string, 0, len(p.VisitedLocation))
	for _, l := range p.VisitedLocation {
		if l = strings.TrimSpace(l); l != "" {
			locations = append(locations, l)
		}
	}
	p.VisitedLocation = locations

	return p
}

// hasContent reports whether every field except the image URL is present.
func hasContent(p model.StoryParams) bool {
	return p.Title != "" && p.Story != "" && len(p.VisitedLocation) > 0 && p.VisitedDate != 0
}

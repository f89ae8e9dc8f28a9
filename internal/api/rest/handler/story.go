package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/api/rest/response"
	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// StoryService defines travel story operations scoped to a user.
type StoryService interface {
	AddStory(ctx context.Context, userID uuid.UUID, params model.StoryParams) (model.Story, error)
	GetStory(ctx context.Context, userID, storyID uuid.UUID) (model.Story, error)
	ListStories(ctx context.Context, userID uuid.UUID) ([]model.Story, error)
	EditStory(ctx context.Context, userID, storyID uuid.UUID, params model.StoryParams) (model.Story, error)
	DeleteStory(ctx context.Context, userID, storyID uuid.UUID) error
	SetFavourite(ctx context.Context, userID, storyID uuid.UUID, isFavourite bool) (model.Story, error)
	SearchStories(ctx context.Context, userID uuid.UUID, query string) ([]model.Story, error)
	FilterStoriesByDate(ctx context.Context, userID uuid.UUID, startMs, endMs int64) ([]model.Story, error)
}

type storyResponse struct {
	Story   model.Story `json:"story"`
	Message string      `json:"message"`
}

type storiesResponse struct {
	Stories []model.Story `json:"stories"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Story handles HTTP endpoints for travel stories.
type Story struct {
	storyService   StoryService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewStory creates a new Story handler.
func NewStory(storyService StoryService, contextManager model.ContextManager, logger *logger.Logger) *Story {
	return &Story{
		storyService:   storyService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Story) AddStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req storyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	story, err := h.storyService.AddStory(r.Context(), userID, req.params())
	if err != nil {
		h.fail(w, "add story", userID, err)
		return
	}

	response.JSON(w, http.StatusCreated, storyResponse{Story: story, Message: "Added Successfully"})
}

func (h *Story) ListStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stories, err := h.storyService.ListStories(r.Context(), userID)
	if err != nil {
		h.fail(w, "list stories", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, storiesResponse{Stories: nonNil(stories)})
}

func (h *Story) GetStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := storyID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	story, err := h.storyService.GetStory(r.Context(), userID, id)
	if err != nil {
		h.fail(w, "get story", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, storyResponse{Story: story})
}

func (h *Story) EditStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := storyID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req storyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	story, err := h.storyService.EditStory(r.Context(), userID, id, req.params())
	if err != nil {
		h.fail(w, "edit story", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, storyResponse{Story: story, Message: "Update Successful"})
}

func (h *Story) DeleteStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := storyID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.storyService.DeleteStory(r.Context(), userID, id); err != nil {
		h.fail(w, "delete story", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, messageResponse{Message: "Travel story deleted successfully"})
}

// UpdateIsFavourite sets the favourite flag to the value in the body.
func (h *Story) UpdateIsFavourite(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := storyID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req struct {
		IsFavourite *bool `json:"isFavourite"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	if req.IsFavourite == nil {
		handleError(w, apierror.NewErrValidation("isFavourite is required"))
		return
	}

	story, err := h.storyService.SetFavourite(r.Context(), userID, id, *req.IsFavourite)
	if err != nil {
		h.fail(w, "update favourite", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, storyResponse{Story: story, Message: "Update Successful"})
}

func (h *Story) SearchStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stories, err := h.storyService.SearchStories(r.Context(), userID, r.URL.Query().Get("query"))
	if err != nil {
		h.fail(w, "search stories", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, storiesResponse{Stories: nonNil(stories)})
}

func (h *Story) FilterStoriesByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	start, end := strings.TrimSpace(q.Get("startDate")), strings.TrimSpace(q.Get("endDate"))
	if start == "" || end == "" {
		handleError(w, apierror.NewErrValidation("startDate and endDate are required"))
		return
	}

	startMs, errStart := strconv.ParseInt(start, 10, 64)
	endMs, errEnd := strconv.ParseInt(end, 10, 64)
	if errStart != nil || errEnd != nil {
		handleError(w, apierror.NewErrValidation("startDate and endDate must be epoch milliseconds"))
		return
	}

	stories, err := h.storyService.FilterStoriesByDate(r.Context(), userID, startMs, endMs)
	if err != nil {
		h.fail(w, "filter stories", userID, err)
		return
	}

	response.JSON(w, http.StatusOK, storiesResponse{Stories: nonNil(stories)})
}

func (h *Story) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewErrMissingAuthorizationToken())
	}
	return userID, ok
}

func (h *Story) fail(w http.ResponseWriter, op string, userID uuid.UUID, err error) {
	if apierror.From(err).Kind == apierror.KindUpstream {
		h.logger.Error("Story handler: "+op+" failed",
			"user_id", userID,
			"error", err.Error())
	}
	handleError(w, err)
}

func nonNil(stories []model.Story) []model.Story {
	if stories == nil {
		return []model.Story{}
	}
	return stories
}

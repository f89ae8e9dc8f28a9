package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/travelstory-server/internal/api/rest/context"
	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/mocks"
	"github.com/dtroode/travelstory-server/internal/model"
	"github.com/dtroode/travelstory-server/internal/testutil"
)

func sampleStory(owner uuid.UUID) model.Story {
	return model.Story{
		ID:              uuid.MustParse("7d4f3e5a-1b2c-4d5e-8f90-a1b2c3d4e5f6"),
		OwnerID:         owner,
		Title:           "Trip",
		Story:           "Fun",
		VisitedLocation: []string{"Paris"},
		ImageURL:        "http://img/trip.webp",
		VisitedDate:     time.UnixMilli(1700000000000).UTC(),
		CreatedAt:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStory_AddStory(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	want := model.StoryParams{
		Title:           "Trip",
		Story:           "Fun",
		VisitedLocation: []string{"Paris"},
		ImageURL:        "http://img/trip.webp",
		VisitedDate:     1700000000000,
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "numeric date", body: `{"title":"Trip","story":"Fun","visitedLocation":["Paris"],"imageUrl":"http://img/trip.webp","visitedDate":1700000000000}`},
		{name: "string date", body: `{"title":"Trip","story":"Fun","visitedLocation":["Paris"],"imageUrl":"http://img/trip.webp","visitedDate":"1700000000000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewStoryService(t)
			svc.On("AddStory", mock.Anything, userID, want).Return(sampleStory(userID), nil)

			h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.AddStory(rec, asUser(newRequest(http.MethodPost, "/add-travel-story", tt.body), userID))

			assert.Equal(t, http.StatusCreated, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "Added Successfully", body["message"])
			story := body["story"].(map[string]any)
			assert.Equal(t, "7d4f3e5a-1b2c-4d5e-8f90-a1b2c3d4e5f6", story["_id"])
			assert.Equal(t, userID.String(), story["userId"])
			assert.Equal(t, false, story["isFavourite"])
			assert.Equal(t, "2023-11-14T22:13:20Z", story["visitedDate"])
			assert.Equal(t, "2024-01-02T03:04:05Z", story["createdOn"])
		})
	}
}

func TestStory_AddStory_Validation(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewStoryService(t)
	svc.On("AddStory", mock.Anything, userID, mock.Anything).Return(model.Story{}, apierror.NewErrAllFieldsRequired())

	h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.AddStory(rec, asUser(newRequest(http.MethodPost, "/add-travel-story", `{"title":"x"}`), userID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"All fields are required"}`, rec.Body.String())
}

func TestStory_AddStory_BadDate(t *testing.T) {
	t.Parallel()

	for _, date := range []string{`"yesterday"`, `1e300`, `"NaN"`} {
		t.Run(date, func(t *testing.T) {
			t.Parallel()

			h := NewStory(mocks.NewStoryService(t), restctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.AddStory(rec, asUser(newRequest(http.MethodPost, "/add-travel-story", `{"visitedDate":`+date+`}`), uuid.New()))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestStory_ListStories(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("stories", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewStoryService(t)
		svc.On("ListStories", mock.Anything, userID).Return([]model.Story{sampleStory(userID)}, nil)

		h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.ListStories(rec, asUser(newRequest(http.MethodGet, "/get-all-stories", ""), userID))

		assert.Equal(t, http.StatusOK, rec.Code)
		stories := decodeBody(t, rec)["stories"].([]any)
		assert.Len(t, stories, 1)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewStoryService(t)
		svc.On("ListStories", mock.Anything, userID).Return(nil, nil)

		h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.ListStories(rec, asUser(newRequest(http.MethodGet, "/get-all-stories", ""), userID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"stories":[]}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewStoryService(t)
		svc.On("ListStories", mock.Anything, userID).Return(nil, assert.AnError)

		h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.ListStories(rec, asUser(newRequest(http.MethodGet, "/get-all-stories", ""), userID))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestStory_GetStory(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	story := sampleStory(userID)

	svc := mocks.NewStoryService(t)
	svc.On("GetStory", mock.Anything, userID, story.ID).Return(story, nil)

	h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.GetStory(rec, withID(asUser(newRequest(http.MethodGet, "/get-story/"+story.ID.String(), ""), userID), story.ID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trip", decodeBody(t, rec)["story"].(map[string]any)["title"])
}

func TestStory_EditStory(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	story := sampleStory(userID)

	svc := mocks.NewStoryService(t)
	svc.On("EditStory", mock.Anything, userID, story.ID, mock.MatchedBy(func(p model.StoryParams) bool {
		return p.Title == "New" && p.ImageURL == "" && p.VisitedDate == 1600000000000
	})).Return(story, nil)

	h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	req := newRequest(http.MethodPost, "/edit-story/"+story.ID.String(),
		`{"title":"New","story":"s","visitedLocation":["Oslo"],"visitedDate":1600000000000}`)
	h.EditStory(rec, withID(asUser(req, userID), story.ID.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Update Successful", decodeBody(t, rec)["message"])
}

func TestStory_NotFound(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	id := uuid.New()

	tests := []struct {
		name   string
		id     string
		setup  func(svc *mocks.StoryService)
		invoke func(h *Story, w http.ResponseWriter, r *http.Request)
		body   string
	}{
		{
			name:   "delete someone else's story",
			id:     id.String(),
			setup:  func(svc *mocks.StoryService) { svc.On("DeleteStory", mock.Anything, userID, id).Return(apierror.NewErrStoryNotFound()) },
			invoke: (*Story).DeleteStory,
		},
		{
			name: "favourite someone else's story",
			id:   id.String(),
			setup: func(svc *mocks.StoryService) {
				svc.On("SetFavourite", mock.Anything, userID, id, true).Return(model.Story{}, apierror.NewErrStoryNotFound())
			},
			invoke: (*Story).UpdateIsFavourite,
			body:   `{"isFavourite":true}`,
		},
		{
			name:   "malformed id",
			id:     "not-a-uuid",
			setup:  func(*mocks.StoryService) {},
			invoke: (*Story).GetStory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewStoryService(t)
			tt.setup(svc)

			h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			tt.invoke(h, rec, withID(asUser(newRequest(http.MethodPut, "/", tt.body), userID), tt.id))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":true,"message":"Travel story not found"}`, rec.Body.String())
		})
	}
}

func TestStory_DeleteStory(t *testing.T) {
	t.Parallel()

	userID, id := uuid.New(), uuid.New()
	svc := mocks.NewStoryService(t)
	svc.On("DeleteStory", mock.Anything, userID, id).Return(nil)

	h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.DeleteStory(rec, withID(asUser(newRequest(http.MethodDelete, "/delete-story/"+id.String(), ""), userID), id.String()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Travel story deleted successfully"}`, rec.Body.String())
}

func TestStory_UpdateIsFavourite(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	story := sampleStory(userID)
	story.IsFavourite = true

	t.Run("sets value", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewStoryService(t)
		svc.On("SetFavourite", mock.Anything, userID, story.ID, true).Return(story, nil)

		h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		req := newRequest(http.MethodPut, "/update-is-favourite/"+story.ID.String(), `{"isFavourite":true}`)
		h.UpdateIsFavourite(rec, withID(asUser(req, userID), story.ID.String()))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Update Successful", body["message"])
		assert.Equal(t, true, body["story"].(map[string]any)["isFavourite"])
	})

	t.Run("missing flag", func(t *testing.T) {
		t.Parallel()

		h := NewStory(mocks.NewStoryService(t), restctx.NewManager(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		req := newRequest(http.MethodPut, "/update-is-favourite/"+story.ID.String(), `{}`)
		h.UpdateIsFavourite(rec, withID(asUser(req, userID), story.ID.String()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStory_SearchStories(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := mocks.NewStoryService(t)
	svc.On("SearchStories", mock.Anything, userID, "par is").Return([]model.Story{sampleStory(userID)}, nil)
	svc.On("SearchStories", mock.Anything, userID, "").Return(nil, apierror.NewErrValidation("query is required"))

	h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.SearchStories(rec, asUser(newRequest(http.MethodGet, "/search?query=par%20is", ""), userID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["stories"], 1)

	rec = httptest.NewRecorder()
	h.SearchStories(rec, asUser(newRequest(http.MethodGet, "/search", ""), userID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStory_FilterStoriesByDate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		query      string
		setup      func(svc *mocks.StoryService)
		wantStatus int
		wantMsg    string
	}{
		{
			name:  "range",
			query: "?startDate=1&endDate=1600000000000",
			setup: func(svc *mocks.StoryService) {
				svc.On("FilterStoriesByDate", mock.Anything, userID, int64(1), int64(1600000000000)).Return([]model.Story{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing end",
			query:      "?startDate=1",
			setup:      func(*mocks.StoryService) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "startDate and endDate are required",
		},
		{
			name:       "non numeric",
			query:      "?startDate=abc&endDate=2",
			setup:      func(*mocks.StoryService) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "startDate and endDate must be epoch milliseconds",
		},
		{
			name:  "start after end",
			query: "?startDate=5&endDate=2",
			setup: func(svc *mocks.StoryService) {
				svc.On("FilterStoriesByDate", mock.Anything, userID, int64(5), int64(2)).
					Return(nil, apierror.NewErrValidation("Start date cannot be after end date"))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Start date cannot be after end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewStoryService(t)
			tt.setup(svc)

			h := NewStory(svc, restctx.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.FilterStoriesByDate(rec, asUser(newRequest(http.MethodGet, "/travel-stories/filter"+tt.query, ""), userID))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeBody(t, rec)["message"])
				return
			}
			assert.JSONEq(t, `{"stories":[]}`, rec.Body.String())
		})
	}
}

func TestStory_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewStory(mocks.NewStoryService(t), restctx.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.ListStories(rec, newRequest(http.MethodGet, "/get-all-stories", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/model"
)

const maxBodyBytes = 1 << 20

// maxExactMillis is the largest float64 that still holds an integer exactly.
const maxExactMillis = 1 << 53

// EpochMillis is a timestamp in epoch milliseconds sent either as a JSON
// number or as a numeric string.
type EpochMillis int64

func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
		if len(data) == 0 {
			*e = 0
			return nil
		}
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil || math.IsNaN(f) || math.Abs(f) > maxExactMillis {
			return fmt.Errorf("invalid epoch milliseconds %q", data)
		}
		ms = int64(f)
	}

	*e = EpochMillis(ms)
	return nil
}

type storyRequest struct {
	Title           string      `json:"title"`
	Story           string      `json:"story"`
	VisitedLocation []string    `json:"visitedLocation"`
	ImageURL        string      `json:"imageUrl"`
	VisitedDate     EpochMillis `json:"visitedDate"`
}

func (r storyRequest) params() model.StoryParams {
	return model.StoryParams{
		Title:           r.Title,
		Story:           r.Story,
		VisitedLocation: r.VisitedLocation,
		ImageURL:        r.ImageURL,
		VisitedDate:     int64(r.VisitedDate),
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apierror.NewErrValidation("Request body too large")
	}
	return apierror.NewErrValidation("Invalid request body")
}

// storyID parses the id route parameter. A malformed id cannot name an
// existing story and is reported as not found.
func storyID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apierror.NewErrStoryNotFound()
	}
	return id, nil
}

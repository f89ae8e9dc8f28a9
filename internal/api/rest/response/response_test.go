package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/travelstory-server/internal/apierror"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"imageUrl": "http://x"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"imageUrl":"http://x"}`, rec.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: apierror.NewErrAllFieldsRequired(), wantStatus: http.StatusBadRequest, wantMsg: "All fields are required"},
		{name: "not found", err: apierror.NewErrStoryNotFound(), wantStatus: http.StatusNotFound, wantMsg: "Travel story not found"},
		{name: "auth", err: apierror.NewErrInvalidCredentials(), wantStatus: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
		{name: "plain error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantMsg: "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

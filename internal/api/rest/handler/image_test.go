package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/mocks"
	"github.com/dtroode/travelstory-server/internal/testutil"
)

func multipartRequest(t *testing.T, field, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="trip.png"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/image-upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImage_Upload(t *testing.T) {
	t.Parallel()

	svc := mocks.NewImageService(t)
	svc.On("UploadImage", mock.Anything, mock.Anything, int64(4), "image/png").
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(1).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, []byte("abcd"), data)
		}).
		Return("http://cdn/travel-stories/x.jpg", nil)

	h := NewImage(svc, 1024, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.Upload(rec, multipartRequest(t, "image", "image/png", []byte("abcd")))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"imageUrl":"http://cdn/travel-stories/x.jpg"}`, rec.Body.String())
}

func TestImage_Upload_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		h := NewImage(mocks.NewImageService(t), 1024, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartRequest(t, "photo", "image/png", []byte("abcd")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":true,"message":"No image uploaded"}`, rec.Body.String())
	})

	t.Run("not multipart", func(t *testing.T) {
		t.Parallel()

		h := NewImage(mocks.NewImageService(t), 1024, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Upload(rec, newRequest(http.MethodPost, "/image-upload", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		h := NewImage(mocks.NewImageService(t), 10, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartRequest(t, "image", "image/png", bytes.Repeat([]byte{1}, 2*multipartOverhead)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service rejects type", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewImageService(t)
		svc.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, "image/gif").
			Return("", apierror.NewErrValidation("Invalid file type"))

		h := NewImage(svc, 1024, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartRequest(t, "image", "image/gif", []byte("GIF8")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":true,"message":"Invalid file type"}`, rec.Body.String())
	})

	t.Run("gateway failure", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewImageService(t)
		svc.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

		h := NewImage(svc, 1024, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Upload(rec, multipartRequest(t, "image", "image/png", []byte("abcd")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestImage_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		imageURL   string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deleted",
			target:     "/delete-image?imageUrl=http%3A%2F%2Fcdn%2Fx.jpg",
			imageURL:   "http://cdn/x.jpg",
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Image deleted successfully"}`,
		},
		{
			name:       "missing parameter",
			target:     "/delete-image",
			svcErr:     apierror.NewErrValidation("imageUrl parameter is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":true,"message":"imageUrl parameter is required"}`,
		},
		{
			name:       "gateway failure",
			target:     "/delete-image?imageUrl=http%3A%2F%2Fcdn%2Fx.jpg",
			imageURL:   "http://cdn/x.jpg",
			svcErr:     assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":true,"message":"` + assert.AnError.Error() + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewImageService(t)
			svc.On("DeleteImage", mock.Anything, tt.imageURL).Return(tt.svcErr)

			h := NewImage(svc, 1024, testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.Delete(rec, newRequest(http.MethodDelete, tt.target, ""))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

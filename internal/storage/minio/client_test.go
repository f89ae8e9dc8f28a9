package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	policy    string
	policyErr error

	putKey         string
	putSize        int64
	putContentType string
	putBody        []byte
	putErr         error

	removedKey string
	removeErr  error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = f.makeBucketErr == nil
	return f.makeBucketErr
}

func (f *fakeMinio) SetBucketPolicy(_ context.Context, _ string, policy string) error {
	f.policy = policy
	return f.policyErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key
	f.putSize = size
	f.putContentType = opts.ContentType
	f.putBody, _ = io.ReadAll(r)
	return minioLib.UploadInfo{Key: key, Size: size}, f.putErr
}

func (f *fakeMinio) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	f.removedKey = key
	return f.removeErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b", "http://localhost:9000/")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "b", c.bucket)
	assert.False(t, api.madeBucket)
	assert.Empty(t, api.policy)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(ctx, api, "bucket", "http://localhost:9000")
	require.NoError(t, err)
	assert.Equal(t, "bucket", c.bucket)
	assert.True(t, api.madeBucket)
	assert.Contains(t, api.policy, "arn:aws:s3:::bucket/*")
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeMinio
		wantMsg string
	}{
		{
			name:    "bucket exists error",
			api:     &fakeMinio{bucketExistsErr: errors.New("boom")},
			wantMsg: "failed to check bucket existence",
		},
		{
			name:    "make bucket error",
			api:     &fakeMinio{makeBucketErr: errors.New("fail")},
			wantMsg: "failed to create bucket",
		},
		{
			name:    "policy error",
			api:     &fakeMinio{policyErr: errors.New("denied")},
			wantMsg: "failed to set bucket policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "bucket", "http://localhost:9000")
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ensure bucket exists")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b", "http://localhost:9000")
	require.NoError(t, err)

	err = c.Upload(ctx, "travel-stories/abc.jpg", bytes.NewReader([]byte("data")), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "travel-stories/abc.jpg", api.putKey)
	assert.Equal(t, int64(4), api.putSize)
	assert.Equal(t, "image/jpeg", api.putContentType)
	assert.Equal(t, []byte("data"), api.putBody)

	api.putErr = errors.New("put failed")
	err = c.Upload(ctx, "k", bytes.NewReader(nil), 0, "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b", "http://localhost:9000")
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, "travel-stories/abc.jpg"))
	assert.Equal(t, "travel-stories/abc.jpg", api.removedKey)

	api.removeErr = errors.New("remove failed")
	err = c.Delete(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_URL(t *testing.T) {
	c, err := NewClientWithAPI(context.Background(), &fakeMinio{bucketExists: true}, "travel-stories", "https://cdn.example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/travel-stories/travel-stories/abc.jpg", c.URL("travel-stories/abc.jpg"))
	assert.Equal(t, "https://cdn.example.com/travel-stories/a%20b.jpg", c.URL("a b.jpg"))
}

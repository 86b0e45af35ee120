package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/storage"
)

type s3Mock struct {
	mock.Mock
}

func (m *s3Mock) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, aws.ToString(in.Bucket), aws.ToString(in.Key))
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func TestDirStore_Get(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "abc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "abc", "home.html"), []byte("<p>home</p>"), 0o644))

	s, err := storage.NewDirStore(root)
	require.NoError(t, err)
	ctx := context.Background()

	data, err := s.Get(ctx, "abc/home.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>home</p>", string(data))

	_, err = s.Get(ctx, "abc/missing.html")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	for _, key := range []string{"", "../etc/passwd", "/abs", "a/../../x", `a\b`} {
		_, err = s.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrInvalidKey, key)
	}
}

func TestS3Store_Get(t *testing.T) {
	t.Parallel()

	client := &s3Mock{}
	client.On("GetObject", mock.Anything, "sites", "prod/abc/home.html").
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("<p>home</p>"))}, nil)
	client.On("GetObject", mock.Anything, "sites", "prod/abc/missing.html").
		Return(nil, &types.NoSuchKey{})
	client.On("GetObject", mock.Anything, "sites", "prod/abc/denied.html").
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"})
	client.On("GetObject", mock.Anything, "sites", "prod/abc/down.html").
		Return(nil, errors.New("dial tcp"))

	s, err := storage.NewS3Store(context.Background(),
		storage.Config{Bucket: "sites", Prefix: "prod"},
		storage.WithS3Client(client),
	)
	require.NoError(t, err)
	ctx := context.Background()

	data, err := s.Get(ctx, "abc/home.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>home</p>", string(data))

	_, err = s.Get(ctx, "abc/missing.html")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.Get(ctx, "abc/denied.html")
	assert.ErrorIs(t, err, storage.ErrReadFailed)
	assert.NotErrorIs(t, err, storage.ErrNotFound)

	_, err = s.Get(ctx, "abc/down.html")
	assert.ErrorIs(t, err, storage.ErrReadFailed)
}

func TestNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := storage.New(ctx, storage.Config{Driver: "dir", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &storage.DirStore{}, s)

	s, err = storage.New(ctx, storage.Config{Driver: "s3", Bucket: "b"}, storage.WithS3Client(&s3Mock{}))
	require.NoError(t, err)
	assert.IsType(t, &storage.S3Store{}, s)

	_, err = storage.New(ctx, storage.Config{Driver: "s3"})
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)

	_, err = storage.New(ctx, storage.Config{Driver: "ftp"})
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
}

package template

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

func TestDefaultHasPlaceholders(t *testing.T) {
	assert.Contains(t, Default(), "{formResults}")
	assert.Contains(t, Default(), "{table}")
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>{table}</p>"), 0o644))

	page, err := NewFileSource(path, false).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<p>{table}</p>", page)
}

func TestFileSource_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.html")

	_, err := NewFileSource(path, false).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrTemplateMissing)

	page, err := NewFileSource(path, true).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Default(), page)
}

type fakeS3 struct {
	input *s3.GetObjectInput
	body  string
	err   error
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Source(t *testing.T) {
	client := &fakeS3{body: "<html>{formResults}</html>"}

	page, err := NewS3Source(client, "pages", "index.html").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html>{formResults}</html>", page)
	assert.Equal(t, "pages", aws.ToString(client.input.Bucket))
	assert.Equal(t, "index.html", aws.ToString(client.input.Key))
}

func TestS3Source_Error(t *testing.T) {
	boom := errors.New("access denied")
	_, err := NewS3Source(&fakeS3{err: boom}, "pages", "index.html").Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

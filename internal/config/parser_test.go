package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glideerrors "github.com/glidetui/glide/pkg/errors"
)

func writeGallery(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseGallery_Valid(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, `
version: "1.0"
demos:
  - name: showcase
    variant: peek
    loop: true
    interval: 2s
    extent: 30
    items:
      - title: One
        body: first page
      - title: Two
`)

	gallery, err := ParseGallery(path)
	require.NoError(t, err)

	require.Len(t, gallery.Demos, 1)
	demo := gallery.Demos[0]
	assert.Equal(t, "showcase", demo.Name)
	assert.Equal(t, "peek", demo.Variant)
	assert.True(t, demo.Loop)
	assert.Equal(t, 2*time.Second, demo.Interval.Std())
	assert.Equal(t, 30.0, demo.Extent)
	require.Len(t, demo.Items, 2)
	assert.Equal(t, "first page", demo.Items[0].Body)
	assert.Empty(t, demo.Items[1].Body)
}

func TestParseGallery_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseGallery(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *glideerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseGallery_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, "version: \"1.0\"\ndemos:\n  - name: [broken\n")

	_, err := ParseGallery(path)
	require.Error(t, err)

	var parseErr *glideerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestParseGallery_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, `
version: "1.0"
demos:
  - name: showcase
    variant: basic
    velocity: fast
    items:
      - title: One
`)

	_, err := ParseGallery(path)
	require.Error(t, err)

	var parseErr *glideerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "velocity")
}

func TestParseGallery_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeGallery(t, "")

	_, err := ParseGallery(path)
	require.Error(t, err)

	var parseErr *glideerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseGallery_BadDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		interval string
	}{
		{"not a duration", "interval: soon"},
		{"negative", "interval: -2s"},
		{"wrong type", "interval: [1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeGallery(t, `
version: "1.0"
demos:
  - name: showcase
    variant: basic
    `+tt.interval+`
    items:
      - title: One
`)

			_, err := ParseGallery(path)
			require.Error(t, err)

			var parseErr *glideerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

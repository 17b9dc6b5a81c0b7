package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	glideerrors "github.com/glidetui/glide/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseGallery loads a gallery file from disk, validates it, and returns the
// resulting model. Unknown YAML keys are rejected.
func ParseGallery(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glideerrors.NewParseError(path, 0, err)
	}

	gallery, err := decodeGallery(data)
	if err != nil {
		return nil, glideerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateGallery(gallery); err != nil {
		return nil, err
	}

	return gallery, nil
}

func decodeGallery(data []byte) (*Gallery, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var gallery Gallery
	if err := dec.Decode(&gallery); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty gallery file")
		}
		return nil, err
	}

	return &gallery, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

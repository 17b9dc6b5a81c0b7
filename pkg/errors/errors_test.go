package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("must be greater than zero")
	err := NewConfigError("item_extent", "invalid value", underlying)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "item_extent", configErr.Field)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "item_extent")
}

func TestSchedulerErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	err := NewSchedulerError("start", "already running")

	var schedErr *SchedulerError
	require.ErrorAs(t, err, &schedErr)
	require.Equal(t, "start", schedErr.Op)
	require.Contains(t, err.Error(), "already running")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("gallery.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "gallery.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "gallery.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("carousels[0].extent", "must be positive", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "carousels[0].extent", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be positive")
}

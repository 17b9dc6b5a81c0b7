package carousel

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	glideerrors "github.com/glidetui/glide/pkg/errors"
)

const (
	defaultMinimumScale       = 0.4
	defaultMaxVisibleDistance = 2.0
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Config holds the immutable settings for one carousel instance. Create it
// once, call Normalize to fill optional visual fields, and hand it to
// NewController or NewEngine, which validate it.
type Config struct {
	// ItemCount is the number of pages. Zero is legal and renders nothing;
	// every engine operation becomes a no-op.
	ItemCount int `validate:"min=0"`

	// ItemExtent is the size of one page along the paging axis, in the
	// host's units (terminal cells for the TUI host).
	ItemExtent float64 `validate:"gt=0"`

	// Spacing is the gap between adjacent pages.
	Spacing float64 `validate:"gte=0"`

	// SnapThresholdFraction is the fraction of ItemExtent a drag must cross
	// before release advances the page.
	SnapThresholdFraction float64 `validate:"gt=0,lte=1"`

	// Loop wraps the index on auto-scroll. Manual drag never wraps.
	Loop bool

	// AutoScrollInterval is the delay between automatic advances. Zero
	// disables auto-scroll.
	AutoScrollInterval time.Duration `validate:"gte=0"`

	// FalloffPerStep is the scale reduction per unit distance from the
	// active index.
	FalloffPerStep float64 `validate:"gte=0"`

	// MaxVisibleDistance is the distance beyond which an item is fully
	// hidden. Zero means "use the default"; to hide all neighbours, set a
	// value below 1 (any positive distance short of the nearest neighbour).
	MaxVisibleDistance float64 `validate:"gte=0"`

	// MinimumScale is the lower clamp for the scale falloff. Zero means
	// "use the default"; near-zero values are accepted for an effectively
	// unclamped falloff.
	MinimumScale float64 `validate:"gte=0,lte=1"`

	// MaxRotationPerStep is the rotation in degrees per unit distance,
	// used by the perspective variants. Zero keeps items flat.
	MaxRotationPerStep float64
}

// Normalize returns a copy with unset visual fields replaced by defaults.
func (c Config) Normalize() Config {
	if c.MinimumScale == 0 {
		c.MinimumScale = defaultMinimumScale
	}
	if c.MaxVisibleDistance == 0 {
		c.MaxVisibleDistance = defaultMaxVisibleDistance
	}
	return c
}

// Validate checks the configuration and reports the first violation as a
// ConfigError. This is the one place in the engine where an explicit error
// is correct; all runtime input is absorbed by clamping instead.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertConfigError(err)
	}
	return nil
}

func (c Config) snapThreshold() float64 {
	return c.ItemExtent * c.SnapThresholdFraction
}

func (c Config) lastIndex() int {
	return c.ItemCount - 1
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func convertConfigError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := snakeFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return glideerrors.NewConfigError(field, msg, err)
	}

	return glideerrors.NewConfigError("config", err.Error(), err)
}

func snakeFieldName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	glideerrors "github.com/glidetui/glide/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	demoNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	knownVariants   = map[string]struct{}{
		"basic":       {},
		"peek":        {},
		"perspective": {},
		"vertical":    {},
	}
)

// validatorInstance configures and returns the shared validator used for
// gallery files.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("demo_name", func(fl validator.FieldLevel) bool {
			return demoNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("carousel_variant", func(fl validator.FieldLevel) bool {
			_, ok := knownVariants[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateGallery checks field constraints and cross-demo rules, reporting
// the first violation as a ValidationError.
func ValidateGallery(g *Gallery) error {
	if err := validatorInstance().Struct(g); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(g.Demos))
	for _, demo := range g.Demos {
		if _, dup := seen[demo.Name]; dup {
			return glideerrors.NewValidationError(
				"demos",
				fmt.Sprintf("duplicate demo name %q", demo.Name),
				nil,
			)
		}
		seen[demo.Name] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Namespace(), ve.Tag())
		return glideerrors.NewValidationError(ve.Namespace(), msg, err)
	}

	return glideerrors.NewValidationError("gallery", err.Error(), err)
}

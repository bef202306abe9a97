package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Fields flattens binding errors into a field to failed-rule map for
// the 422 envelope. Returns nil for non-validation errors such as
// malformed JSON.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

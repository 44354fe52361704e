package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

var validate = validator.New()

// Validate checks the resolved settings and reports every invalid field.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be > %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

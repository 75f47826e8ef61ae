package validators

import (
	"errors"
	"fmt"

	"hospital/services/scheduling"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Clock accepts zero-padded 24h HH:MM or HH:MM:SS.
func Clock(fl validator.FieldLevel) bool {
	_, err := scheduling.ParseClock(fl.Field().String())
	return err == nil
}

// Date accepts YYYY-MM-DD calendar dates.
func Date(fl validator.FieldLevel) bool {
	_, err := scheduling.ParseDate(fl.Field().String())
	return err == nil
}

var customTags = map[string]validator.Func{
	"clock": Clock,
	"date":  Date,
}

func Register(validate *validator.Validate) error {
	return registerTags(validate, customTags)
}

func registerTags(validate *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin adds the custom tags to gin's binding validator.
func RegisterWithGin() error {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(validate)
}

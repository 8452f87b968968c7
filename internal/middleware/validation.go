package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var telephoneRe = regexp.MustCompile(`^\+?[0-9 .-]{6,20}$`)

// RegisterValidations installs the custom binding validators and makes
// validation errors name form fields rather than Go struct fields. Call once
// before the engine serves requests.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// telephone accepts local and international phone spellings.
	if err := v.RegisterValidation("telephone", func(fl validator.FieldLevel) bool {
		return telephoneRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

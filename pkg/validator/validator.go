package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	initOnce  sync.Once
)

var (
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)
	templateIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

func Init() {
	initOnce.Do(func() {
		validate = validator.New()

		sanitizer = bluemonday.UGCPolicy()

		registerCustomValidations(validate)

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("username", validateUsername)
	v.RegisterValidation("template_id", validateTemplateID)
	v.RegisterValidation("no_html", validateNoHTML)
}

// ValidUsername reports whether a path username is well formed.
func ValidUsername(username string) bool {
	Init()
	return validate.Var(username, "username") == nil
}

// ValidateColors checks every non-empty colour of a scheme-like struct
// (fields tagged validate:"omitempty,hexcolor"). A nil pointer is valid.
func ValidateColors(scheme interface{}) error {
	if scheme == nil {
		return nil
	}
	Init()

	if err := validate.Struct(scheme); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return nil
		}
		var fields []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range errs {
				fields = append(fields, strings.ToLower(fieldErr.Field()))
			}
		}
		return fmt.Errorf("invalid colour value for %s", strings.Join(fields, ", "))
	}
	return nil
}

func SanitizeHTML(html string) string {
	Init()
	return sanitizer.Sanitize(html)
}

func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	return usernamePattern.MatchString(username) && len(username) >= 2 && len(username) <= 40
}

func validateTemplateID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || templateIDPattern.MatchString(value)
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}

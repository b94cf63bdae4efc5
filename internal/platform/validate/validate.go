// Package validate wraps go-playground/validator with english messages, json field
// names and project errors
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// Svc holds the validator and its translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Svc
)

// Get returns the process wide validator, initializing on first use
func Get() *Svc {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		svc = &Svc{Validator: v, Translator: trans}
	})
	return svc
}

// Register adds a custom string tag backed by match, with message "{field} <msg>"
func Register(tag, msg string, match func(string) bool) error {
	s := Get()
	if err := s.Validator.RegisterValidation(tag, func(fl FieldLevel) bool {
		return match(fl.Field().String())
	}); err != nil {
		return err
	}
	registerShort(s.Validator, s.Translator, tag, "{0} "+msg)
	return nil
}

// Struct validates v and returns a validation perr carrying the first failing field
func Struct(v any) error {
	return mapErr(Get().Validator.Struct(v))
}

// Var validates a single value against tag, reporting failures under field
func Var(field string, value any, tag string) error {
	err := mapErr(Get().Validator.Var(value, tag))
	if err == nil {
		return nil
	}
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s %s", field, strings.TrimSpace(perr.WireFrom(err).Message)), field)
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Wrap(inv, perr.ErrorCodeUnknown, "validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(u ut.Translator) error { return u.Add(tag, text, true) },
		func(u ut.Translator, fe validator.FieldError) string {
			msg, _ := u.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

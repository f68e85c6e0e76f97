package problem

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	tagShape  = "shape"  // cost grid is not len(Supply)×len(Demand)
	tagLabels = "labels" // label count differs from the dimension it names
)

// ValidationError carries one readable message per violated rule.
type ValidationError struct {
	Messages []string
}

// Error joins all messages on one line.
func (e *ValidationError) Error() string {
	return ErrInvalidProblem.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Unwrap exposes ErrInvalidProblem to errors.Is.
func (e *ValidationError) Unwrap() error { return ErrInvalidProblem }

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

// engine lazily builds the shared validator with English messages and the
// problem-level shape rules.
func engine() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(yamlName)

		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, translator)

		validate.RegisterStructValidation(shapeRules, Problem{})
		registerMessage(tagShape, "{0} must have one row per supply entry and one column per demand entry")
		registerMessage(tagLabels, "{0} must be empty or have exactly one label per {1}")
	})

	return validate, translator
}

// yamlName reports fields under their document key.
func yamlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}

	return name
}

func registerMessage(tag, text string) {
	_ = validate.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		})
}

// shapeRules checks the relations between fields that tags cannot express.
func shapeRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(Problem)

	shapeOK := len(p.Costs) == len(p.Supply)
	for _, row := range p.Costs {
		if len(row) != len(p.Demand) {
			shapeOK = false
			break
		}
	}
	if !shapeOK {
		sl.ReportError(p.Costs, "costs", "Costs", tagShape, "")
	}
	if len(p.Sources) > 0 && len(p.Sources) != len(p.Supply) {
		sl.ReportError(p.Sources, "sources", "Sources", tagLabels, "source")
	}
	if len(p.Destinations) > 0 && len(p.Destinations) != len(p.Demand) {
		sl.ReportError(p.Destinations, "destinations", "Destinations", tagLabels, "destination")
	}
}

// Validate checks p against its tags and shape rules and returns a
// *ValidationError listing every violation, or nil.
func (p Problem) Validate() error {
	v, trans := engine()
	err := v.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Messages: []string{err.Error()}}
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return &ValidationError{Messages: msgs}
}

package forms

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"carmarket-bff/internal/marketerrors"
)

var (
	personNameRe = regexp.MustCompile(`^\p{L}[\p{L} '\-]*$`)
	phoneRe      = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
)

// MinCarYear is the oldest model year accepted on proposals
const MinCarYear = 1950

// maxSanitizePasses bounds the strip loop for entity-encoded markup such as &lt;script&gt;
const maxSanitizePasses = 4

// sanitizer strips markup from free text before it is validated and sent on.
// The result is plain text: entities are decoded so "Q&A" stays "Q&A".
type sanitizer struct {
	policy *bluemonday.Policy
}

func (s sanitizer) text(in string) string {
	out := in
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(out))
		if next == out {
			break
		}
		out = next
	}
	return strings.TrimSpace(out)
}

// sanitizable forms clean their free-text fields in place
type sanitizable interface {
	sanitize(s sanitizer)
}

// Validator runs every rule of a form and collects all violations at once
type Validator struct {
	validate  *validator.Validate
	sanitizer sanitizer
	now       func() time.Time
}

// NewValidator builds a Validator with the marketplace's custom rules registered
func NewValidator() *Validator {
	return newValidator(time.Now)
}

func newValidator(now func() time.Time) *Validator {
	fv := &Validator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		sanitizer: sanitizer{policy: bluemonday.StrictPolicy()},
		now:       now,
	}

	// report json names so field errors line up with the request body
	fv.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(fv.validate, "personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	mustRegister(fv.validate, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(fv.validate, "password", func(fl validator.FieldLevel) bool {
		return CheckPassword(fl.Field().String()).Valid()
	})
	mustRegister(fv.validate, "adult", func(fl validator.FieldLevel) bool {
		dob, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			// datetime already reports the format problem
			return true
		}
		return IsAdult(dob, fv.now())
	})
	mustRegister(fv.validate, "caryear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= MinCarYear && year <= fv.now().Year()+1
	})

	fv.validate.RegisterStructValidation(fv.productRules, ProductForm{})

	return fv
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", tag, err))
	}
}

// productRules covers the auction date rules that depend on more than one field
func (fv *Validator) productRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(ProductForm)
	if !f.IsAuction {
		return
	}
	if f.AuctionEndDate == nil {
		sl.ReportError(f.AuctionEndDate, "auction_end_date", "AuctionEndDate", "required", "")
		return
	}
	if !f.AuctionEndDate.After(fv.now()) {
		sl.ReportError(f.AuctionEndDate, "auction_end_date", "AuctionEndDate", "future", "")
	}
	if f.AuctionStartDate != nil && !f.AuctionEndDate.After(*f.AuctionStartDate) {
		sl.ReportError(f.AuctionEndDate, "auction_end_date", "AuctionEndDate", "afterstart", "")
	}
}

// Validate sanitizes free text, then checks every rule. It returns nil or
// marketerrors.FieldErrors holding one message per violated field.
func (fv *Validator) Validate(form any) error {
	if s, ok := form.(sanitizable); ok {
		s.sanitize(fv.sanitizer)
	}

	err := fv.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("forms: %w", err)
	}

	fields := make(marketerrors.FieldErrors, len(verrs))
	for _, fe := range verrs {
		// first failing rule per field wins
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return fields
}

// Sanitize cleans a single free-text value the same way forms are cleaned
func (fv *Validator) Sanitize(in string) string {
	return fv.sanitizer.text(in)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "personname":
		return "may only contain letters, spaces, apostrophes and hyphens"
	case "alphanum":
		return "may only contain letters and digits"
	case "phone":
		return "must be a valid phone number"
	case "password":
		return CheckPassword(fe.Value().(string)).message()
	case "eqfield":
		return "does not match"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "adult":
		return "you must be at least 18 years old"
	case "caryear":
		return fmt.Sprintf("must be between %d and next year", MinCarYear)
	case "future":
		return "must be in the future"
	case "afterstart":
		return "must be after the auction start date"
	case "oneof":
		return "should have value in: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "should be greater or equal than " + fe.Param()
	case "lte":
		return "should be less or equal than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "length should be at least " + fe.Param()
		}
		return "should be greater or equal than " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "length should be at most " + fe.Param()
		}
		if fe.Kind() == reflect.Slice {
			return "at most " + fe.Param() + " items allowed"
		}
		return "should be less or equal than " + fe.Param()
	}
	return "incorrect value passed"
}

package book

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const tagReadPage = "readpage_lte_pagecount"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(readPageWithinPageCount, Payload{})
	return v
}

// readPageWithinPageCount only fires when both counters are present.
func readPageWithinPageCount(sl validator.StructLevel) {
	p := sl.Current().Interface().(Payload)
	if p.PageCount != nil && p.ReadPage != nil && *p.ReadPage > *p.PageCount {
		sl.ReportError(p.ReadPage, "readPage", "ReadPage", tagReadPage, "pageCount")
	}
}

// Validate checks p for the given mode. A missing name is reported before a
// readPage overflow. Any other field is accepted as given.
func Validate(p Payload, mode Mode) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	reason := reasonReadPage
	for _, fe := range fieldErrs {
		if fe.Field() == "name" {
			reason = reasonMissingName
			break
		}
	}
	return &ValidationError{Mode: mode, Reason: reason}
}

// checkInvariant guards a stored record after a merge.
func checkInvariant(b Book, mode Mode) error {
	if b.ReadPage > b.PageCount {
		return &ValidationError{Mode: mode, Reason: reasonReadPage}
	}
	return nil
}

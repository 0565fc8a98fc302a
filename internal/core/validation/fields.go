// Package validation implements the pure rule engine that gates every
// master-data write. Validators receive a cleaned record (empty value means
// "not provided") plus reference data, and return the ordered list of
// human-readable error messages; an empty list means the record is valid.
// Rules accumulate, they never short-circuit.
package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Alphabetic fields may contain spaces ("Mary Jane"), dots and hyphens, which
// validator's bare "alpha" tag rejects.
var alphaRe = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*$`)

// checkRequired appends a message when a required value is absent.
func checkRequired(errs []string, field, value string) []string {
	if value == "" {
		errs = append(errs, fmt.Sprintf("%s is required", field))
	}
	return errs
}

// checkEnum appends a message when value is set and not in the allow-list.
func checkEnum(errs []string, field, value string, allowed []string) []string {
	if value == "" {
		return errs
	}
	for _, a := range allowed {
		if a == value {
			return errs
		}
	}
	return append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
}

func checkAlpha(errs []string, field, value string) []string {
	if value != "" && !alphaRe.MatchString(value) {
		errs = append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
	}
	return errs
}

func checkNumeric(errs []string, field, value string) []string {
	if value == "" {
		return errs
	}
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
	}
	return errs
}

func checkAlphanum(errs []string, field, value string) []string {
	if value != "" && validate.Var(value, "alphanum") != nil {
		errs = append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
	}
	return errs
}

func checkFloat(errs []string, field, value string) []string {
	if value == "" {
		return errs
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
	}
	return errs
}

func checkEmail(errs []string, field, value string) []string {
	if value != "" && validate.Var(value, "email") != nil {
		errs = append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
	}
	return errs
}

func checkURL(errs []string, field, value string) []string {
	if value != "" && validate.Var(value, "url") != nil {
		errs = append(errs, fmt.Sprintf("Invalid %s: %s", field, value))
	}
	return errs
}

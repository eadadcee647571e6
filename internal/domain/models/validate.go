package models

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"luggagebill/internal/domain"
)

// PhonePrefixes are the network prefixes accepted for next-of-kin numbers.
var PhonePrefixes = []string{"0803", "0806", "0809", "0703", "0706", "0709", "0813", "0816", "0819"}

var (
	phonePattern = regexp.MustCompile(`^(0803|0806|0809|0703|0706|0709|0813|0816|0819)\d{7}$`)
	platePattern = regexp.MustCompile(`^[A-Z]{3}-\d{3}-[A-Z]{3}$`)
)

// ValidatePhoneNumber accepts an allowed prefix followed by exactly 7 digits.
func ValidatePhoneNumber(field, s string) error {
	if !phonePattern.MatchString(s) {
		return domain.ValidationError{
			Field: field,
			Msg:   "must start with " + strings.Join(PhonePrefixes, ", ") + " and be 11 digits long",
		}
	}
	return nil
}

// ValidatePlateNumber accepts the AAA-111-AAA format.
func ValidatePlateNumber(field, s string) error {
	if !platePattern.MatchString(s) {
		return domain.ValidationError{Field: field, Msg: "must be in the format AAA-111-AAA"}
	}
	return nil
}

func ValidateEmail(field, s string) error {
	if s == "" {
		return domain.ValidationError{Field: field, Msg: "required"}
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return domain.ValidationError{Field: field, Msg: "must be a valid email address"}
	}
	return nil
}

func requireText(field, s string, max int) error {
	if strings.TrimSpace(s) == "" {
		return domain.ValidationError{Field: field, Msg: "required"}
	}
	return maxLen(field, s, max)
}

func maxLen(field, s string, max int) error {
	if max > 0 && utf8.RuneCountInString(s) > max {
		return domain.ValidationError{Field: field, Msg: "too long"}
	}
	return nil
}

func requireRef(field string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: field, Msg: "required"}
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func itemField(i int, field string) string {
	return "items[" + strconv.Itoa(i) + "]." + field
}

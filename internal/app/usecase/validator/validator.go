package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

const minProductNameLen = 6

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// MobileNumber accepts exactly ten digits, the format every customer-facing
// flow requires before touching the API.
func MobileNumber(number string) bool {
	return mobilePattern.MatchString(number)
}

func Email(address string) bool {
	_, err := mail.ParseAddress(address)

	return err == nil
}

func ProductName(name string) bool {
	return len(name) >= minProductNameLen
}

func ProductPrice(price float64) bool {
	return price > 0
}

func RemarkText(text string) bool {
	return len(strings.TrimSpace(text)) > 0
}

package address

import (
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength       = 255
	maxViaLength        = 255
	maxShortFieldLength = 20
	maxPostalCodeLength = 10
)

func isValidText(value string, maxLength int) bool {
	value = strings.TrimSpace(value)
	return value != "" && utf8.RuneCountInString(value) <= maxLength
}

// пустые door и floor допустимы: частный дом без подъезда
func isValidOptional(value *string, maxLength int) bool {
	return value == nil || utf8.RuneCountInString(strings.TrimSpace(*value)) <= maxLength
}

// slug: строчные латинские буквы, цифры и дефис, без дефиса по краям
func isValidSlug(slug string) bool {
	if slug == "" || len(slug) > maxNameLength ||
		strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return false
	}
	for _, char := range slug {
		if (char < 'a' || char > 'z') && (char < '0' || char > '9') && char != '-' {
			return false
		}
	}
	return true
}

func isValidPostalCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxPostalCodeLength {
		return false
	}
	for _, char := range code {
		if (char < '0' || char > '9') && (char < 'A' || char > 'Z') && char != ' ' && char != '-' {
			return false
		}
	}
	return true
}

package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"dispatch/internal/entities"
)

func isValidText(value string, maxLength int) bool {
	value = strings.TrimSpace(value)
	return value != "" && utf8.RuneCountInString(value) <= maxLength
}

func isValidEmail(email string) bool {
	if !isValidText(email, entities.MaxEmailLength) {
		return false
	}
	addr, err := mail.ParseAddress(email)
	// только голый адрес, без "Имя <addr>"
	return err == nil && addr.Address == strings.TrimSpace(email)
}

func isValidPhone(phone string) bool {
	if !isValidText(phone, entities.MaxPhoneLength) {
		return false
	}

	digits := 0
	for _, char := range strings.TrimSpace(phone) {
		switch {
		case char >= '0' && char <= '9':
			digits++
		case char == '+', char == ' ', char == '-', char == '(', char == ')':
		default:
			return false
		}
	}
	return digits > 0
}

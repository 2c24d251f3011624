package order

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"dispatch/internal/entities"
)

const (
	MinDeliveryWindowHours = 1
	MaxDeliveryWindowHours = 8
)

const (
	fieldName              = "name"
	fieldLastname          = "lastname"
	fieldEmail             = "email"
	fieldPhone             = "phone"
	fieldDeliveryDate      = "delivery_date"
	fieldDeliveryStartTime = "delivery_start_time"
	fieldDeliveryEndTime   = "delivery_end_time"
	fieldClientID          = "client_id"
	fieldAddressID         = "address_id"
)

// ValidDeliveryWindow: конец строго позже начала, а целых часов между ними от 1 до 8.
// Остаток минут отбрасывается, поэтому 09:00-17:59 это 8 часов, а 09:00-09:59 ноль.
func ValidDeliveryWindow(start, end entities.TimeOfDay) bool {
	if end <= start {
		return false
	}
	hours := int((end.Duration() - start.Duration()).Hours())
	return hours >= MinDeliveryWindowHours && hours <= MaxDeliveryWindowHours
}

type orderCheck func(modify *entities.OrderModify) []FieldViolation

// orderChecks порядок важен только для стабильного порядка нарушений в ответе.
var orderChecks = []orderCheck{
	checkContacts,
	checkSchedule,
	checkReferences,
}

func validateOrder(modify *entities.OrderModify) []FieldViolation {
	var violations []FieldViolation
	for _, check := range orderChecks {
		violations = append(violations, check(modify)...)
	}
	return violations
}

func checkContacts(modify *entities.OrderModify) []FieldViolation {
	var violations []FieldViolation

	violations = appendTextViolation(violations, fieldName, modify.Name, entities.MaxNameLength)
	violations = appendTextViolation(violations, fieldLastname, modify.Lastname, entities.MaxLastnameLength)
	violations = appendTextViolation(violations, fieldPhone, modify.Phone, entities.MaxPhoneLength)

	switch {
	case modify.Email == nil || strings.TrimSpace(*modify.Email) == "":
		violations = append(violations, FieldViolation{Field: fieldEmail, Message: "is required"})
	case utf8.RuneCountInString(*modify.Email) > entities.MaxEmailLength:
		violations = append(violations, FieldViolation{Field: fieldEmail, Message: "is too long"})
	case !isValidEmail(*modify.Email):
		violations = append(violations, FieldViolation{Field: fieldEmail, Message: "is not a valid email address"})
	}

	return violations
}

func checkSchedule(modify *entities.OrderModify) []FieldViolation {
	var violations []FieldViolation

	if modify.DeliveryDate == nil || modify.DeliveryDate.IsZero() {
		violations = append(violations, FieldViolation{Field: fieldDeliveryDate, Message: "is required"})
	}

	if modify.DeliveryStartTime == nil {
		violations = append(violations, FieldViolation{Field: fieldDeliveryStartTime, Message: "is required"})
	}
	if modify.DeliveryEndTime == nil {
		violations = append(violations, FieldViolation{Field: fieldDeliveryEndTime, Message: "is required"})
	}

	if modify.DeliveryStartTime != nil && modify.DeliveryEndTime != nil &&
		!ValidDeliveryWindow(*modify.DeliveryStartTime, *modify.DeliveryEndTime) {
		violations = append(violations, FieldViolation{
			Field:   fieldDeliveryEndTime,
			Message: "delivery window must be after start and span 1 to 8 whole hours",
		})
	}

	return violations
}

func checkReferences(modify *entities.OrderModify) []FieldViolation {
	var violations []FieldViolation

	if modify.ClientID == nil || *modify.ClientID <= 0 {
		violations = append(violations, FieldViolation{Field: fieldClientID, Message: "is required"})
	}
	if modify.AddressID == nil || *modify.AddressID <= 0 {
		violations = append(violations, FieldViolation{Field: fieldAddressID, Message: "is required"})
	}

	return violations
}

func appendTextViolation(violations []FieldViolation, field string, value *string, maxLength int) []FieldViolation {
	switch {
	case value == nil || strings.TrimSpace(*value) == "":
		return append(violations, FieldViolation{Field: field, Message: "is required"})
	case utf8.RuneCountInString(*value) > maxLength:
		return append(violations, FieldViolation{Field: field, Message: "is too long"})
	default:
		return violations
	}
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == strings.TrimSpace(email)
}

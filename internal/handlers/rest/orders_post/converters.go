package orders_post

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/order"
)

// toOrderModify разбирает дату и время. Неразборчивые значения возвращаются нарушениями,
// пустые передаются дальше как nil и проверяются сервисом.
func toOrderModify(orderCreateDTO dto.OrderCreate) (entities.OrderModify, []dto.Violation) {
	orderModify := entities.OrderModify{
		Name:      orderCreateDTO.Name,
		Lastname:  orderCreateDTO.Lastname,
		Email:     orderCreateDTO.Email,
		Phone:     orderCreateDTO.Phone,
		ClientID:  orderCreateDTO.ClientID,
		AddressID: orderCreateDTO.AddressID,
	}

	var violations []dto.Violation

	if orderCreateDTO.DeliveryDate != nil && *orderCreateDTO.DeliveryDate != "" {
		date, err := entities.ParseDeliveryDate(*orderCreateDTO.DeliveryDate)
		if err != nil {
			violations = append(violations, dto.Violation{
				Field:   "delivery_date",
				Message: "must be YYYY/MM/DD or YYYY-MM-DD",
			})
		} else {
			orderModify.DeliveryDate = &date
		}
	}

	timeFields := []struct {
		field  string
		value  *string
		target **entities.TimeOfDay
	}{
		{"delivery_start_time", orderCreateDTO.DeliveryStartTime, &orderModify.DeliveryStartTime},
		{"delivery_end_time", orderCreateDTO.DeliveryEndTime, &orderModify.DeliveryEndTime},
	}
	for _, tf := range timeFields {
		if tf.value == nil || *tf.value == "" {
			continue
		}
		tod, err := entities.ParseTimeOfDay(*tf.value)
		if err != nil {
			violations = append(violations, dto.Violation{Field: tf.field, Message: "must be HH:MM or HH:MM:SS"})
			continue
		}
		*tf.target = &tod
	}

	return orderModify, violations
}

func toViolations(fieldViolations []order.FieldViolation) []dto.Violation {
	violations := make([]dto.Violation, 0, len(fieldViolations))
	for _, v := range fieldViolations {
		violations = append(violations, dto.Violation{Field: v.Field, Message: v.Message})
	}
	return violations
}

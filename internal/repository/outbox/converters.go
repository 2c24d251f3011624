package outbox

import (
	"dispatch/internal/entities"
)

func ToDomain(m *OutboxDB) *entities.OutboxMessage {
	if m == nil {
		return nil
	}

	return &entities.OutboxMessage{
		ID:          m.ID,
		EventType:   entities.OrderEventType(m.EventType),
		AggregateID: m.AggregateID,
		Payload:     m.Payload,
		Attempts:    m.Attempts,
		LastError:   m.LastError,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainList(messagesDB []OutboxDB) []entities.OutboxMessage {
	if len(messagesDB) == 0 {
		return []entities.OutboxMessage{}
	}

	result := make([]entities.OutboxMessage, len(messagesDB))
	for i, messageDB := range messagesDB {
		result[i] = *ToDomain(&messageDB)
	}
	return result
}

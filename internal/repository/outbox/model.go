package outbox

import (
	"time"

	"github.com/google/uuid"
)

type OutboxDB struct {
	ID          uuid.UUID
	EventType   string
	AggregateID int64
	Payload     []byte
	Attempts    int
	LastError   string
	CreatedAt   time.Time
}

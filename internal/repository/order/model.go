package order

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderDB struct {
	ID                int64
	Name              string
	Lastname          string
	Email             string
	Phone             string
	DeliveryDate      time.Time
	DeliveryStartTime pgtype.Time
	DeliveryEndTime   pgtype.Time
	ClientID          int64
	AddressID         int64
	DriverID          pgtype.Int8
	Status            string
	CreatedAt         time.Time
}

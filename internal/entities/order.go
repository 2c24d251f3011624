package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// Принимаемые форматы даты доставки: исторический 2018/12/12 и ISO 2018-12-12.
var dateLayouts = []string{"2006/01/02", "2006-01-02"}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

type Order struct {
	ID                int64
	Name              string
	Lastname          string
	Email             string
	Phone             string
	DeliveryDate      time.Time
	DeliveryStartTime TimeOfDay
	DeliveryEndTime   TimeOfDay
	ClientID          int64
	AddressID         int64
	Assignment        Assignment
	CreatedAt         time.Time
}

type OrderModify struct {
	Name              *string
	Lastname          *string
	Email             *string
	Phone             *string
	DeliveryDate      *time.Time
	DeliveryStartTime *TimeOfDay
	DeliveryEndTime   *TimeOfDay
	ClientID          *int64
	AddressID         *int64
}

type OrderFilter struct {
	DeliveryDate *time.Time
	DriverID     *int64
}

type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAssigned AssignmentStatus = "assigned"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentAssigned:
		return true
	default:
		return false
	}
}

// Assignment состояние назначения заказа. DriverID заполнен только в Assigned.
type Assignment struct {
	Status   AssignmentStatus
	DriverID int64
}

func PendingAssignment() Assignment {
	return Assignment{Status: AssignmentPending}
}

func AssignedTo(driverID int64) Assignment {
	return Assignment{Status: AssignmentAssigned, DriverID: driverID}
}

func (a Assignment) IsAssigned() bool {
	return a.Status == AssignmentAssigned
}

// TimeOfDay смещение от полуночи с точностью до секунды.
type TimeOfDay time.Duration

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) String() string {
	total := int64(time.Duration(t) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// ParseDeliveryDate разбирает календарную дату без времени и зоны.
func ParseDeliveryDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// DateOf отбрасывает время, оставляя полночь UTC того же календарного дня.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

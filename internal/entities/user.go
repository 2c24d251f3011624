package entities

import "time"

// Ограничения длины полей, общие для пользователей и заказов.
const (
	MaxNameLength     = 50
	MaxLastnameLength = 100
	MaxEmailLength    = 100
	MaxPhoneLength    = 20
)

type User struct {
	ID        int64
	Name      string
	Lastname  string
	Email     string
	Phone     string
	Type      UserType
	CreatedAt time.Time
}

// UserType закрытое перечисление: других ролей у пользователя нет.
type UserType string

const (
	UserClient UserType = "client"
	UserDriver UserType = "driver"
)

func (t UserType) String() string {
	return string(t)
}

func (t UserType) Valid() bool {
	switch t {
	case UserClient, UserDriver:
		return true
	default:
		return false
	}
}

type UserModify struct {
	ID       *int64
	Name     *string
	Lastname *string
	Email    *string
	Phone    *string
	Type     *UserType
}

type UserFilter struct {
	Type *UserType
}

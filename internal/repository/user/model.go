package user

import "time"

type UserDB struct {
	ID        int64
	Name      string
	Lastname  string
	Email     string
	Phone     string
	Type      string
	CreatedAt time.Time
}

type UserModifyDB struct {
	ID       *int64
	Name     *string
	Lastname *string
	Email    *string
	Phone    *string
	Type     *string
}

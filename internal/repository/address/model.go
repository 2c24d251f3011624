package address

import "time"

type CountryDB struct {
	ID   int64
	Name string
	Slug string
}

type CityDB struct {
	ID        int64
	Name      string
	CountryID int64
}

type AddressDB struct {
	ID         int64
	Via        string
	Number     string
	Door       string
	Floor      string
	PostalCode string
	CityID     int64
	CreatedAt  time.Time
}

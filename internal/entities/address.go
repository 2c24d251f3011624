package entities

import "time"

type Country struct {
	ID   int64
	Name string
	Slug string
}

type CountryModify struct {
	Name *string
	Slug *string
}

type City struct {
	ID        int64
	Name      string
	CountryID int64
}

type CityModify struct {
	Name      *string
	CountryID *int64
}

type CityFilter struct {
	CountryID *int64
}

type Address struct {
	ID         int64
	Via        string
	Number     string
	Door       string
	Floor      string
	PostalCode string
	CityID     int64
	CreatedAt  time.Time
}

type AddressModify struct {
	Via        *string
	Number     *string
	Door       *string
	Floor      *string
	PostalCode *string
	CityID     *int64
}

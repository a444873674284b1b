package domain

import "time"

// Address represents the postal address of a service unit.
// Latitude/Longitude are optional: units without resolved coordinates
// take part in searches but always rank after units that have them.
type Address struct {
	Street     *string
	Number     *string
	City       *string
	State      *string
	PostalCode *string
	Latitude   *float64
	Longitude  *float64
	Complement *string
}

// HasCoordinates returns true if both latitude and longitude are known
func (a *Address) HasCoordinates() bool {
	return a != nil && a.Latitude != nil && a.Longitude != nil
}

// Unit represents a single service unit (branch) of the chain.
// The record is immutable once loaded for the session; it is owned by
// the directory service.
type Unit struct {
	ID         int64
	ExternalID string // ID юнита во внешней системе бронирования (UNO)
	Name       string
	Slug       string
	Active     bool
	Bookable   bool // юнит подключён к внешней системе бронирования
	Address    Address

	Phone     *string
	WhatsApp  *string
	Instagram *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coordinate is a plain latitude/longitude pair. Value type, no identity.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Coordinates returns the unit coordinate, or nil when unknown
func (u *Unit) Coordinates() *Coordinate {
	if !u.Address.HasCoordinates() {
		return nil
	}
	return &Coordinate{Lat: *u.Address.Latitude, Lon: *u.Address.Longitude}
}

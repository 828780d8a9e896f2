package entities

import "time"

type Driver struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	VehicleID    string
	Status       string
	RegisteredAt time.Time
}

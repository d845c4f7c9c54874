package model

import (
	"lodge/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
	FieldImages        = "images"
	FieldAmenities     = "amenities"
	FieldStatus        = "status"

	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

type Room struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	PricePerNight float64        `db:"price_per_night"`
	MaxGuests     int            `db:"max_guests"`
	Images        pq.StringArray `db:"images"`
	Amenities     pq.StringArray `db:"amenities"`
	Status        string         `db:"status"`
	model.Metadata
}

package model

import (
	"lodge/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "hotel"
	EntityName = "hotel"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZipCode      = "zip_code"
	FieldCountry      = "country"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
	FieldPolicies     = "policies"
	FieldAmenities    = "amenities"
)

// Hotel is the singleton property record; at most one row exists.
type Hotel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Address      string         `db:"address"`
	City         string         `db:"city"`
	State        string         `db:"state"`
	ZipCode      string         `db:"zip_code"`
	Country      string         `db:"country"`
	Phone        string         `db:"phone"`
	Email        string         `db:"email"`
	CheckInTime  string         `db:"check_in_time"`
	CheckOutTime string         `db:"check_out_time"`
	Policies     pq.StringArray `db:"policies"`
	Amenities    pq.StringArray `db:"amenities"`
	model.Metadata
}

package dto

import (
	"fmt"
	"strings"
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/schedule"
	roomDto "lodge/internal/domains/room/model/dto"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string `json:"roomId"     validate:"required,uuid"`
	GuestName  string `json:"guestName"  validate:"required,max=200"`
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	GuestPhone string `json:"guestPhone" validate:"omitempty,max=32"`
	CheckIn    string `json:"checkIn"    validate:"required"`
	CheckOut   string `json:"checkOut"   validate:"required"`
}

// ToModel builds a pending booking. Dates and price are supplied by the
// admission flow, which has already validated the range against the room.
func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		Code:       NewBookingCode(),
		RoomID:     c.RoomID,
		GuestName:  c.GuestName,
		GuestEmail: strings.ToLower(c.GuestEmail),
		GuestPhone: c.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
		Status:     schedule.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
			CreatedBy: user,
			UpdatedBy: user,
		},
	}
}

// NewBookingCode returns the short human-facing reference guests use for
// lookup, e.g. BK-3F0A91BC.
func NewBookingCode() string {
	return fmt.Sprintf("BK-%s", strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]))
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID         string                `json:"id"`
	BookingID  string                `json:"bookingId"`
	RoomID     string                `json:"roomId"`
	GuestName  string                `json:"guestName"`
	GuestEmail string                `json:"guestEmail"`
	GuestPhone string                `json:"guestPhone"`
	CheckIn    string                `json:"checkIn"`
	CheckOut   string                `json:"checkOut"`
	TotalPrice float64               `json:"totalPrice"`
	Status     string                `json:"status"`
	Room       *roomDto.RoomResponse `json:"room,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.BookingID = model.Code
	b.RoomID = model.RoomID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.GuestPhone = model.GuestPhone
	b.CheckIn = model.CheckIn.Format(constant.DateFormat)
	b.CheckOut = model.CheckOut.Format(constant.DateFormat)
	b.TotalPrice = model.TotalPrice
	b.Status = model.Status
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Data       []BookingResponse `json:"data"`
	Pagination gDto.Pagination   `json:"pagination"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, params gDto.QueryParams, total int) {
	g.Data = make([]BookingResponse, 0, len(models))

	for _, booking := range models {
		res := BookingResponse{}
		res.FromModel(booking)

		g.Data = append(g.Data, res)
	}

	g.Pagination.FromQuery(params, total)
}

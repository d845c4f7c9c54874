package dto

import (
	"lodge/internal/domains/room/model"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Title         string   `json:"title"         validate:"required,max=200"`
	Description   string   `json:"description"   validate:"omitempty,max=2000"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,gt=0"`
	MaxGuests     int      `json:"maxGuests"     validate:"required,gte=1"`
	Images        []string `json:"images"        validate:"omitempty,dive,max=500"`
	Amenities     []string `json:"amenities"     validate:"omitempty,dive,max=100"`
	Status        string   `json:"status"        validate:"omitempty,oneof=available unavailable"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:            uuid.NewString(),
		Title:         c.Title,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		MaxGuests:     c.MaxGuests,
		Images:        pq.StringArray(c.Images),
		Amenities:     pq.StringArray(c.Amenities),
		Status:        status,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
			CreatedBy: user,
			UpdatedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Title         string   `db:"title"           json:"title"         validate:"omitempty,max=200"`
	Description   string   `db:"description"     json:"description"   validate:"omitempty,max=2000"`
	PricePerNight float64  `db:"price_per_night" json:"pricePerNight" validate:"omitempty,gt=0"`
	MaxGuests     int      `db:"max_guests"      json:"maxGuests"     validate:"omitempty,gte=1"`
	Images        []string `json:"images"        validate:"omitempty,dive,max=500"`
	Amenities     []string `json:"amenities"     validate:"omitempty,dive,max=100"`
	Status        string   `db:"status"          json:"status"        validate:"omitempty,oneof=available unavailable"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxGuests     int      `json:"maxGuests"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Status        string   `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.Images = model.Images
	r.Amenities = model.Amenities
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)

	if r.Images == nil {
		r.Images = []string{}
	}

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

type GetRoomsResponse struct {
	Data       []RoomResponse  `json:"data"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (g *GetRoomsResponse) FromModels(models []model.Room, params gDto.QueryParams, total int) {
	g.Data = make([]RoomResponse, 0, len(models))

	for _, room := range models {
		res := RoomResponse{}
		res.FromModel(room)

		g.Data = append(g.Data, res)
	}

	g.Pagination.FromQuery(params, total)
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

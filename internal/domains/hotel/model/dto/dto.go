package dto

import (
	"lodge/internal/domains/hotel/model"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SaveHotelRequest struct {
	Name         string   `json:"name"         validate:"required,max=200"`
	Description  string   `json:"description"  validate:"omitempty,max=2000"`
	Address      string   `json:"address"      validate:"required,max=500"`
	City         string   `json:"city"         validate:"omitempty,max=100"`
	State        string   `json:"state"        validate:"omitempty,max=100"`
	ZipCode      string   `json:"zipCode"      validate:"omitempty,max=20"`
	Country      string   `json:"country"      validate:"omitempty,max=100"`
	Phone        string   `json:"phone"        validate:"omitempty,max=32"`
	Email        string   `json:"email"        validate:"required,email"`
	CheckInTime  string   `json:"checkInTime"  validate:"omitempty,max=10"`
	CheckOutTime string   `json:"checkOutTime" validate:"omitempty,max=10"`
	Policies     []string `json:"policies"     validate:"omitempty,dive,max=500"`
	Amenities    []string `json:"amenities"    validate:"omitempty,dive,max=100"`
}

func (r *SaveHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Country:      r.Country,
		Phone:        r.Phone,
		Email:        r.Email,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		Policies:     pq.StringArray(r.Policies),
		Amenities:    pq.StringArray(r.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
			CreatedBy: user,
			UpdatedBy: user,
		},
	}
}

type HotelResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Country      string   `json:"country"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	CheckInTime  string   `json:"checkInTime"`
	CheckOutTime string   `json:"checkOutTime"`
	Policies     []string `json:"policies"`
	Amenities    []string `json:"amenities"`
	gDto.Metadata
}

func (h *HotelResponse) FromModel(model model.Hotel) {
	h.ID = model.ID
	h.Name = model.Name
	h.Description = model.Description
	h.Address = model.Address
	h.City = model.City
	h.State = model.State
	h.ZipCode = model.ZipCode
	h.Country = model.Country
	h.Phone = model.Phone
	h.Email = model.Email
	h.CheckInTime = model.CheckInTime
	h.CheckOutTime = model.CheckOutTime
	h.Policies = model.Policies
	h.Amenities = model.Amenities
	h.Metadata.FromModel(model.Metadata)

	if h.Policies == nil {
		h.Policies = []string{}
	}

	if h.Amenities == nil {
		h.Amenities = []string{}
	}
}

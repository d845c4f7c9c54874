package dto

import (
	"lodge/internal/domains/user/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Name     string `json:"name"     validate:"required,max=200"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin superadmin"`
}

func (c *CreateAdminRequest) ToModel(username, hashedPassword string) model.User {
	role := c.Role
	if role == "" {
		role = constant.RoleAdmin
	}

	return model.User{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Password: hashedPassword,
		Role:     role,
		Status:   model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
			CreatedBy: username,
			UpdatedBy: username,
		},
	}
}

type UpdateAdminStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=active suspended"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Name = model.Name
	u.Email = model.Email
	u.Role = model.Role
	u.Status = model.Status
	u.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Data       []UserResponse  `json:"data"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (g *GetUsersResponse) FromModels(models []model.User, params gDto.QueryParams, total int) {
	g.Data = make([]UserResponse, 0, len(models))

	for _, user := range models {
		res := UserResponse{}
		res.FromModel(user)

		g.Data = append(g.Data, res)
	}

	g.Pagination.FromQuery(params, total)
}

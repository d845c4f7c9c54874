package superadmin

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/user/model"
	"lodge/internal/domains/user/model/dto"
	"lodge/internal/domains/user/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/superadmin", func(routerGroup chi.Router) {
		routerGroup.Post("/create-admin", handler.CreateAdmin)
		routerGroup.Get("/admins", handler.GetAdmins)
		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Patch("/{id}/status", handler.UpdateAdminStatus)
			adminGroup.Delete("/{id}", handler.DeleteAdmin)
		})
	})
}

// CreateAdmin provisions a new admin account.
// @Summary Create an admin
// @Description Create a new admin or superadmin account.
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} dto.UserResponse "Created admin"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/superadmin/create-admin [post]
// @Security BearerAuth
func (handler *Handler) CreateAdmin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdmin")
	defer scope.End()

	req := dto.CreateAdminRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	admin, err := handler.service.CreateAdmin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Admin created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, admin)
}

// GetAdmins lists admin accounts.
// @Summary Get all admins
// @Description Retrieve all admin accounts with optional filtering and pagination.
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role (admin, superadmin)"
// @Param status query string false "Filter by status (active, suspended)"
// @Success 200 {object} dto.GetUsersResponse "List of admins"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/superadmin/admins [get]
// @Security BearerAuth
func (handler *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdmins")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	role := r.URL.Query().Get(model.FieldRole)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	admins, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admins retrieved successfully")

	response.WithJSON(w, http.StatusOK, admins)
}

// UpdateAdminStatus activates or suspends an admin account.
// @Summary Update an admin's status
// @Description Activate or suspend an admin account.
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body dto.UpdateAdminStatusRequest true "Update Admin Status Request"
// @Success 200 {object} response.Message "Admin status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/superadmin/admin/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAdminStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAdminStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAdminStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Admin status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Admin status updated successfully")
}

// DeleteAdmin removes an admin account.
// @Summary Delete an admin
// @Description Permanently remove an admin account.
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Message "Admin deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/superadmin/admin/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAdmin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete admin")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Admin deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Admin deleted successfully")
}

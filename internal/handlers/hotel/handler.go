package hotel

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotel", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotel)
		routerGroup.Post("/", handler.SaveHotel)
		routerGroup.Put("/", handler.SaveHotel)
	})
}

// GetHotel retrieves the hotel configuration.
// @Summary Get the hotel
// @Description Retrieve the singleton hotel configuration record.
// @Tags Hotel
// @Accept json
// @Produce json
// @Success 200 {object} dto.HotelResponse "Hotel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel [get]
func (handler *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	hotel, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}

// SaveHotel creates or replaces the hotel configuration.
// @Summary Save the hotel
// @Description Create the hotel record the first time, update it afterwards.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.SaveHotelRequest true "Save Hotel Request"
// @Success 200 {object} dto.HotelResponse "Saved hotel"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel [post]
// @Router /v1/hotel [put]
// @Security BearerAuth
func (handler *Handler) SaveHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveHotel")
	defer scope.End()

	req := dto.SaveHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hotel, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save hotel")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel saved successfully by user " + user)

	response.WithJSON(w, http.StatusOK, hotel)
}

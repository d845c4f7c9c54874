package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	"lodge/internal/domains/booking/schedule"
	roomModel "lodge/internal/domains/room/model"
	roomDto "lodge/internal/domains/room/model/dto"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheStatsPrefix   = "stats"

	topicBookingEvents = "booking-events"

	eventBookingCreated       = "booking.created"
	eventBookingStatusChanged = "booking.status_changed"
	eventBookingDeleted       = "booking.deleted"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Lookup(ctx context.Context, email, bookingID string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (roomDto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	board    *schedule.Board
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	s := &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}

	s.board = schedule.NewBoard(s.loadActiveEntries)

	return s
}

// loadActiveEntries rebuilds a room's index from its persisted pending and
// confirmed bookings.
func (s *serviceImpl) loadActiveEntries(ctx context.Context, roomID string) ([]schedule.Entry, error) {
	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, activeFilter(roomID),
		model.FieldID, model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to load active bookings for room: %w", err)
	}

	entries := make([]schedule.Entry, 0, len(bookings))
	for _, booking := range bookings {
		entries = append(entries, schedule.Entry{
			Start:     booking.CheckIn,
			End:       booking.CheckOut,
			BookingID: booking.ID,
			Status:    booking.Status,
		})
	}

	return entries, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	checkIn, err := schedule.ParseDate(req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	checkOut, err := schedule.ParseDate(req.CheckOut)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status == roomModel.StatusUnavailable {
		return res, failure.Conflict("room unavailable") // nolint:wrapcheck
	}

	totalPrice := room.PricePerNight * float64(schedule.Nights(checkIn, checkOut))
	booking := req.ToModel(user, checkIn, checkOut, totalPrice)

	// The overlap check and both writes happen under the room's lock so a
	// concurrent request for the same dates cannot slip between them.
	err = s.board.WithRoom(ctx, booking.RoomID, func(ix *schedule.Index) error {
		if err := ix.Insert(booking.CheckIn, booking.CheckOut, booking.ID, booking.Status); err != nil {
			return err
		}

		if err := s.repo.Insert(ctx, booking); err != nil {
			ix.Remove(booking.ID)

			return fmt.Errorf("failed to persist booking: %w", err)
		}

		return nil
	})

	if errors.Is(err, schedule.ErrConflict) {
		return res, failure.Conflict("room is already booked for the selected dates") // nolint:wrapcheck
	}

	if errors.Is(err, schedule.ErrInvalidRange) {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.afterBookingChange(ctx, eventBookingCreated, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, req, total)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)
	s.attachRoom(ctx, &res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Lookup is the public guest read. It matches on both the booking code and the
// guest email so that a leaked code alone cannot reveal guest data.
func (s *serviceImpl) Lookup(ctx context.Context, email, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, lookupFilter(email, bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up booking")

		return res, fmt.Errorf("failed to look up booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)
	s.attachRoom(ctx, &res)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// The first read only locates the room so the right lock can be taken.
	// Everything the transition depends on is re-read under that lock: a
	// stale status check taken outside it would let a cancel and a confirm
	// that both saw pending commit back to back.
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for status update")

		return res, fmt.Errorf("failed to get booking for status update: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	err = s.board.WithRoom(ctx, booking.RoomID, func(ix *schedule.Index) error {
		current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking for status update: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if !schedule.CanTransition(current.Status, req.Status) {
			return failure.BadRequestFromString(
				fmt.Sprintf("cannot transition booking from %s to %s", current.Status, req.Status)) // nolint:wrapcheck
		}

		if req.Status != schedule.StatusCancelled {
			// The range is unchanged, so the in-place status flip cannot
			// introduce an overlap. A missing entry means the store and the
			// schedule disagree; flipping the store anyway would leave the
			// dates open to double-booking.
			if err := ix.UpdateStatus(id, req.Status); err != nil {
				return fmt.Errorf("booking missing from room schedule: %w", err)
			}
		}

		updatedFields := shared.TransformFields(req, user)
		if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			if req.Status != schedule.StatusCancelled {
				if rbErr := ix.UpdateStatus(id, current.Status); rbErr != nil {
					log.Error().Err(rbErr).Str("bookingID", id).Msg("failed to restore schedule entry after update failure")
				}
			}

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if req.Status == schedule.StatusCancelled {
			ix.Remove(id)
		}

		booking = current

		return nil
	})

	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, err // nolint:wrapcheck
	}

	booking.Status = req.Status
	res.FromModel(booking)

	s.afterBookingChange(ctx, eventBookingStatusChanged, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	// As in UpdateStatus, the first read locates the room and the record is
	// re-read under the room's lock before anything is removed.
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for delete")

		return fmt.Errorf("failed to get booking for delete: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	err = s.board.WithRoom(ctx, booking.RoomID, func(ix *schedule.Index) error {
		current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking for delete: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		ix.Remove(id)
		booking = current

		return nil
	})

	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err // nolint:wrapcheck
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	s.afterBookingChange(ctx, eventBookingDeleted, res)

	return nil
}

// CheckAvailability is idempotent and side-effect-free so the public endpoint
// can poll it freely.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (res roomDto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := schedule.ParseDate(checkIn)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	end, err := schedule.ParseDate(checkOut)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if !end.After(start) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for availability check")

		return res, fmt.Errorf("failed to get room for availability check: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status == roomModel.StatusUnavailable {
		return roomDto.AvailabilityResponse{Available: false, Message: "room unavailable"}, nil
	}

	overlaps, err := s.board.QueryOverlap(ctx, roomID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to query room schedule")

		return res, fmt.Errorf("failed to query room schedule: %w", err)
	}

	if overlaps {
		return roomDto.AvailabilityResponse{Available: false, Message: "room is already booked for the selected dates"}, nil
	}

	return roomDto.AvailabilityResponse{Available: true, Message: "room is available for the selected dates"}, nil
}

func (s *serviceImpl) attachRoom(ctx context.Context, res *dto.BookingResponse) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(res.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil || room.ID == constant.Empty {
		return
	}

	roomRes := roomDto.RoomResponse{}
	roomRes.FromModel(room)
	res.Room = &roomRes
}

// afterBookingChange invalidates derived caches and publishes the booking
// event off the request path.
func (s *serviceImpl) afterBookingChange(ctx context.Context, event string, payload dto.BookingResponse) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, payload.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsPrefix)

		if err := s.kafka.SendMessages(c, topicBookingEvents, kafka.Message{Key: event, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func activeFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    schedule.StatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	}
}

// lookupFilter compares the guest email case-insensitively; emails are stored
// lowercased and the caller's input is folded to match.
func lookupFilter(email, code string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Value:    code,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldGuestEmail,
				Value:    strings.ToLower(email),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

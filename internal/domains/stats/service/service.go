package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"

	"lodge/config"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingDto "lodge/internal/domains/booking/model/dto"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/booking/schedule"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/internal/domains/stats/model/dto"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboardStats = "stats:dashboard"

	monthLayout     = "2006-01"
	recentBookingsN = 5
)

type Stats interface {
	Dashboard(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Dashboard aggregates the whole booking and room sets. Revenue counts every
// non-cancelled booking; an empty data set yields all-zero figures.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboardStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboardStats).Msg("cache hit for dashboard stats")

		return res, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for stats")

		return res, fmt.Errorf("failed to get bookings for stats: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for stats")

		return res, fmt.Errorf("failed to get rooms for stats: %w", err)
	}

	res = aggregate(bookings, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboardStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

func aggregate(bookings []bookingModel.Booking, rooms []roomModel.Room) dto.DashboardStatsResponse {
	res := dto.DashboardStatsResponse{
		TotalRooms:     len(rooms),
		TotalBookings:  len(bookings),
		MonthlyRevenue: []dto.MonthlyRevenue{},
		RecentBookings: []bookingDto.BookingResponse{},
	}

	for _, room := range rooms {
		if room.Status == roomModel.StatusAvailable {
			res.AvailableRooms++
		} else {
			res.UnavailableRooms++
		}
	}

	byMonth := map[string]float64{}

	for _, booking := range bookings {
		switch booking.Status {
		case schedule.StatusPending:
			res.PendingBookings++
		case schedule.StatusConfirmed:
			res.ConfirmedBookings++
		case schedule.StatusCancelled:
			res.CancelledBookings++
		}

		if booking.Status == schedule.StatusCancelled {
			continue
		}

		res.TotalRevenue += booking.TotalPrice
		byMonth[booking.CreatedAt.Format(monthLayout)] += booking.TotalPrice
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}

	sort.Strings(months)

	for _, month := range months {
		res.MonthlyRevenue = append(res.MonthlyRevenue, dto.MonthlyRevenue{
			Month:   month,
			Revenue: byMonth[month],
		})
	}

	recent := make([]bookingModel.Booking, len(bookings))
	copy(recent, bookings)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if len(recent) > recentBookingsN {
		recent = recent[:recentBookingsN]
	}

	for _, booking := range recent {
		b := bookingDto.BookingResponse{}
		b.FromModel(booking)

		res.RecentBookings = append(res.RecentBookings, b)
	}

	return res
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/hotel/model"
	"lodge/internal/domains/hotel/model/dto"
	"lodge/internal/domains/hotel/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheGetHotel = "hotel:get"

type Hotel interface {
	Get(ctx context.Context) (dto.HotelResponse, error)
	Save(ctx context.Context, req dto.SaveHotelRequest) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetHotel, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetHotel).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not configured") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHotel, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

// Save creates the property record the first time and updates it afterwards.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel for save")

		return res, fmt.Errorf("failed to get hotel for save: %w", err)
	}

	if current.ID == constant.Empty {
		hotel := req.ToModel(user)

		if err = s.repo.Insert(ctx, hotel); err != nil {
			log.Error().Err(err).Msg("failed to create hotel")

			return res, fmt.Errorf("failed to create hotel: %w", err)
		}

		res.FromModel(hotel)
	} else {
		updatedFields := updateFields(req, user)

		filter := shared.FilterByID(current.ID, model.FieldID, model.TableName)
		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update hotel")

			return res, fmt.Errorf("failed to update hotel: %w", err)
		}

		updated, err := s.repo.Get(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to reload hotel")

			return res, fmt.Errorf("failed to reload hotel: %w", err)
		}

		res.FromModel(updated)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetHotel); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}
	}()

	return res, nil
}

// updateFields maps the full save payload onto columns; the singleton record
// is always replaced wholesale, empty strings included.
func updateFields(req dto.SaveHotelRequest, user string) map[string]any {
	fields := map[string]any{
		model.FieldName:         req.Name,
		model.FieldDescription:  req.Description,
		model.FieldAddress:      req.Address,
		model.FieldCity:         req.City,
		model.FieldState:        req.State,
		model.FieldZipCode:      req.ZipCode,
		model.FieldCountry:      req.Country,
		model.FieldPhone:        req.Phone,
		model.FieldEmail:        req.Email,
		model.FieldCheckInTime:  req.CheckInTime,
		model.FieldCheckOutTime: req.CheckOutTime,
		model.FieldPolicies:     pq.StringArray(req.Policies),
		model.FieldAmenities:    pq.StringArray(req.Amenities),
	}

	base := shared.TransformFields(struct{}{}, user)
	for k, v := range base {
		fields[k] = v
	}

	return fields
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"shiftmaster/internal/auth"
	"shiftmaster/internal/cache"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

const (
	rolesCacheKey     = "config:roles"
	timeSlotsCacheKey = "config:times"

	// DefaultConfigCacheTTL applies when no TTL is configured.
	DefaultConfigCacheTTL = 30 * time.Minute
)

// CreateRoleInput is the payload for adding a role.
type CreateRoleInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateTimeSlotInput is the payload for adding a time slot.
type CreateTimeSlotInput struct {
	Label     string `json:"label"`
	TimeRange string `json:"time_range"`
}

// ConfigService manages roles and time slots. Listings are cached in Redis and
// invalidated on every change.
type ConfigService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	CreateRole(ctx context.Context, actor auth.Identity, in CreateRoleInput) (*model.Role, error)
	DeleteRole(ctx context.Context, actor auth.Identity, id uint) error

	ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error)
	CreateTimeSlot(ctx context.Context, actor auth.Identity, in CreateTimeSlotInput) (*model.TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, actor auth.Identity, id uint) error
}

type configService struct {
	roles     repository.RoleRepository
	timeSlots repository.TimeSlotRepository
	audit     AuditService
	cache     *cache.Client
	ttl       time.Duration
	group     singleflight.Group
}

// NewConfigService creates a new config service. A nil cache disables caching.
func NewConfigService(roles repository.RoleRepository, timeSlots repository.TimeSlotRepository, audit AuditService, cache *cache.Client, ttl time.Duration) ConfigService {
	if ttl <= 0 {
		ttl = DefaultConfigCacheTTL
	}
	return &configService{
		roles:     roles,
		timeSlots: timeSlots,
		audit:     audit,
		cache:     cache,
		ttl:       ttl,
	}
}

// cachedList serves key from the cache, loading it once per key on a miss
// no matter how many requests are waiting.
func cachedList[T any](ctx context.Context, s *configService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Shared by every waiter, so one caller going away must not cancel it.
		loadCtx := context.WithoutCancel(ctx)
		items, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(items); err == nil {
			_ = s.cache.Set(loadCtx, key, payload, s.ttl)
		}
		return items, nil
	})
	if err != nil {
		return nil, storeErr("load "+key, err)
	}
	return v.([]T), nil
}

func (s *configService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return cachedList(ctx, s, rolesCacheKey, s.roles.List)
}

func (s *configService) CreateRole(ctx context.Context, actor auth.Identity, in CreateRoleInput) (*model.Role, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, missingField("name")
	}
	if strings.TrimSpace(in.Color) == "" {
		return nil, missingField("color")
	}

	role := &model.Role{Name: name, Color: strings.TrimSpace(in.Color)}
	if err := s.roles.Create(ctx, role); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrRoleExists
		}
		return nil, storeErr("create role", err)
	}
	_ = s.cache.Delete(ctx, rolesCacheKey)

	s.audit.Record(ctx, actor.Username, model.ActionConfigChanged, fmt.Sprintf("Added role: %s", role.Name))
	return role, nil
}

// DeleteRole removes a role that no assignment references.
func (s *configService) DeleteRole(ctx context.Context, actor auth.Identity, id uint) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return storeErr("find role", err)
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return apperrors.ErrRoleInUse
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrRoleNotFound
		default:
			return storeErr("delete role", err)
		}
	}
	_ = s.cache.Delete(ctx, rolesCacheKey)

	s.audit.Record(ctx, actor.Username, model.ActionConfigChanged, fmt.Sprintf("Deleted role: %s", role.Name))
	return nil
}

func (s *configService) ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return cachedList(ctx, s, timeSlotsCacheKey, s.timeSlots.List)
}

func (s *configService) CreateTimeSlot(ctx context.Context, actor auth.Identity, in CreateTimeSlotInput) (*model.TimeSlot, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, missingField("label")
	}
	if strings.TrimSpace(in.TimeRange) == "" {
		return nil, missingField("time_range")
	}

	slot := &model.TimeSlot{Label: label, TimeRange: strings.TrimSpace(in.TimeRange)}
	if err := s.timeSlots.Create(ctx, slot); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrTimeSlotExists
		}
		return nil, storeErr("create time slot", err)
	}
	_ = s.cache.Delete(ctx, timeSlotsCacheKey)

	s.audit.Record(ctx, actor.Username, model.ActionConfigChanged, fmt.Sprintf("Added time slot: %s", slot.Label))
	return slot, nil
}

// DeleteTimeSlot removes a time slot that no assignment references.
func (s *configService) DeleteTimeSlot(ctx context.Context, actor auth.Identity, id uint) error {
	slot, err := s.timeSlots.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTimeSlotNotFound
		}
		return storeErr("find time slot", err)
	}

	if err := s.timeSlots.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return apperrors.ErrTimeSlotInUse
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrTimeSlotNotFound
		default:
			return storeErr("delete time slot", err)
		}
	}
	_ = s.cache.Delete(ctx, timeSlotsCacheKey)

	s.audit.Record(ctx, actor.Username, model.ActionConfigChanged, fmt.Sprintf("Deleted time slot: %s", slot.Label))
	return nil
}

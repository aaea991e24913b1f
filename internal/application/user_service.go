package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/domain/access"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	repo "github.com/pawcare/pawcare-api/internal/domain/repository"
	"github.com/pawcare/pawcare-api/pkg/helpers"
)

const (
	vetCacheKey = "cache:veterinarians"
	vetCacheTTL = 5 * time.Minute
)

// UserService exposes the two listings: veterinarians for booking (visible
// to any authenticated identity, cached briefly) and the full roster
// (admin only).
type UserService struct {
	Users  repo.UserRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Redis: rdb, Logger: logger}
}

// Veterinarians lists bookable vets sorted by name. The listing changes
// rarely, so it is cached in Redis; cache failures fall through to the
// database.
func (s *UserService) Veterinarians(ctx context.Context) ([]entity.User, error) {
	if s.Redis != nil {
		var cached []entity.User
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, vetCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	vets, err := s.Users.ListByRole(ctx, entity.RoleVeterinarian)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, vetCacheKey, vets, vetCacheTTL); err != nil {
			s.Logger.WithError(err).Warn("cache veterinarians failed")
		}
	}
	return vets, nil
}

// All returns every user, newest first. Admin only.
func (s *UserService) All(ctx context.Context, actor *entity.User) ([]entity.User, error) {
	if !access.CanListUsers(actor) {
		return nil, ErrAccessDenied
	}
	return s.Users.List(ctx)
}

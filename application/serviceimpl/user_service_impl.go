package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	rediscache "taskboard/infrastructure/redis"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

const (
	userDirectoryCacheKey = "users:directory"
	userDirectoryCacheTTL = 60 * time.Second
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	cache     *rediscache.Client // nil when Redis is not configured
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(userRepo repositories.UserRepository, cache *rediscache.Client, jwtSecret string, tokenTTL time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		cache:     cache,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existing, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return nil, services.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	s.invalidateDirectory(ctx)

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed, email not found", "email", req.Email)
		return "", nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed, wrong password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

// ListUsers serves the assignee-picker directory, cached briefly in Redis when
// it is configured.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	if s.cache != nil {
		var cached []*models.User
		if err := s.cache.GetJSON(ctx, userDirectoryCacheKey, &cached); err == nil {
			return cached, nil
		} else if err != rediscache.Nil {
			logger.WarnContext(ctx, "User directory cache read failed", "error", err)
		}
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, userDirectoryCacheKey, users, userDirectoryCacheTTL); err != nil {
			logger.WarnContext(ctx, "User directory cache write failed", "error", err)
		}
	}

	return users, nil
}

func (s *UserServiceImpl) invalidateDirectory(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, userDirectoryCacheKey); err != nil {
		logger.WarnContext(ctx, "User directory cache invalidation failed", "error", err)
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"viralpost-be/internal/config"
	"viralpost-be/internal/dto"
	"viralpost-be/internal/entity"
	"viralpost-be/internal/pkg/logger"
	"viralpost-be/internal/pkg/mailer"
	"viralpost-be/internal/pkg/serverutils"
	"viralpost-be/internal/repository/specification"
	"viralpost-be/internal/repository/unitofwork"
	"viralpost-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	bus          *events.Bus
	cfg          config.AuthConfig
	logger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	bus *events.Bus,
	cfg config.AuthConfig,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		bus:          bus,
		cfg:          cfg,
		logger:       log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", serverutils.ErrInvalidRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome email is auxiliary; failures are logged, never surfaced.
	go func() {
		if mailErr := s.emailService.SendWelcome(user.Email, user.FullName); mailErr != nil {
			s.logger.Warn("AuthService", "Failed to send welcome email", map[string]interface{}{
				"email": user.Email,
				"error": mailErr.Error(),
			})
		}
	}()

	if s.bus != nil {
		evt := events.BaseEvent{
			Type: events.TypeUserRegistered,
			Data: map[string]interface{}{
				"user_id": user.Id.String(),
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if pubErr := s.bus.Publish(ctx, evt); pubErr != nil {
			s.logger.Warn("AuthService", "Failed to publish USER_REGISTERED event", map[string]interface{}{
				"error": pubErr.Error(),
			})
		}
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid credentials", serverutils.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", serverutils.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.TokenTTLHour) * time.Hour)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User: dto.UserInfo{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}

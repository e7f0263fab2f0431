package farmer

import (
	"context"
	"errors"
	"strings"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/internal/utils/mailing"
	"barnmonitor-backend/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the email is unknown so a failed login
// costs the same whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("barnmonitor"), bcrypt.DefaultCost)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResponse, error)
		CheckSession(ctx context.Context, farmerID uint) (domain.FarmerResponse, error)
		Logout(ctx context.Context, token string) error
	}

	authService struct {
		farmerRepository FarmerRepository
		sessionService   session.SessionService
		mailer           mailing.Mailer
		appURL           string
		logger           *zap.Logger
	}
)

// NewAuthService wires the auth flows. mailer may be nil, in which case no
// welcome email is sent.
func NewAuthService(
	farmerRepository FarmerRepository,
	sessionService session.SessionService,
	mailer mailing.Mailer,
	appURL string,
	logger *zap.Logger,
) AuthService {
	return &authService{
		farmerRepository: farmerRepository,
		sessionService:   sessionService,
		mailer:           mailer,
		appURL:           appURL,
		logger:           logger,
	}
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.NewInternal(err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(farmer.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.startSession(ctx, farmer)
}

func (s *authService) Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResponse, error) {
	address := req.Address
	farmer := entities.Farmer{
		Name:    req.Name,
		Email:   normalizeEmail(req.Email),
		Phone:   req.Phone,
		Address: &address,
	}
	if err := domain.ValidateFarmer(&farmer); err != nil {
		return domain.AuthResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return domain.AuthResponse{}, err
	}

	_, err := s.farmerRepository.GetFarmerByEmail(ctx, farmer.Email)
	if err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, domain.NewInternal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, domain.NewInternal(err)
	}
	farmer.Password = string(hash)

	if err := s.farmerRepository.CreateFarmer(ctx, &farmer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.AuthResponse{}, utils.TranslateStorageError(err)
	}

	s.sendWelcome(&farmer)
	return s.startSession(ctx, &farmer)
}

func (s *authService) CheckSession(ctx context.Context, farmerID uint) (domain.FarmerResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FarmerResponse{}, domain.ErrNotAuthorized
		}
		return domain.FarmerResponse{}, domain.NewInternal(err)
	}
	return domain.NewFarmerResponse(farmer), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionService.End(ctx, token)
}

func (s *authService) startSession(ctx context.Context, farmer *entities.Farmer) (domain.AuthResponse, error) {
	token, expiresAt, err := s.sessionService.Start(ctx, farmer.ID)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{
		Farmer:    domain.NewFarmerResponse(farmer),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) sendWelcome(farmer *entities.Farmer) {
	if s.mailer == nil {
		return
	}
	err := s.mailer.SendMail(farmer.Email, mailing.WelcomeSubject(), mailing.WelcomeBody(farmer.Name, s.appURL))
	if err != nil {
		s.logger.Warn("failed to send welcome email", zap.Uint("farmer_id", farmer.ID), zap.Error(err))
	}
}

// normalizeEmail is applied to every email before it is stored or looked up.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

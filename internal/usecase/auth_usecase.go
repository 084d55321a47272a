package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

const (
	DefaultMemberName = "EcoSwap Member" // login paytida ism so'ralmaydi
)

// AuthUseCase soxta (mock) autentifikatsiya: parol tekshirilmaydi, faqat sessiya yoziladi
type AuthUseCase interface {
	// Login tizimga kirish
	Login(ctx context.Context, email, password string) (entity.Session, error)

	// Register ro'yxatdan o'tish (ism va manzil majburiy)
	Register(ctx context.Context, email, name, location string) (entity.Session, error)

	// Logout tizimdan chiqish
	Logout(ctx context.Context) error

	// Current joriy sessiya, yo'q bo'lsa nil
	Current(ctx context.Context) (*entity.Session, error)
}

type authUseCase struct {
	sessionRepo repository.SessionRepository
	stats       StatsUseCase
	presenter   Presenter
	log         *logger.Logger
	now         func() time.Time
}

// NewAuthUseCase yangi AuthUseCase yaratish
func NewAuthUseCase(
	sessionRepo repository.SessionRepository,
	stats StatsUseCase,
	presenter Presenter,
	log *logger.Logger,
) AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &authUseCase{
		sessionRepo: sessionRepo,
		stats:       stats,
		presenter:   presenterOrNop(presenter),
		log:         log,
		now:         time.Now,
	}
}

// Login tizimga kirish
func (u *authUseCase) Login(ctx context.Context, email, password string) (entity.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		notify(ctx, u.presenter, entity.LevelError, "Please enter your email")
		return entity.Session{}, fmt.Errorf("%w: email is required", entity.ErrValidation)
	}

	session := entity.Session{
		Email:  email,
		Name:   DefaultMemberName,
		Joined: u.now().UTC(),
	}
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		return entity.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	u.log.Info("user logged in", "email", email)
	notify(ctx, u.presenter, entity.LevelSuccess, "Successfully logged in!")
	return session, nil
}

// Register ro'yxatdan o'tish
func (u *authUseCase) Register(ctx context.Context, email, name, location string) (entity.Session, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	if email == "" || name == "" || location == "" {
		notify(ctx, u.presenter, entity.LevelError, "Please fill all required fields")
		return entity.Session{}, fmt.Errorf("%w: email, name and location are required", entity.ErrValidation)
	}

	session := entity.Session{
		Email:    email,
		Name:     name,
		Location: location,
		Joined:   u.now().UTC(),
	}
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		return entity.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	// A'zolar sonini oshirish
	if u.stats != nil {
		if _, err := u.stats.IncrementMembers(ctx); err != nil {
			u.log.Warn("failed to bump members counter", "error", err)
		}
	}

	u.log.Info("user registered", "email", email, "location", location)
	notify(ctx, u.presenter, entity.LevelSuccess, fmt.Sprintf("Welcome %s! Your account has been created.", name))
	return session, nil
}

// Logout tizimdan chiqish
func (u *authUseCase) Logout(ctx context.Context) error {
	if err := u.sessionRepo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	notify(ctx, u.presenter, entity.LevelInfo, "Successfully logged out")
	return nil
}

// Current joriy sessiya
func (u *authUseCase) Current(ctx context.Context) (*entity.Session, error) {
	return u.sessionRepo.Get(ctx)
}

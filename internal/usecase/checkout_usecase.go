package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

// CheckoutUseCase savatni band qilish (reservation)
type CheckoutUseCase interface {
	// Checkout shartlarni tekshirib savatni tozalaydi va band qilingan sarlavhalarni qaytaradi
	Checkout(ctx context.Context) (entity.Reservation, error)
}

type checkoutUseCase struct {
	cart        CartUseCase
	sessionRepo repository.SessionRepository
	stats       StatsUseCase
	presenter   Presenter
	log         *logger.Logger
}

// NewCheckoutUseCase yangi CheckoutUseCase yaratish
func NewCheckoutUseCase(
	cart CartUseCase,
	sessionRepo repository.SessionRepository,
	stats StatsUseCase,
	presenter Presenter,
	log *logger.Logger,
) CheckoutUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &checkoutUseCase{
		cart:        cart,
		sessionRepo: sessionRepo,
		stats:       stats,
		presenter:   presenterOrNop(presenter),
		log:         log,
	}
}

// Checkout savatni band qilish
func (u *checkoutUseCase) Checkout(ctx context.Context) (entity.Reservation, error) {
	entries, err := u.cart.List(ctx)
	if err != nil {
		return entity.Reservation{}, err
	}
	if len(entries) == 0 {
		notify(ctx, u.presenter, entity.LevelError, "Your cart is empty")
		return entity.Reservation{}, entity.ErrEmptyCart
	}

	session, err := u.sessionRepo.Get(ctx)
	if err != nil {
		return entity.Reservation{}, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		notify(ctx, u.presenter, entity.LevelError, "Please login to reserve items")
		return entity.Reservation{}, entity.ErrUnauthenticated
	}

	// Ro'yxat va tozalash bitta amalda: oradagi qo'shimchalar yo'qolmaydi
	taken, err := u.cart.Take(ctx)
	if err != nil {
		return entity.Reservation{}, err
	}
	if len(taken) == 0 {
		notify(ctx, u.presenter, entity.LevelError, "Your cart is empty")
		return entity.Reservation{}, entity.ErrEmptyCart
	}

	reservation := entity.Reservation{
		ID:        uuid.New().String(),
		Titles:    make([]string, 0, len(taken)),
		Quantity:  Project(taken).Quantity,
		CreatedAt: time.Now(),
	}
	for _, e := range taken {
		reservation.Titles = append(reservation.Titles, e.Title)
	}

	if u.stats != nil {
		if _, err := u.stats.IncrementExchanges(ctx); err != nil {
			u.log.Warn("failed to bump exchanges counter", "error", err)
		}
	}

	u.log.Info("checkout completed", "reservation_id", reservation.ID, "entries", len(taken), "email", session.Email)
	notify(ctx, u.presenter, entity.LevelSuccess, fmt.Sprintf(
		"Reservation complete for: %s. Item owners will contact you.", strings.Join(reservation.Titles, ", ")))

	return reservation, nil
}

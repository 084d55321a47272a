package usecase

import (
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

// Shopper bitta foydalanuvchining savat, checkout va auth usecaselari
type Shopper struct {
	Cart     CartUseCase
	Checkout CheckoutUseCase
	Auth     AuthUseCase
}

// NewShopper foydalanuvchi repositorylari ustida usecaselarni yig'ish
func NewShopper(
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
	sessionRepo repository.SessionRepository,
	stats StatsUseCase,
	presenter Presenter,
	log *logger.Logger,
) *Shopper {
	cart := NewCartUseCase(catalogRepo, cartRepo, presenter, log)
	return &Shopper{
		Cart:     cart,
		Checkout: NewCheckoutUseCase(cart, sessionRepo, stats, presenter, log),
		Auth:     NewAuthUseCase(sessionRepo, stats, presenter, log),
	}
}

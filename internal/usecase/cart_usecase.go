package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

// CartUseCase savat bilan bog'liq business logic.
// Har bir o'zgartiruvchi amal butun savatni saqlab bo'lgandan keyin qaytadi.
type CartUseCase interface {
	// AddItem e'lonni savatga qo'shish (bor bo'lsa miqdor +1)
	AddItem(ctx context.Context, itemID int) (entity.CartEntry, error)

	// ChangeQuantity miqdorni delta ga o'zgartirish. 1 dan kam bo'lsa yozuv o'chadi va nil qaytadi
	ChangeQuantity(ctx context.Context, itemID int, delta int) (*entity.CartEntry, error)

	// RemoveItem yozuvni o'chirish (yo'q bo'lsa xato emas)
	RemoveItem(ctx context.Context, itemID int) error

	// Clear savatni tozalash
	Clear(ctx context.Context) error

	// Take savatdagi yozuvlarni olib, savatni bitta amalda tozalash
	Take(ctx context.Context) ([]entity.CartEntry, error)

	// TotalQuantity barcha miqdorlar yig'indisi
	TotalQuantity(ctx context.Context) (int, error)

	// List savat yozuvlari (qo'shilish tartibida)
	List(ctx context.Context) ([]entity.CartEntry, error)

	// Summary ko'rsatish uchun yig'indi
	Summary(ctx context.Context) (entity.CartSummary, error)
}

type cartUseCase struct {
	mu          sync.Mutex
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
	presenter   Presenter
	log         *logger.Logger
}

// NewCartUseCase yangi CartUseCase yaratish
func NewCartUseCase(
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
	presenter Presenter,
	log *logger.Logger,
) CartUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &cartUseCase{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		presenter:   presenterOrNop(presenter),
		log:         log,
	}
}

// AddItem e'lonni savatga qo'shish
func (u *cartUseCase) AddItem(ctx context.Context, itemID int) (entity.CartEntry, error) {
	item, err := u.catalogRepo.GetByID(ctx, itemID)
	if err != nil {
		return entity.CartEntry{}, err
	}

	u.mu.Lock()
	entries, err := u.cartRepo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return entity.CartEntry{}, fmt.Errorf("failed to load cart: %w", err)
	}

	var added entity.CartEntry
	if idx := indexOf(entries, itemID); idx >= 0 {
		if entries[idx].Quantity == math.MaxInt {
			u.mu.Unlock()
			return entity.CartEntry{}, fmt.Errorf("%w: quantity for item %d out of range", entity.ErrValidation, itemID)
		}
		entries[idx].Quantity++
		added = entries[idx]
	} else {
		added = entity.CartEntry{CatalogItem: *item, Quantity: 1}
		entries = append(entries, added)
	}

	if err := u.cartRepo.Save(ctx, entries); err != nil {
		u.mu.Unlock()
		return entity.CartEntry{}, fmt.Errorf("failed to save cart: %w", err)
	}
	u.mu.Unlock()

	u.log.Debug("cart item added", "item_id", itemID, "quantity", added.Quantity)
	u.presenter.RenderCart(ctx, entries)
	notify(ctx, u.presenter, entity.LevelSuccess, fmt.Sprintf("%q added to cart", item.Title))

	return added, nil
}

// ChangeQuantity miqdorni o'zgartirish
func (u *cartUseCase) ChangeQuantity(ctx context.Context, itemID int, delta int) (*entity.CartEntry, error) {
	u.mu.Lock()
	entries, err := u.cartRepo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	idx := indexOf(entries, itemID)
	if idx < 0 {
		u.mu.Unlock()
		return nil, fmt.Errorf("%w: cart entry %d", entity.ErrNotFound, itemID)
	}

	if delta > 0 && entries[idx].Quantity > math.MaxInt-delta {
		u.mu.Unlock()
		return nil, fmt.Errorf("%w: quantity for item %d out of range", entity.ErrValidation, itemID)
	}

	var updated *entity.CartEntry
	entries[idx].Quantity += delta
	if entries[idx].Quantity < 1 {
		entries = append(entries[:idx], entries[idx+1:]...)
	} else {
		entry := entries[idx]
		updated = &entry
	}

	if err := u.cartRepo.Save(ctx, entries); err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	u.mu.Unlock()

	u.log.Debug("cart quantity changed", "item_id", itemID, "delta", delta, "removed", updated == nil)
	u.presenter.RenderCart(ctx, entries)

	return updated, nil
}

// RemoveItem yozuvni o'chirish
func (u *cartUseCase) RemoveItem(ctx context.Context, itemID int) error {
	u.mu.Lock()
	entries, err := u.cartRepo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return fmt.Errorf("failed to load cart: %w", err)
	}

	if idx := indexOf(entries, itemID); idx >= 0 {
		entries = append(entries[:idx], entries[idx+1:]...)
	}

	if err := u.cartRepo.Save(ctx, entries); err != nil {
		u.mu.Unlock()
		return fmt.Errorf("failed to save cart: %w", err)
	}
	u.mu.Unlock()

	u.presenter.RenderCart(ctx, entries)
	notify(ctx, u.presenter, entity.LevelInfo, "Item removed from cart")

	return nil
}

// Clear savatni tozalash
func (u *cartUseCase) Clear(ctx context.Context) error {
	_, err := u.Take(ctx)
	return err
}

// Take yozuvlarni olib savatni tozalash
func (u *cartUseCase) Take(ctx context.Context) ([]entity.CartEntry, error) {
	u.mu.Lock()
	entries, err := u.cartRepo.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if err := u.cartRepo.Save(ctx, []entity.CartEntry{}); err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	u.mu.Unlock()

	u.presenter.RenderCart(ctx, []entity.CartEntry{})
	return entries, nil
}

// TotalQuantity miqdorlar yig'indisi
func (u *cartUseCase) TotalQuantity(ctx context.Context) (int, error) {
	entries, err := u.List(ctx)
	if err != nil {
		return 0, err
	}
	return Project(entries).Quantity, nil
}

// List savat yozuvlarini olish
func (u *cartUseCase) List(ctx context.Context) ([]entity.CartEntry, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	entries, err := u.cartRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return entries, nil
}

// Summary savat yig'indisi
func (u *cartUseCase) Summary(ctx context.Context) (entity.CartSummary, error) {
	entries, err := u.List(ctx)
	if err != nil {
		return entity.CartSummary{}, err
	}
	return Project(entries), nil
}

func indexOf(entries []entity.CartEntry, itemID int) int {
	for i, e := range entries {
		if e.ID == itemID {
			return i
		}
	}
	return -1
}

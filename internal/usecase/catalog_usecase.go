package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

// CatalogUseCase katalog bilan bog'liq business logic
type CatalogUseCase interface {
	// All barcha e'lonlar
	All(ctx context.Context) ([]entity.CatalogItem, error)

	// Filter kategoriya bo'yicha ("all" yoki bo'sh = hammasi)
	Filter(ctx context.Context, category string) ([]entity.CatalogItem, error)

	// Search e'lon qidirish (bo'sh so'rov xato)
	Search(ctx context.Context, query string) ([]entity.CatalogItem, error)

	// LoadMore kechiktirilgan e'lonlarni bir marta ochish
	LoadMore(ctx context.Context, done func([]entity.CatalogItem)) LoadState

	// ContactOwner e'lon egasiga xabar yuborish (simulyatsiya)
	ContactOwner(ctx context.Context, itemID int) (*entity.CatalogItem, error)

	// Wait fon goroutinelari tugashini kutish
	Wait()
}

// LoadState LoadMore chaqiruvi natijasi
type LoadState int

const (
	// LoadStarted yuklash boshlandi, done keyinroq chaqiriladi
	LoadStarted LoadState = iota
	// LoadInProgress boshqa yuklash hali tugamagan
	LoadInProgress
	// LoadExhausted ochiladigan e'lon qolmagan
	LoadExhausted
)

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
	log         *logger.Logger
	delay       time.Duration

	mu      sync.Mutex
	pending []entity.CatalogItem
	loading bool
	wg      sync.WaitGroup
}

// NewCatalogUseCase yangi CatalogUseCase yaratish.
// deferred e'lonlar LoadMore chaqirilgunga qadar katalogda ko'rinmaydi.
func NewCatalogUseCase(
	catalogRepo repository.CatalogRepository,
	deferred []entity.CatalogItem,
	delay time.Duration,
	log *logger.Logger,
) CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		log:         log,
		delay:       delay,
		pending:     append([]entity.CatalogItem(nil), deferred...),
	}
}

// All barcha e'lonlarni olish
func (u *catalogUseCase) All(ctx context.Context) ([]entity.CatalogItem, error) {
	return u.catalogRepo.GetAll(ctx)
}

// Filter kategoriya bo'yicha e'lonlarni olish
func (u *catalogUseCase) Filter(ctx context.Context, category string) ([]entity.CatalogItem, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == entity.CategoryAll {
		return u.catalogRepo.GetAll(ctx)
	}
	return u.catalogRepo.GetByCategory(ctx, entity.Category(category))
}

// Search e'lon qidirish
func (u *catalogUseCase) Search(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is empty", entity.ErrValidation)
	}
	return u.catalogRepo.Search(ctx, query)
}

// LoadMore kechiktirilgan e'lonlarni ochish.
// Katalogda shu ID bilan e'lon bo'lsa, u o'zgarmaydi va done ga berilmaydi.
func (u *catalogUseCase) LoadMore(ctx context.Context, done func([]entity.CatalogItem)) LoadState {
	u.mu.Lock()
	if u.loading {
		u.mu.Unlock()
		return LoadInProgress
	}
	if len(u.pending) == 0 {
		u.mu.Unlock()
		return LoadExhausted
	}
	u.loading = true
	u.mu.Unlock()

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()

		timer := time.NewTimer(u.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			u.mu.Lock()
			u.loading = false
			u.mu.Unlock()
			return
		case <-timer.C:
		}

		u.mu.Lock()
		items := u.pending
		u.pending = nil
		u.loading = false
		u.mu.Unlock()

		revealed, err := u.reveal(context.WithoutCancel(ctx), items)
		if err != nil {
			u.log.Error("failed to reveal listings", "error", err)
			u.mu.Lock()
			u.pending = items
			u.mu.Unlock()
			return
		}

		u.log.Debug("listings revealed", "count", len(revealed), "skipped", len(items)-len(revealed))
		if done != nil {
			done(revealed)
		}
	}()
	return LoadStarted
}

// reveal katalogda yo'q e'lonlarni qo'shadi
func (u *catalogUseCase) reveal(ctx context.Context, items []entity.CatalogItem) ([]entity.CatalogItem, error) {
	fresh := make([]entity.CatalogItem, 0, len(items))
	for _, item := range items {
		_, err := u.catalogRepo.GetByID(ctx, item.ID)
		switch {
		case err == nil:
			u.log.Warn("deferred listing id already in catalog", "item_id", item.ID)
		case errors.Is(err, entity.ErrNotFound):
			fresh = append(fresh, item)
		default:
			return nil, err
		}
	}

	if len(fresh) == 0 {
		return fresh, nil
	}
	if err := u.catalogRepo.SaveMany(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ContactOwner e'lon egasiga xabar yuborish
func (u *catalogUseCase) ContactOwner(ctx context.Context, itemID int) (*entity.CatalogItem, error) {
	item, err := u.catalogRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	u.log.Info("owner contacted", "item_id", itemID)
	return item, nil
}

// Wait fon goroutinelarini kutish
func (u *catalogUseCase) Wait() {
	u.wg.Wait()
}

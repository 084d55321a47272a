package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
)

// StatsUseCase hamjamiyat hisoblagichlari
type StatsUseCase interface {
	Get(ctx context.Context) (entity.Stats, error)
	IncrementMembers(ctx context.Context) (entity.Stats, error)
	IncrementExchanges(ctx context.Context) (entity.Stats, error)
}

type statsUseCase struct {
	mu        sync.Mutex
	statsRepo repository.StatsRepository
}

// NewStatsUseCase yangi StatsUseCase yaratish
func NewStatsUseCase(statsRepo repository.StatsRepository) StatsUseCase {
	return &statsUseCase{statsRepo: statsRepo}
}

// Get hisoblagichlarni olish
func (u *statsUseCase) Get(ctx context.Context) (entity.Stats, error) {
	return u.statsRepo.Get(ctx)
}

// IncrementMembers ro'yxatdan o'tganda a'zolar sonini oshirish
func (u *statsUseCase) IncrementMembers(ctx context.Context) (entity.Stats, error) {
	return u.update(ctx, func(s *entity.Stats) { s.Members++ })
}

// IncrementExchanges checkout dan keyin almashinuvlar sonini oshirish
func (u *statsUseCase) IncrementExchanges(ctx context.Context) (entity.Stats, error) {
	return u.update(ctx, func(s *entity.Stats) { s.Exchanges++ })
}

func (u *statsUseCase) update(ctx context.Context, fn func(*entity.Stats)) (entity.Stats, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	stats, err := u.statsRepo.Get(ctx)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	fn(&stats)
	if err := u.statsRepo.Save(ctx, stats); err != nil {
		return entity.Stats{}, fmt.Errorf("failed to save stats: %w", err)
	}
	return stats, nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
)

// Saqlash kalitlari
const (
	CartKey  = "ecoswap_cart"
	UserKey  = "ecoswap_user"
	StatsKey = "ecoswap_stats"

	// GlobalNamespace barcha foydalanuvchilar uchun umumiy namespace
	GlobalNamespace = "_global"
)

type jsonCartRepository struct {
	store repository.LocalStorage
}

// NewCartRepository LocalStorage ustidagi savat repository
func NewCartRepository(store repository.LocalStorage) repository.CartRepository {
	return &jsonCartRepository{store: store}
}

// Load saqlangan savatni o'qish
func (r *jsonCartRepository) Load(ctx context.Context) ([]entity.CartEntry, error) {
	raw, ok, err := r.store.Get(ctx, CartKey)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []entity.CartEntry{}, nil
	}

	var entries []entity.CartEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if entries == nil {
		entries = []entity.CartEntry{}
	}
	return entries, nil
}

// Save butun savatni bitta yozuvda saqlash
func (r *jsonCartRepository) Save(ctx context.Context, entries []entity.CartEntry) error {
	if entries == nil {
		entries = []entity.CartEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return r.store.Set(ctx, CartKey, raw)
}

type jsonSessionRepository struct {
	store repository.LocalStorage
}

// NewSessionRepository LocalStorage ustidagi sessiya repository
func NewSessionRepository(store repository.LocalStorage) repository.SessionRepository {
	return &jsonSessionRepository{store: store}
}

// Get sessiyani olish
func (r *jsonSessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	raw, ok, err := r.store.Get(ctx, UserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Save sessiyani saqlash
func (r *jsonSessionRepository) Save(ctx context.Context, session entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.store.Set(ctx, UserKey, raw)
}

// Delete sessiyani o'chirish
func (r *jsonSessionRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, UserKey)
}

type jsonStatsRepository struct {
	store repository.LocalStorage
}

// NewStatsRepository LocalStorage ustidagi statistika repository
func NewStatsRepository(store repository.LocalStorage) repository.StatsRepository {
	return &jsonStatsRepository{store: store}
}

// Get hisoblagichlarni olish (yo'q bo'lsa boshlang'ich qiymatlar)
func (r *jsonStatsRepository) Get(ctx context.Context) (entity.Stats, error) {
	raw, ok, err := r.store.Get(ctx, StatsKey)
	if err != nil {
		return entity.Stats{}, err
	}
	if !ok {
		return entity.DefaultStats(), nil
	}

	var stats entity.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return entity.Stats{}, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

// Save hisoblagichlarni saqlash
func (r *jsonStatsRepository) Save(ctx context.Context, stats entity.Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return r.store.Set(ctx, StatsKey, raw)
}

package repository

import (
	"context"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
)

// LocalStorage bitta namespace uchun kalit-qiymat ombori (brauzer localStorage o'rnida).
// Set qiymatni to'liq va atomik almashtiradi.
type LocalStorage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// StorageProvider namespace bo'yicha LocalStorage beradi
type StorageProvider interface {
	Namespace(name string) LocalStorage
}

// CartRepository savat snapshotini saqlash uchun interface
type CartRepository interface {
	// Load saqlangan savatni olish (yo'q bo'lsa bo'sh)
	Load(ctx context.Context) ([]entity.CartEntry, error)

	// Save butun savatni bitta yozuvda saqlash
	Save(ctx context.Context, entries []entity.CartEntry) error
}

// SessionRepository foydalanuvchi sessiyasi uchun interface
type SessionRepository interface {
	// Get sessiyani olish, yo'q bo'lsa nil
	Get(ctx context.Context) (*entity.Session, error)

	// Save sessiyani saqlash (login/register)
	Save(ctx context.Context, session entity.Session) error

	// Delete sessiyani o'chirish (logout)
	Delete(ctx context.Context) error
}

// StatsRepository hamjamiyat hisoblagichlari uchun interface
type StatsRepository interface {
	Get(ctx context.Context) (entity.Stats, error)
	Save(ctx context.Context, stats entity.Stats) error
}

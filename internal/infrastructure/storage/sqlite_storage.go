package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
)

// SQLiteStorage SQLite asosidagi kalit-qiymat ombori
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage SQLite faylini ochish va sxemani yaratish
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}
	// Bitta ulanish: yozuvlar ketma-ket bajariladi, "database is locked" bo'lmaydi
	db.SetMaxOpenConns(1)

	if err := createStorageSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStorage{db: db}, nil
}

func createStorageSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS local_storage (
	namespace TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (namespace, key)
);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}

// Namespace bitta foydalanuvchi uchun ko'rinish
func (s *SQLiteStorage) Namespace(name string) repository.LocalStorage {
	return &sqliteNamespace{db: s.db, name: name}
}

// Close bazani yopish
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

type sqliteNamespace struct {
	db   *sql.DB
	name string
}

// Get qiymatni olish
func (n *sqliteNamespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := n.db.QueryRowContext(ctx,
		`SELECT value FROM local_storage WHERE namespace = ? AND key = ?`, n.name, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s/%s: %w", n.name, key, err)
	}
	return []byte(value), true, nil
}

// Set qiymatni bitta UPSERT bilan almashtirish
func (n *sqliteNamespace) Set(ctx context.Context, key string, value []byte) error {
	_, err := n.db.ExecContext(ctx, `
INSERT INTO local_storage (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		n.name, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", n.name, key, err)
	}
	return nil
}

// Delete qiymatni o'chirish
func (n *sqliteNamespace) Delete(ctx context.Context, key string) error {
	_, err := n.db.ExecContext(ctx, `DELETE FROM local_storage WHERE namespace = ? AND key = ?`, n.name, key)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", n.name, key, err)
	}
	return nil
}

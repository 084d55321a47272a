package usecase

import (
	"context"
	"sync"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/storage"
)

// recordingPresenter barcha chaqiruvlarni yozib boradi
type recordingPresenter struct {
	mu      sync.Mutex
	renders [][]entity.CartEntry
	notes   []entity.Notification
}

func (p *recordingPresenter) RenderCart(_ context.Context, entries []entity.CartEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renders = append(p.renders, entries)
}

func (p *recordingPresenter) Notify(_ context.Context, n entity.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notes = append(p.notes, n)
}

func (p *recordingPresenter) lastNote() entity.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.notes) == 0 {
		return entity.Notification{}
	}
	return p.notes[len(p.notes)-1]
}

type fixture struct {
	store     *storage.MemoryStorage
	presenter *recordingPresenter
	stats     StatsUseCase
	shopper   *Shopper
}

func newFixture() *fixture {
	store := storage.NewMemoryStorage()
	user := store.Namespace("42")
	presenter := &recordingPresenter{}
	stats := NewStatsUseCase(storage.NewStatsRepository(store.Namespace(storage.GlobalNamespace)))

	return &fixture{
		store:     store,
		presenter: presenter,
		stats:     stats,
		shopper: NewShopper(
			storage.NewMemoryCatalogRepository(storage.SeedCatalog()...),
			storage.NewCartRepository(user),
			storage.NewSessionRepository(user),
			stats,
			presenter,
			nil,
		),
	}
}

func ids(entries []entity.CartEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

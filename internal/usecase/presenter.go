package usecase

import (
	"context"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
)

// Presenter UI qatlami: savatni chizish va foydalanuvchiga xabar yetkazish
type Presenter interface {
	// RenderCart har bir savat o'zgarishidan keyin chaqiriladi
	RenderCart(ctx context.Context, entries []entity.CartEntry)

	// Notify foydalanuvchiga success/error/info xabar
	Notify(ctx context.Context, n entity.Notification)
}

type nopPresenter struct{}

func (nopPresenter) RenderCart(context.Context, []entity.CartEntry) {}
func (nopPresenter) Notify(context.Context, entity.Notification)    {}

func presenterOrNop(p Presenter) Presenter {
	if p == nil {
		return nopPresenter{}
	}
	return p
}

func notify(ctx context.Context, p Presenter, level entity.NotificationLevel, msg string) {
	p.Notify(ctx, entity.Notification{Level: level, Message: msg})
}

package telegram

import (
	"context"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
)

type chatKey struct{}

func withChat(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, chatKey{}, chatID)
}

func chatFrom(ctx context.Context) (int64, bool) {
	chatID, ok := ctx.Value(chatKey{}).(int64)
	return chatID, ok
}

// chatPresenter usecase xabarlarini so'rov kelgan chatga yuboradi
type chatPresenter struct {
	h *BotHandler
}

func (p *chatPresenter) RenderCart(ctx context.Context, entries []entity.CartEntry) {
	if chatID, ok := chatFrom(ctx); ok {
		p.h.sendCart(chatID, entries)
	}
}

func (p *chatPresenter) Notify(ctx context.Context, n entity.Notification) {
	if chatID, ok := chatFrom(ctx); ok {
		p.h.sendNotification(chatID, n)
	}
}

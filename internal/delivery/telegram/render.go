package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/usecase"
)

const welcomeMessage = `🌱 Welcome to EcoSwap!

Swap, lend and give away things you no longer need.

/catalog - browse listings
/cart - your cart
/help - all commands`

const helpMessage = `Commands:
/catalog [tools|books|clothes|electronics|other] - browse listings
/search <text> - search listings
/more - load more listings
/add <id> - add item to cart
/cart - show cart
/inc <id>, /dec <id>, /remove <id> - change cart
/clear - empty cart
/checkout - reserve everything in the cart
/login <email> [password]
/register <email> | <name> | <location>
/logout
/contact <id> - message the item owner
/stats - community stats`

var levelIcons = map[entity.NotificationLevel]string{
	entity.LevelSuccess: "✅",
	entity.LevelError:   "❌",
	entity.LevelInfo:    "ℹ️",
	entity.LevelWarning: "⚠️",
}

// iconEmoji katalogdagi ikon klasslari uchun emoji
var iconEmoji = map[string]string{
	"fas fa-tools":        "🧰",
	"fas fa-hammer":       "🔨",
	"fas fa-book":         "📚",
	"fas fa-bicycle":      "🚲",
	"fas fa-mobile-alt":   "📱",
	"fas fa-laptop":       "💻",
	"fas fa-compact-disc": "💿",
	"fas fa-leaf":         "🌿",
	"fas fa-utensils":     "🍴",
	"fas fa-chair":        "🪑",
	"fas fa-tshirt":       "👕",
	"fas fa-box":          "📦",
}

func emoji(icon string) string {
	if e, ok := iconEmoji[icon]; ok {
		return e
	}
	return "📦"
}

func (h *BotHandler) sendMessage(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *BotHandler) send(msg tgbotapi.MessageConfig) {
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Error("failed to send message", "chat_id", msg.ChatID, "error", err)
	}
}

func (h *BotHandler) sendNotification(chatID int64, n entity.Notification) {
	h.sendMessage(chatID, formatNotification(n))
}

// sendItems har bir e'lon alohida xabar, "Add to cart" tugmasi bilan
func (h *BotHandler) sendItems(chatID int64, items []entity.CatalogItem) {
	for _, item := range items {
		msg := tgbotapi.NewMessage(chatID, formatItem(item))
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🛒 Add to cart", "add:"+strconv.Itoa(item.ID)),
				tgbotapi.NewInlineKeyboardButtonData("✉️ Contact", "contact:"+strconv.Itoa(item.ID)),
			),
		)
		h.send(msg)
	}
}

// sendCart savatni tugmalar bilan chizish
func (h *BotHandler) sendCart(chatID int64, entries []entity.CartEntry) {
	msg := tgbotapi.NewMessage(chatID, formatCart(entries))
	if len(entries) > 0 {
		msg.ReplyMarkup = cartKeyboard(entries)
	}
	h.send(msg)
}

func cartKeyboard(entries []entity.CartEntry) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entries)+1)
	for _, e := range entries {
		id := strconv.Itoa(e.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "dec:"+id),
			tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(e.Quantity), "cart"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "inc:"+id),
			tgbotapi.NewInlineKeyboardButtonData("🗑", "rm:"+id),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Checkout", "checkout"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func formatNotification(n entity.Notification) string {
	if icon, ok := levelIcons[n.Level]; ok {
		return icon + " " + n.Message
	}
	return n.Message
}

func formatItem(item entity.CatalogItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (#%d)", emoji(item.Icon), item.Title, item.ID)
	if item.HasBadge() {
		fmt.Fprintf(&b, " [%s]", item.Badge)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s · %s\n", item.Category.DisplayName(), item.Price)
	if item.Description != "" {
		b.WriteString(item.Description + "\n")
	}
	fmt.Fprintf(&b, "📍 %s", item.Location)
	return b.String()
}

func formatCart(entries []entity.CartEntry) string {
	if len(entries) == 0 {
		return "🛒 Your cart is empty"
	}

	var b strings.Builder
	b.WriteString("🛒 Your cart\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s × %d\n%s · %s\n\n", emoji(e.Icon), e.Title, e.Quantity, e.Price, e.Location)
	}

	summary := usecase.Project(entries)
	fmt.Fprintf(&b, "Items: %d · Deposit: %s · Total: %s",
		summary.Quantity, usecase.FormatCents(summary.DepositCents), usecase.FormatCents(summary.TotalCents))
	return b.String()
}

func formatStats(s entity.Stats) string {
	return fmt.Sprintf("🌍 EcoSwap community\n\nMembers: %s\nItems listed: %s\nExchanges: %s",
		thousands(s.Members), thousands(s.Items), thousands(s.Exchanges))
}

// thousands 1250 -> "1,250"
func thousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/storage"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
	"github.com/yourusername/ecoswap-market/internal/usecase"
)

// botAPI *tgbotapi.BotAPI ning handler ishlatadigan qismi
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot         botAPI
	username    string
	storage     repository.StorageProvider
	catalogRepo repository.CatalogRepository
	catalog     usecase.CatalogUseCase
	stats       usecase.StatsUseCase
	log         *logger.Logger

	shopMu   sync.Mutex
	shoppers map[int64]*usecase.Shopper

	// inflight ishlayotgan update handlerlar
	inflight sync.WaitGroup
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	store repository.StorageProvider,
	catalogRepo repository.CatalogRepository,
	catalog usecase.CatalogUseCase,
	stats usecase.StatsUseCase,
	log *logger.Logger,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	h := newBotHandler(bot, store, catalogRepo, catalog, stats, log)
	h.username = bot.Self.UserName
	return h, nil
}

func newBotHandler(
	bot botAPI,
	store repository.StorageProvider,
	catalogRepo repository.CatalogRepository,
	catalog usecase.CatalogUseCase,
	stats usecase.StatsUseCase,
	log *logger.Logger,
) *BotHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &BotHandler{
		bot:         bot,
		storage:     store,
		catalogRepo: catalogRepo,
		catalog:     catalog,
		stats:       stats,
		log:         log,
		shoppers:    make(map[int64]*usecase.Shopper),
	}
}

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	h.log.Info("bot started", "username", h.username)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	// Qaytishdan oldin boshlangan handlerlar tugashini kutamiz: ombor ulardan keyin yopiladi
	defer h.inflight.Wait()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("bot stopping")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.dispatch(ctx, update)
		}
	}
}

// dispatch updateni alohida goroutineda qayta ishlaydi.
// Handler ctx bekor qilinmaydi: boshlangan savat yozuvi shutdown da ham oxirigacha yetadi.
func (h *BotHandler) dispatch(ctx context.Context, update tgbotapi.Update) {
	ctx = context.WithoutCancel(ctx)
	switch {
	case update.CallbackQuery != nil:
		h.inflight.Add(1)
		go func() {
			defer h.inflight.Done()
			h.handleCallback(ctx, update.CallbackQuery)
		}()
	case update.Message != nil:
		h.inflight.Add(1)
		go func() {
			defer h.inflight.Done()
			h.handleMessage(ctx, update.Message)
		}()
	}
}

// shopper foydalanuvchi uchun usecaselar (birinchi murojaatda yaratiladi)
func (h *BotHandler) shopper(userID int64) *usecase.Shopper {
	h.shopMu.Lock()
	defer h.shopMu.Unlock()

	if s, ok := h.shoppers[userID]; ok {
		return s
	}

	store := h.storage.Namespace(strconv.FormatInt(userID, 10))
	s := usecase.NewShopper(
		h.catalogRepo,
		storage.NewCartRepository(store),
		storage.NewSessionRepository(store),
		h.stats,
		&chatPresenter{h: h},
		h.log.With("user_id", userID),
	)
	h.shoppers[userID] = s
	return s
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}
	ctx = withChat(ctx, message.Chat.ID)

	// Komandalarni qayta ishlash
	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	// Oddiy matn qidiruv so'rovi sifatida
	if text := strings.TrimSpace(message.Text); text != "" {
		h.handleSearch(ctx, message.Chat.ID, text)
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		h.sendMessage(chatID, welcomeMessage)
	case "help":
		h.sendMessage(chatID, helpMessage)
	case "catalog":
		h.handleCatalog(ctx, chatID, args)
	case "search":
		h.handleSearch(ctx, chatID, args)
	case "more":
		h.handleLoadMore(ctx, chatID)
	case "add":
		h.withItemID(chatID, args, "add", func(id int) { h.handleAdd(ctx, userID, chatID, id) })
	case "cart":
		h.handleShowCart(ctx, userID, chatID)
	case "inc":
		h.withItemID(chatID, args, "inc", func(id int) { h.handleQuantity(ctx, userID, chatID, id, 1) })
	case "dec":
		h.withItemID(chatID, args, "dec", func(id int) { h.handleQuantity(ctx, userID, chatID, id, -1) })
	case "remove":
		h.withItemID(chatID, args, "remove", func(id int) { h.handleRemove(ctx, userID, chatID, id) })
	case "clear":
		h.handleClear(ctx, userID, chatID)
	case "checkout":
		h.handleCheckout(ctx, userID, chatID)
	case "login":
		h.handleLogin(ctx, userID, chatID, args)
	case "register":
		h.handleRegister(ctx, userID, chatID, args)
	case "logout":
		h.handleLogout(ctx, userID, chatID)
	case "contact":
		h.withItemID(chatID, args, "contact", func(id int) { h.handleContact(ctx, chatID, id) })
	case "stats":
		h.handleStats(ctx, chatID)
	default:
		h.sendMessage(chatID, "Unknown command. Send /help for the list.")
	}
}

// handleCallback inline tugmalar
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	ctx = withChat(ctx, chatID)

	// Callback ga javob (spinnerni to'xtatish)
	if _, err := h.bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		h.log.Warn("callback answer failed", "error", err)
	}

	action, rawID, _ := strings.Cut(cq.Data, ":")
	switch action {
	case "checkout":
		h.handleCheckout(ctx, userID, chatID)
		return
	case "cart":
		h.handleShowCart(ctx, userID, chatID)
		return
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		h.log.Warn("bad callback payload", "data", cq.Data)
		return
	}

	switch action {
	case "add":
		h.handleAdd(ctx, userID, chatID, id)
	case "inc":
		h.handleQuantity(ctx, userID, chatID, id, 1)
	case "dec":
		h.handleQuantity(ctx, userID, chatID, id, -1)
	case "rm":
		h.handleRemove(ctx, userID, chatID, id)
	case "contact":
		h.handleContact(ctx, chatID, id)
	default:
		h.log.Warn("unknown callback action", "data", cq.Data)
	}
}

func (h *BotHandler) withItemID(chatID int64, args, command string, fn func(int)) {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		h.sendMessage(chatID, fmt.Sprintf("Usage: /%s <item id>", command))
		return
	}
	fn(id)
}

// /catalog [category]
func (h *BotHandler) handleCatalog(ctx context.Context, chatID int64, category string) {
	items, err := h.catalog.Filter(ctx, category)
	if err != nil {
		h.reportError(chatID, "catalog filter", err)
		return
	}
	if len(items) == 0 {
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: fmt.Sprintf("No items in %q", category)})
		return
	}
	h.sendItems(chatID, items)
}

// /search <query>
func (h *BotHandler) handleSearch(ctx context.Context, chatID int64, query string) {
	items, err := h.catalog.Search(ctx, query)
	if errors.Is(err, entity.ErrValidation) {
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: "Please enter what you're looking for"})
		return
	}
	if err != nil {
		h.reportError(chatID, "catalog search", err)
		return
	}
	if len(items) == 0 {
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: fmt.Sprintf("No items found for %q", strings.TrimSpace(query))})
		return
	}
	h.sendItems(chatID, items)
	h.sendNotification(chatID, entity.Notification{Level: entity.LevelSuccess, Message: fmt.Sprintf("Found %d items", len(items))})
}

// /more
func (h *BotHandler) handleLoadMore(ctx context.Context, chatID int64) {
	state := h.catalog.LoadMore(ctx, func(items []entity.CatalogItem) {
		if len(items) == 0 {
			h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: "All items loaded"})
			return
		}
		h.sendItems(chatID, items)
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelSuccess, Message: fmt.Sprintf("Added %d new items", len(items))})
	})

	switch state {
	case usecase.LoadStarted:
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: "Loading more items..."})
	case usecase.LoadInProgress:
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: "More items are already loading, try /catalog in a moment"})
	case usecase.LoadExhausted:
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelInfo, Message: "All items loaded"})
	}
}

func (h *BotHandler) handleAdd(ctx context.Context, userID, chatID int64, itemID int) {
	if _, err := h.shopper(userID).Cart.AddItem(ctx, itemID); err != nil {
		h.cartError(chatID, err, "Item not found in the catalog")
	}
}

func (h *BotHandler) handleQuantity(ctx context.Context, userID, chatID int64, itemID, delta int) {
	if _, err := h.shopper(userID).Cart.ChangeQuantity(ctx, itemID, delta); err != nil {
		h.cartError(chatID, err, "Item is not in your cart")
	}
}

func (h *BotHandler) handleRemove(ctx context.Context, userID, chatID int64, itemID int) {
	if err := h.shopper(userID).Cart.RemoveItem(ctx, itemID); err != nil {
		h.cartError(chatID, err, "")
	}
}

func (h *BotHandler) handleClear(ctx context.Context, userID, chatID int64) {
	if err := h.shopper(userID).Cart.Clear(ctx); err != nil {
		h.cartError(chatID, err, "")
	}
}

// /cart
func (h *BotHandler) handleShowCart(ctx context.Context, userID, chatID int64) {
	entries, err := h.shopper(userID).Cart.List(ctx)
	if err != nil {
		h.reportError(chatID, "cart list", err)
		return
	}
	h.sendCart(chatID, entries)
}

// /checkout
func (h *BotHandler) handleCheckout(ctx context.Context, userID, chatID int64) {
	_, err := h.shopper(userID).Checkout.Checkout(ctx)
	// Empty va unauthenticated holatlarida xabarni usecase o'zi yubordi
	if err != nil && !errors.Is(err, entity.ErrEmptyCart) && !errors.Is(err, entity.ErrUnauthenticated) {
		h.reportError(chatID, "checkout", err)
	}
}

// /login <email> [password]
func (h *BotHandler) handleLogin(ctx context.Context, userID, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		h.sendMessage(chatID, "Usage: /login <email> [password]")
		return
	}
	password := ""
	if len(fields) > 1 {
		password = fields[1]
	}
	if _, err := h.shopper(userID).Auth.Login(ctx, fields[0], password); err != nil && !errors.Is(err, entity.ErrValidation) {
		h.reportError(chatID, "login", err)
	}
}

// /register <email> | <name> | <location>
func (h *BotHandler) handleRegister(ctx context.Context, userID, chatID int64, args string) {
	parts := strings.Split(args, "|")
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	_, err := h.shopper(userID).Auth.Register(ctx, parts[0], parts[1], parts[2])
	if errors.Is(err, entity.ErrValidation) {
		h.sendMessage(chatID, "Usage: /register <email> | <name> | <location>")
		return
	}
	if err != nil {
		h.reportError(chatID, "register", err)
	}
}

// /logout
func (h *BotHandler) handleLogout(ctx context.Context, userID, chatID int64) {
	if err := h.shopper(userID).Auth.Logout(ctx); err != nil {
		h.reportError(chatID, "logout", err)
	}
}

// /contact <id>
func (h *BotHandler) handleContact(ctx context.Context, chatID int64, itemID int) {
	item, err := h.catalog.ContactOwner(ctx, itemID)
	if errors.Is(err, entity.ErrNotFound) {
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelError, Message: "Item not found in the catalog"})
		return
	}
	if err != nil {
		h.reportError(chatID, "contact owner", err)
		return
	}
	h.sendNotification(chatID, entity.Notification{Level: entity.LevelSuccess, Message: fmt.Sprintf("Message sent to owner of %q", item.Title)})
}

// /stats
func (h *BotHandler) handleStats(ctx context.Context, chatID int64) {
	stats, err := h.stats.Get(ctx)
	if err != nil {
		h.reportError(chatID, "stats", err)
		return
	}
	h.sendMessage(chatID, formatStats(stats))
}

func (h *BotHandler) cartError(chatID int64, err error, notFoundText string) {
	if errors.Is(err, entity.ErrValidation) {
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelWarning, Message: "Quantity limit reached"})
		return
	}
	if errors.Is(err, entity.ErrNotFound) && notFoundText != "" {
		h.sendNotification(chatID, entity.Notification{Level: entity.LevelError, Message: notFoundText})
		return
	}
	h.reportError(chatID, "cart", err)
}

func (h *BotHandler) reportError(chatID int64, op string, err error) {
	h.log.Error("operation failed", "op", op, "chat_id", chatID, "error", err)
	h.sendNotification(chatID, entity.Notification{Level: entity.LevelError, Message: "Something went wrong, please try again"})
}

// GetBotUsername bot username ni olish
func (h *BotHandler) GetBotUsername() string {
	return h.username
}

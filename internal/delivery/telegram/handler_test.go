package telegram

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/storage"
	"github.com/yourusername/ecoswap-market/internal/usecase"
	"go.uber.org/goleak"
)

type fakeBot struct {
	mu      sync.Mutex
	sent    []tgbotapi.MessageConfig
	answers int
	updates chan tgbotapi.Update
	stopped bool

	// gate nil bo'lmasa Send u yopilguncha kutadi
	gate    chan struct{}
	entered chan struct{}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.gate != nil {
		select {
		case b.entered <- struct{}{}:
		default:
		}
		<-b.gate
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.answers++
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
}

// drain yuborilgan xabarlar matnini olib, ro'yxatni tozalaydi
func (b *fakeBot) drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	texts := make([]string, 0, len(b.sent))
	for _, m := range b.sent {
		texts = append(texts, m.Text)
	}
	b.sent = nil
	return texts
}

func (b *fakeBot) last() tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sent[len(b.sent)-1]
}

type testEnv struct {
	bot     *fakeBot
	store   *storage.MemoryStorage
	stats   usecase.StatsUseCase
	catalog usecase.CatalogUseCase
	handler *BotHandler
}

func newTestEnv() *testEnv {
	return newTestEnvWithDelay(time.Millisecond)
}

func newTestEnvWithDelay(delay time.Duration) *testEnv {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	store := storage.NewMemoryStorage()
	catalogRepo := storage.NewMemoryCatalogRepository(storage.SeedCatalog()...)
	catalog := usecase.NewCatalogUseCase(catalogRepo, storage.MoreListings(), delay, nil)
	stats := usecase.NewStatsUseCase(storage.NewStatsRepository(store.Namespace(storage.GlobalNamespace)))

	return &testEnv{
		bot:     bot,
		store:   store,
		stats:   stats,
		catalog: catalog,
		handler: newBotHandler(bot, store, catalogRepo, catalog, stats, nil),
	}
}

func command(userID int64, text string) *tgbotapi.Message {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		cmdLen = i
	}
	return &tgbotapi.Message{
		From:     &tgbotapi.User{ID: userID},
		Chat:     &tgbotapi.Chat{ID: userID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func callback(userID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}
}

func (e *testEnv) send(userID int64, text string) []string {
	e.handler.handleMessage(context.Background(), command(userID, text))
	return e.bot.drain()
}

func TestAddAndShowCart(t *testing.T) {
	env := newTestEnv()

	out := env.send(100, "/add 1")
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "Bosch Power Drill × 1")
	assert.Contains(t, out[0], "Items: 1 · Deposit: $0 · Total: $0")
	assert.Equal(t, `✅ "Bosch Power Drill" added to cart`, out[1])

	env.send(100, "/add 1")
	out = env.send(100, "/cart")
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "Bosch Power Drill × 2")

	// Savat foydalanuvchi namespace ida saqlanadi
	raw, ok, err := env.store.Namespace("100").Get(context.Background(), storage.CartKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"quantity":2`)

	out = env.send(200, "/cart")
	assert.Equal(t, []string{"🛒 Your cart is empty"}, out)
}

func TestCartKeyboard(t *testing.T) {
	env := newTestEnv()
	env.send(100, "/add 2")
	env.handler.handleMessage(context.Background(), command(100, "/cart"))

	markup, ok := env.bot.last().ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 2)

	row := markup.InlineKeyboard[0]
	require.Len(t, row, 4)
	assert.Equal(t, "dec:2", *row[0].CallbackData)
	assert.Equal(t, "inc:2", *row[2].CallbackData)
	assert.Equal(t, "rm:2", *row[3].CallbackData)
	assert.Equal(t, "checkout", *markup.InlineKeyboard[1][0].CallbackData)
}

func TestCallbacks(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.handler.handleCallback(ctx, callback(100, "add:5"))
	env.handler.handleCallback(ctx, callback(100, "inc:5"))
	out := env.bot.drain()
	assert.Contains(t, out[len(out)-1], "Samsung Galaxy S10 × 2")

	env.handler.handleCallback(ctx, callback(100, "dec:5"))
	env.handler.handleCallback(ctx, callback(100, "dec:5"))
	out = env.bot.drain()
	assert.Equal(t, "🛒 Your cart is empty", out[len(out)-1])

	env.handler.handleCallback(ctx, callback(100, "dec:5"))
	assert.Equal(t, []string{"❌ Item is not in your cart"}, env.bot.drain())

	env.handler.handleCallback(ctx, callback(100, "add:3"))
	env.handler.handleCallback(ctx, callback(100, "rm:3"))
	out = env.bot.drain()
	assert.Equal(t, "ℹ️ Item removed from cart", out[len(out)-1])

	env.handler.handleCallback(ctx, callback(100, "add:oops"))
	assert.Empty(t, env.bot.drain())

	env.bot.mu.Lock()
	assert.Equal(t, 8, env.bot.answers)
	env.bot.mu.Unlock()
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	out := env.send(100, "/checkout")
	assert.Equal(t, []string{"❌ Your cart is empty"}, out)

	env.send(100, "/add 1")
	env.send(100, "/add 4")

	out = env.send(100, "/checkout")
	assert.Equal(t, []string{"❌ Please login to reserve items"}, out)

	out = env.send(100, "/register ana@example.com | Ana | Austin")
	assert.Equal(t, []string{"✅ Welcome Ana! Your account has been created."}, out)

	env.handler.handleCallback(ctx, callback(100, "checkout"))
	out = env.bot.drain()
	require.Len(t, out, 2)
	assert.Equal(t, "🛒 Your cart is empty", out[0])
	assert.Equal(t, "✅ Reservation complete for: Bosch Power Drill, Workshop Hammer. Item owners will contact you.", out[1])

	stats, err := env.stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Stats{Members: 1251, Items: 543, Exchanges: 290}, stats)

	out = env.send(100, "/stats")
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "Members: 1,251")
	assert.Contains(t, out[0], "Exchanges: 290")
}

func TestAuthCommands(t *testing.T) {
	env := newTestEnv()

	assert.Equal(t, []string{"Usage: /login <email> [password]"}, env.send(100, "/login"))
	assert.Equal(t, []string{"✅ Successfully logged in!"}, env.send(100, "/login ana@example.com pw"))
	assert.Equal(t, []string{"ℹ️ Successfully logged out"}, env.send(100, "/logout"))

	out := env.send(100, "/register ana@example.com | Ana")
	assert.Equal(t, []string{"❌ Please fill all required fields", "Usage: /register <email> | <name> | <location>"}, out)
}

func TestCatalogAndSearch(t *testing.T) {
	env := newTestEnv()

	out := env.send(100, "/catalog books")
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "Fantasy Book Collection (#2)")
	assert.Contains(t, out[0], "Books · Free")

	assert.Equal(t, []string{`ℹ️ No items in "furniture"`}, env.send(100, "/catalog furniture"))

	// Oddiy matn qidiruv
	env.handler.handleMessage(context.Background(), &tgbotapi.Message{
		From: &tgbotapi.User{ID: 100},
		Chat: &tgbotapi.Chat{ID: 100},
		Text: "hammer",
	})
	out = env.bot.drain()
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "Workshop Hammer (#4)")
	assert.Equal(t, "✅ Found 1 items", out[1])

	assert.Equal(t, []string{"ℹ️ Please enter what you're looking for"}, env.send(100, "/search"))
	assert.Equal(t, []string{`ℹ️ No items found for "piano"`}, env.send(100, "/search piano"))
}

func TestLoadMoreAndContact(t *testing.T) {
	env := newTestEnv()

	assert.Equal(t, []string{`❌ Item not found in the catalog`}, env.send(100, "/add 9"))

	env.handler.handleMessage(context.Background(), command(100, "/more"))
	env.catalog.Wait()

	// Fon goroutine xabarlari "Loading" dan oldin ham kelishi mumkin
	out := env.bot.drain()
	require.Len(t, out, 4)
	assert.Contains(t, out, "ℹ️ Loading more items...")
	assert.Contains(t, out, "✅ Added 2 new items")
	assert.Contains(t, strings.Join(out, "\n"), "Office Chair (#9)")
	assert.Contains(t, strings.Join(out, "\n"), "Dell Latitude Laptop (#10)")

	assert.Equal(t, []string{"ℹ️ All items loaded"}, env.send(100, "/more"))

	out = env.send(100, "/add 9")
	assert.Equal(t, `✅ "Office Chair" added to cart`, out[len(out)-1])

	assert.Equal(t, []string{`✅ Message sent to owner of "Dell Latitude Laptop"`}, env.send(100, "/contact 10"))
	assert.Equal(t, []string{"Usage: /contact <item id>"}, env.send(100, "/contact"))
}

func TestLoadMoreWhileAnotherLoadRuns(t *testing.T) {
	defer goleak.VerifyNone(t)
	env := newTestEnvWithDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	env.handler.handleMessage(ctx, command(100, "/more"))
	assert.Equal(t, []string{"ℹ️ Loading more items..."}, env.bot.drain())

	// Boshqa foydalanuvchi "All items loaded" emas, yuklanayotganini ko'radi
	out := env.send(200, "/more")
	assert.Equal(t, []string{"ℹ️ More items are already loading, try /catalog in a moment"}, out)

	cancel()
	env.catalog.Wait()
	assert.Empty(t, env.bot.drain())
}

func TestUnknownCommand(t *testing.T) {
	env := newTestEnv()
	assert.Equal(t, []string{"Unknown command. Send /help for the list."}, env.send(100, "/frobnicate"))
	assert.Equal(t, []string{"Usage: /add <item id>"}, env.send(100, "/add x"))
}

func TestStartStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	env := newTestEnv()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.handler.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}

	env.bot.mu.Lock()
	assert.True(t, env.bot.stopped)
	env.bot.mu.Unlock()
}

func TestStartWaitsForInflightHandlers(t *testing.T) {
	defer goleak.VerifyNone(t)
	env := newTestEnv()
	env.bot.gate = make(chan struct{})
	env.bot.entered = make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.handler.Start(ctx) }()

	env.bot.updates <- tgbotapi.Update{Message: command(100, "/add 1")}
	select {
	case <-env.bot.entered:
	case <-time.After(time.Second):
		t.Fatal("handler did not start")
	}

	cancel()
	select {
	case <-done:
		t.Fatal("Start returned while a handler was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(env.bot.gate)
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after handler finished")
	}

	out := env.bot.drain()
	require.Len(t, out, 2)
	assert.Equal(t, `✅ "Bosch Power Drill" added to cart`, out[1])

	raw, ok, err := env.store.Namespace("100").Get(context.Background(), storage.CartKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"quantity":1`)
}

func TestThousands(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1250: "1,250", 1234567: "1,234,567", -4321: "-4,321"}
	for in, want := range tests {
		assert.Equal(t, want, thousands(in))
	}
}

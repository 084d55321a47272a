package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yourusername/ecoswap-market/internal/delivery/telegram"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/storage"
	"github.com/yourusername/ecoswap-market/internal/usecase"
	"golang.org/x/sync/errgroup"
)

// botCmd Telegram botni ishga tushiradi
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram shopfront",
	Long: `Starts the EcoSwap Telegram bot.

Requires TELEGRAM_BOT_TOKEN. Carts, sessions and community stats are kept
in the SQLite file at STORAGE_PATH.`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireTelegram(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewSQLiteStorage(cfg.StoragePath)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("storage opened", "path", cfg.StoragePath)

	items, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	catalogRepo := storage.NewMemoryCatalogRepository(items...)
	catalog := usecase.NewCatalogUseCase(catalogRepo, deferredListings(), cfg.LoadMoreDelay, log)
	stats := usecase.NewStatsUseCase(storage.NewStatsRepository(store.Namespace(storage.GlobalNamespace)))

	bot, err := telegram.NewBotHandler(cfg.TelegramToken, store, catalogRepo, catalog, stats, log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := bot.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("bot stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		catalog.Wait()
		return nil
	})

	err = g.Wait()
	log.Info("shutdown complete")
	return err
}

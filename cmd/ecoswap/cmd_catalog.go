package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/parser"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/storage"
)

// catalogCmd katalog bilan ishlash
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or export the listing catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Write the catalog to an Excel workbook",
	Long: `Writes the current catalog (file or built-in) to an .xlsx workbook
that can be edited and loaded back with --catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogExport,
}

// loadCatalog CATALOG_PATH dan yoki o'rnatilgan katalogdan
func loadCatalog(ctx context.Context) ([]entity.CatalogItem, error) {
	if cfg.CatalogPath == "" {
		return storage.SeedCatalog(), nil
	}

	items, err := parser.NewFileParser(log).ParseCatalog(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogPath, err)
	}
	log.Info("catalog loaded", "path", cfg.CatalogPath, "items", len(items))
	return items, nil
}

// deferredListings "load more" e'lonlari faqat o'rnatilgan katalog uchun
func deferredListings() []entity.CatalogItem {
	if cfg.CatalogPath != "" {
		return nil
	}
	return storage.MoreListings()
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	items, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tLOCATION")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Title, item.Category.DisplayName(), item.Price, item.Location)
	}
	return w.Flush()
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	items, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	defer f.Close()

	if err := parser.ExportCatalog(f, items); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(items), args[0])
	return nil
}

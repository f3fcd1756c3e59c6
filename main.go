// main.go
package main

import (
	"YT_comment_export/infrastructure/auth"
	"YT_comment_export/infrastructure/config"
	"YT_comment_export/infrastructure/exporter"
	"YT_comment_export/infrastructure/linklist"
	"YT_comment_export/infrastructure/logger"
	"YT_comment_export/infrastructure/provider"
	"YT_comment_export/infrastructure/token_manager"
	"YT_comment_export/internal/core/domain"
	"YT_comment_export/internal/core/usecases"
	"YT_comment_export/internal/handler/tui"
	"YT_comment_export/internal/timeconv"
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize Logger
	appLogger, err := logger.NewFileLogger(logger.Options{
		Dir:    cfg.Log.Dir,
		Prefix: cfg.Log.Prefix,
		Debug:  cfg.Log.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	ctx := context.Background()

	order, _ := cfg.OrderMode()
	normalizer, err := timeconv.LoadNormalizer(cfg.Scrape.Timezone)
	if err != nil {
		appLogger.Error("Failed to load timezone", err)
		fmt.Fprintf(os.Stderr, "Failed to load timezone: %v\n", err)
		return 1
	}

	// Initialize Services
	credentialService := auth.NewCredentialService(
		auth.Credentials{
			APIKey:           cfg.Youtube.APIKey,
			ClientSecretFile: cfg.Youtube.ClientSecretFile,
		},
		token_manager.NewTokenService(cfg.Youtube.TokenFile),
		appLogger,
	)

	clientOptions, err := credentialService.ClientOptions(ctx)
	if err != nil {
		appLogger.Error("Failed to build credentials", err)
		fmt.Fprintf(os.Stderr, "Failed to build credentials: %v\n", err)
		return 1
	}

	youtubeProvider, err := provider.NewYoutubeProvider(ctx, appLogger, clientOptions...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize youtube client: %v\n", err)
		return 1
	}

	sheetExporter := exporter.NewXLSXExporter(cfg.Scrape.OutputDir, normalizer, appLogger)
	scrapeUseCase := usecases.NewScrapeUseCase(youtubeProvider, sheetExporter, normalizer, appLogger, usecases.Options{
		MaxResults:      cfg.Scrape.MaxResults,
		Order:           order,
		ContinueOnError: cfg.Scrape.ContinueOnError,
	})

	links, err := linklist.NewFileLinkSource(cfg.Scrape.LinksFile).ReadLinks()
	if err != nil {
		appLogger.Error("Failed to read links", err)
		fmt.Fprintf(os.Stderr, "Failed to read links: %v\n", err)
		return 1
	}

	var summary domain.BatchSummary
	if cfg.UI.Mode == "tui" {
		model := tui.NewAppModel(ctx, scrapeUseCase, links, appLogger)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			appLogger.Error("Error running TUI program", err)
			fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
			return 1
		}
		if model.Summary() == nil {
			appLogger.Warning("Batch cancelled before finishing")
			return 1
		}
		summary = *model.Summary()
	} else {
		summary = tui.RunPlain(ctx, scrapeUseCase, links, os.Stdout)
	}

	if cfg.UI.OpenResults && summary.Exported() > 0 {
		if err := browser.OpenFile(cfg.Scrape.OutputDir); err != nil {
			appLogger.Error("Could not open output directory", err)
		}
	}

	appLogger.Info("Application finished.")

	if summary.Failed() > 0 {
		return 2
	}
	return 0
}

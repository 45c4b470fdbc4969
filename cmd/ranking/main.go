package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/galacticos-fc/ranking-service/internal/config"
	"github.com/galacticos-fc/ranking-service/internal/logging"
	"github.com/galacticos-fc/ranking-service/internal/mongoexport"
	"github.com/galacticos-fc/ranking-service/internal/ranking"
	"github.com/galacticos-fc/ranking-service/internal/renderer"
	"github.com/galacticos-fc/ranking-service/internal/snapshots"
	"github.com/galacticos-fc/ranking-service/internal/textgen"
)

func main() {
	cfg := config.Load()

	playersPath := flag.String("players", cfg.PlayersFile, "path to the players export JSON")
	outDir := flag.String("out", cfg.Snapshots.Folder, "directory receiving ranking.html and board.json")
	flag.Parse()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "galacticos-ranking",
		Version: "dev",
	})

	if err := run(context.Background(), *playersPath, *outDir, cfg.TextGen, logger); err != nil {
		logging.Error(logger, "ranking generation failed", err)
		os.Exit(1)
	}
}

// run builds the awards board from the export and writes the rendered
// page plus the board snapshot into outDir.
func run(ctx context.Context, playersPath, outDir string, tg config.TextGenConfig, logger *slog.Logger) error {
	docs, err := mongoexport.ParseFile(playersPath)
	if err != nil {
		return fmt.Errorf("load players export: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("players export %s: no player documents found", playersPath)
	}

	board := ranking.Build(docs, time.Now())

	phrases := textgen.New(textgen.Config{
		Provider:   tg.Provider,
		APIKey:     tg.GeminiAPIKey,
		Model:      tg.GeminiModel,
		Timeout:    tg.Timeout,
		MaxRetries: tg.MaxRetries,
	}, logger, nil)

	page, err := renderer.New(phrases, logger).Render(ctx, board)
	if err != nil {
		return fmt.Errorf("render ranking page: %w", err)
	}

	writer := snapshots.NewWriter(outDir, 0)
	if err := writer.WriteBoard(board); err != nil {
		return fmt.Errorf("write board snapshot: %w", err)
	}
	if err := writer.WritePage(page); err != nil {
		return fmt.Errorf("write ranking page: %w", err)
	}

	logging.Info(logger, "ranking page generated",
		logging.FieldCount, len(board.Players),
		"categories", len(board.Categories),
		"out", outDir)
	return nil
}

package factory

import (
	"io"
	"log/slog"

	"github.com/tomhutch/minesweeper-go/internal/dependencies/clock"
	"github.com/tomhutch/minesweeper-go/internal/dependencies/random"
	"github.com/tomhutch/minesweeper-go/internal/services/boardgen"
	"github.com/tomhutch/minesweeper-go/internal/services/flag"
	"github.com/tomhutch/minesweeper-go/internal/services/game"
	"github.com/tomhutch/minesweeper-go/internal/services/reveal"
	"github.com/tomhutch/minesweeper-go/internal/storage"
	"github.com/tomhutch/minesweeper-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardgenService *boardgen.Service
	RevealService   *reveal.Service
	FlagService     *flag.Service
	GameController  *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return newWithDependencies(memory.New(), clock.New(), random.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	boardgenService := boardgen.New(rnd, logger)
	revealService := reveal.New(logger)
	flagService := flag.New(logger)
	gameController := game.NewController(store, boardgenService, revealService, flagService, clk, rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		BoardgenService: boardgenService,
		RevealService:   revealService,
		FlagService:     flagService,
		GameController:  gameController,
	}
}

package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// game bundles everything the animation loop needs
type game struct {
	config   utils.Config
	board    *model.Board
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
	logger   *slog.Logger
}

// newRandomSource returns the generator used by random seeds
func newRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// seedBoard builds the starting board from the configured seeds
func seedBoard(config utils.Config, rng model.RandomSource) (*model.Board, error) {
	board := model.NewBoard(model.BoardWidth, model.BoardHeight)
	for i, s := range config.Seeds {
		pattern, err := model.ParsePattern(s.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "[seedBoard] seed %d", i)
		}
		if err = model.InsertPattern(board, pattern, s.X, s.Y, rng); err != nil {
			return nil, errors.Wrapf(err, "[seedBoard] seed %d", i)
		}
	}
	return board, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (*game, error) {
	board, err := seedBoard(config, newRandomSource(config.RandomSeed))
	if err != nil {
		return nil, err
	}
	return &game{
		config:   config,
		board:    board,
		renderer: model.NewTerminalRenderer(out),
		history:  model.NewHistory(config.StagnationWindow),
		stats:    utils.NewStats(),
		logger:   logger,
	}, nil
}

// displayGameInfo logs the initial game information
func (g *game) displayGameInfo() {
	g.logger.Info("Starting simulation",
		"width", g.board.GetWidth(),
		"height", g.board.GetHeight(),
		"seeds", len(g.config.Seeds),
		"living_cells", g.board.CountLivingCells(),
		"frame_rate", g.config.FrameRate,
		"max_generations", g.config.MaxGenerations,
	)
}

// updateGameState records the current generation in the history and reports
// whether this is the first generation of a stagnant run
func (g *game) updateGameState(generation int, wasStagnant bool) bool {
	stagnant := g.history.Record(g.board)
	if stagnant {
		g.stats.MarkStagnant()
		if !wasStagnant {
			g.logger.Info("Board is static or cycling",
				"generation", generation,
				"living_cells", g.board.CountLivingCells(),
			)
		}
	}
	return stagnant
}

// displayFinalStats logs a summary when the loop ends
func (g *game) displayFinalStats() {
	summary, err := g.stats.Summary()
	if err != nil {
		g.logger.Warn("Failed to gather stats", "error", err)
	}
	g.logger.Info("Simulation stopped",
		"generations", g.stats.TotalGenerations,
		"runtime", time.Since(g.stats.StartTime).Round(time.Millisecond),
		"gen_per_sec", g.stats.GenerationsPerSecond,
		"avg_population", g.stats.AveragePopulation,
		"step_count", summary.StepCount,
		"step_seconds", summary.StepSeconds,
		"stagnant_generations", summary.StagnantGenerations,
	)
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// frame is one generation handed from the simulation to the renderer
type frame struct {
	generation int
	board      *model.Board
}

// simulate computes generations and hands each one to the renderer, pacing
// them by FrameRate. Boards are never mutated after being sent.
func (g *game) simulate(ctx context.Context, frames chan<- frame) error {
	defer close(frames)

	stagnant := false
	for generation := 0; g.config.MaxGenerations == 0 || generation < g.config.MaxGenerations; generation++ {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case frames <- frame{generation: generation, board: g.board}:
		case <-ctx.Done():
			return nil
		}

		stagnant = g.updateGameState(generation, stagnant)

		start := time.Now()
		g.board = g.board.NextGeneration()
		g.stats.Update(generation+1, g.board.CountLivingCells(), time.Since(start))
		g.logger.Debug("Computed generation", "generation", generation+1, "living_cells", g.board.CountLivingCells())

		if err := sleep(ctx, g.config.FrameRate); err != nil {
			return nil
		}
	}
	return nil
}

// render writes every frame it receives; a write error is fatal
func (g *game) render(frames <-chan frame) error {
	for f := range frames {
		if g.config.ClearScreen {
			if err := g.renderer.Clear(); err != nil {
				g.logger.Warn("Failed to clear terminal", "error", err)
			}
		}
		if err := g.renderer.Display(f.generation, f.board); err != nil {
			return err
		}
	}
	return nil
}

// run renders generations until ctx is cancelled, MaxGenerations frames have
// been shown, or writing to the output fails. A failed write cancels the
// simulation, including a pending inter-frame sleep.
func (g *game) run(ctx context.Context) error {
	defer g.displayFinalStats()

	frames := make(chan frame)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return g.simulate(egCtx, frames)
	})
	eg.Go(func() error {
		return g.render(frames)
	})
	return eg.Wait()
}

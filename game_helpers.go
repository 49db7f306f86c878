package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type stopReason string

const (
	stopInterrupted    stopReason = "interrupted"
	stopMaxGenerations stopReason = "maximum generations reached"
	stopExtinct        stopReason = "extinction"
	stopStagnant       stopReason = "stagnation detected"
)

// game drives the simulation: step, render, sleep, repeat.
type game struct {
	config   utils.Config
	engine   model.Engine
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *utils.History
	out      io.Writer
	logger   *log.Logger
}

// summary describes how a run ended
type summary struct {
	Generations int
	Reason      stopReason
	Final       model.AliveSet
}

// newGame sets up the driver state for a validated configuration
func newGame(config utils.Config, out io.Writer, logger *log.Logger) *game {
	return &game{
		config:   config,
		engine:   model.NewEngine(config),
		renderer: model.NewTerminalRenderer(out),
		stats:    utils.NewStats(),
		history:  utils.NewHistory(config.StagnationWindow),
		out:      out,
		logger:   logger,
	}
}

// run renders the initial state, then advances one generation per tick
// until a stop condition holds or ctx is cancelled.
func (g *game) run(ctx context.Context, initial model.AliveSet) (summary, error) {
	fmt.Fprintln(g.out, "Starting the game at state:")
	if err := g.display(initial); err != nil {
		return summary{Final: initial}, err
	}
	g.history.Observe(initial.Hash())

	var (
		state         = initial
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		if ctx.Err() != nil {
			return summary{Generations: generation, Reason: stopInterrupted, Final: state}, nil
		}

		next, err := g.engine.Step(g.config.Height, g.config.Width, state)
		if err != nil {
			return summary{Generations: generation, Final: state}, errors.Wrapf(err, "[run] generation %d", generation+1)
		}
		state = next
		generation++

		if g.config.ClearScreen {
			if err := g.renderer.Clear(); err != nil {
				g.logger.Printf("clear screen: %v", err)
			}
		}
		if err := g.display(state); err != nil {
			return summary{Generations: generation, Final: state}, err
		}

		frameStart := time.Now()
		g.stats.Update(generation, state.Len(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart
		g.logger.Print(g.stats)

		stagnant := g.history.Observe(state.Hash())
		if reason, stop := checkStopConditions(generation, state.Len(), stagnant, g.config); stop {
			return summary{Generations: generation, Reason: reason, Final: state}, nil
		}

		if !sleepContext(ctx, g.config.TickInterval.Duration) {
			return summary{Generations: generation, Reason: stopInterrupted, Final: state}, nil
		}
	}
}

func (g *game) display(state model.AliveSet) error {
	if err := g.renderer.Display(g.config.Height, g.config.Width, state); err != nil {
		return err
	}
	_, err := fmt.Fprintln(g.out)
	return errors.Wrap(err, "[display] failed to write")
}

// checkStopConditions determines if the run should end after generation
func checkStopConditions(
	generation, livingCells int,
	stagnant bool,
	config utils.Config,
) (stopReason, bool) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return stopMaxGenerations, true
	}
	if config.StopWhenExtinct && livingCells == 0 {
		return stopExtinct, true
	}
	if config.StopWhenStagnant && stagnant {
		return stopStagnant, true
	}
	return "", false
}

// sleepContext waits for d and reports false if ctx ended first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

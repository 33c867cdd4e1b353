package racer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"justapengu.in/ledracer/pkg/gpiobutton"
	"justapengu.in/ledracer/pkg/neopixel"
)

// Game is the top level state machine: Countdown lights the descending
// pixel bar and blocks input, Playing runs the race engine and renderer
// every tick, Celebrating blinks the winner's color across the whole strip,
// then a new countdown begins. Games cycle forever, there is no terminal
// state. The loop is single threaded: advances are applied before the frame
// is rendered, and the frame is rendered before the next tick samples input.
type Game struct {
	engine   *Engine
	renderer *Renderer
	plugin   Plugin
	logger   Logger

	players    []*Player
	numButtons int

	phase      Phase
	phaseStart time.Time
	raceID     string
	winner     *Player
	timedOut   bool

	lastCountdown int

	ctx context.Context
	cfn context.CancelFunc
}

func NewGame(ctx context.Context, cfg *HardwareConfig, strip neopixel.Strip, reader gpiobutton.Reader, plugin Plugin, logger Logger) (*Game, error) {
	if plugin == nil {
		plugin = nilPlugin{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if strip.PixelCount() < TrackLength {
		return nil, fmt.Errorf("racer: strip reports %d pixels, the track needs %d", strip.PixelCount(), TrackLength)
	}

	players := make([]*Player, PlayerCount)

	for i := range players {
		players[i] = NewPlayer(i, DefaultColors[i%len(DefaultColors)])
	}

	ctx, cfn := context.WithCancel(ctx)

	game := &Game{
		engine:     NewEngine(players, cfg.ButtonPins, reader, plugin, logger),
		renderer:   NewRenderer(strip),
		plugin:     plugin,
		logger:     logger,
		players:    players,
		numButtons: len(cfg.ButtonPins),
		ctx:        ctx,
		cfn:        cfn,
	}

	if err := plugin.Init(logger); err != nil {
		return nil, err
	}

	return game, nil
}

// Run blocks until Stop is called, the context is cancelled or the display
// transport fails. On cancellation the display is cleared best-effort; a
// transport failure is returned as-is, there is no degraded mode for a
// visual game.
func (g *Game) Run() error {
	g.logger.Infof("Starting LED racer: track length %d, %d players, %d on buttons", TrackLength, len(g.players), g.numButtons)

	if err := g.enterCountdown(time.Now()); err != nil {
		return err
	}

	tick := time.NewTicker(tickInterval)
	defer tick.Stop()

	for {
		select {
		case <-g.ctx.Done():
			g.logger.Infof("Stopping game loop")

			if err := g.renderer.Blank(); err != nil {
				g.logger.WithError(err).Error("Could not clear the display on shutdown")
			}

			return nil
		case now := <-tick.C:
			if err := g.tick(now); err != nil {
				return err
			}
		}
	}
}

func (g *Game) Stop() {
	g.cfn()
}

func (g *Game) tick(now time.Time) error {
	switch g.phase {
	case PhaseCountdown:
		return g.tickCountdown(now)
	case PhasePlaying:
		return g.tickPlaying(now)
	case PhaseCelebrating:
		return g.tickCelebrating(now)
	default:
		return fmt.Errorf("racer: unknown phase: %d", g.phase)
	}
}

func (g *Game) setPhase(phase Phase, now time.Time) {
	oldPhase := g.phase
	g.phase = phase
	g.phaseStart = now

	if err := g.plugin.OnPhaseChange(oldPhase, phase); err != nil {
		g.logger.WithError(err).Error("On phase change plugin returned an error")
	}
}

func (g *Game) enterCountdown(now time.Time) error {
	g.setPhase(PhaseCountdown, now)

	g.raceID = uuid.New().String()
	g.winner = nil
	g.timedOut = false
	g.lastCountdown = 0
	g.engine.Reset(now)

	g.logger.Infof("New race %s, counting down from %d", g.raceID, countdownFrom)

	return g.renderer.Blank()
}

func (g *Game) tickCountdown(now time.Time) error {
	remaining := countdownRemaining(now.Sub(g.phaseStart))

	if remaining <= 0 {
		return g.enterPlaying(now)
	}

	if remaining != g.lastCountdown {
		g.logger.Debugf("Countdown: %d", remaining)
		g.lastCountdown = remaining
	}

	return g.renderer.DrawCountdown(remaining)
}

func (g *Game) enterPlaying(now time.Time) error {
	g.setPhase(PhasePlaying, now)

	if err := g.plugin.OnRaceStart(RaceInfo{RaceID: g.raceID, TrackLength: TrackLength, NumPlayers: len(g.players)}); err != nil {
		g.logger.WithError(err).Error("On race start plugin returned an error")
	}

	return nil
}

func (g *Game) tickPlaying(now time.Time) error {
	g.engine.Tick(now)

	if hasWinner := g.engine.HasWinner(); hasWinner || now.Sub(g.phaseStart) >= gameDuration {
		return g.endRace(now, !hasWinner)
	}

	return g.renderer.DrawFrame(g.players)
}

func (g *Game) endRace(now time.Time, timedOut bool) error {
	g.winner = g.engine.Winner()
	g.timedOut = timedOut

	duration := now.Sub(g.phaseStart)

	g.logger.Infof("Final standings for race %s:", g.raceID)

	for pos, line := range g.engine.Leaderboard() {
		g.logger.Infof("%d. Player %d - %s", pos+1, line.Player.Index, line)
	}

	if err := g.plugin.OnRaceEnd(RaceResult{
		RaceID:      g.raceID,
		WinnerIndex: g.winner.Index,
		NumLaps:     g.winner.Laps,
		Position:    g.winner.Position,
		Duration:    duration,
		TimedOut:    timedOut,
	}); err != nil {
		g.logger.WithError(err).Error("On race end plugin returned an error")
	}

	g.setPhase(PhaseCelebrating, now)

	return nil
}

func (g *Game) tickCelebrating(now time.Time) error {
	elapsed := now.Sub(g.phaseStart)

	if elapsed >= celebrationDuration {
		if err := g.renderer.Blank(); err != nil {
			return err
		}

		return g.enterCountdown(now)
	}

	if blinkOn(elapsed) {
		return g.renderer.DrawSolid(g.winner.Color)
	}

	return g.renderer.Blank()
}

func countdownRemaining(elapsed time.Duration) int {
	return countdownFrom - int(elapsed/countdownStep)
}

// blinkOn runs on its own timer, independent of the frame cadence: the
// strip is lit for the first blink interval and toggles every interval
// after that.
func blinkOn(elapsed time.Duration) bool {
	return (elapsed/blinkInterval)%2 == 0
}

package racer

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"justapengu.in/ledracer/pkg/gpiobutton"
)

type button struct {
	pin       int
	debouncer *Debouncer
}

// Engine advances the players each tick and answers win and ranking
// queries. Player slots with a button pin are human controlled, the
// remaining slots advance automatically by a small random step.
type Engine struct {
	players []*Player
	buttons []button
	reader  gpiobutton.Reader
	rand    *rand.Rand
	plugin  Plugin
	logger  Logger

	lapStart []time.Time
}

func NewEngine(players []*Player, buttonPins []int, reader gpiobutton.Reader, plugin Plugin, logger Logger) *Engine {
	engine := &Engine{
		players:  players,
		reader:   reader,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		plugin:   plugin,
		logger:   logger,
		lapStart: make([]time.Time, len(players)),
	}

	for _, pin := range buttonPins {
		engine.buttons = append(engine.buttons, button{pin: pin, debouncer: NewDebouncer()})
	}

	return engine
}

// Reset zeroes every player's race state ready for a new race.
func (e *Engine) Reset(now time.Time) {
	for i, player := range e.players {
		player.Reset()
		e.lapStart[i] = now
	}

	for i := range e.buttons {
		e.buttons[i].debouncer = NewDebouncer()
	}
}

// Tick applies one round of movement. Every human slot advances by the
// fixed step if its button fired a press edge this tick, every automatic
// slot advances unconditionally by a random step in [botStepMin, botStepMax).
func (e *Engine) Tick(now time.Time) {
	for i, player := range e.players {
		if i < len(e.buttons) {
			b := e.buttons[i]

			if b.debouncer.Pressed(e.reader.Level(b.pin)) {
				e.advance(player, humanStep, now)
			}
		} else {
			e.advance(player, e.rand.Intn(botStepMax-botStepMin)+botStepMin, now)
		}
	}
}

func (e *Engine) advance(player *Player, steps int, now time.Time) {
	if !player.Advance(steps) {
		return
	}

	lap := Lap{
		Number:        player.Laps,
		LapTime:       now.Sub(e.lapStart[player.Index]),
		CompletedTime: now,
	}

	e.lapStart[player.Index] = now

	if err := e.plugin.OnLapCompleted(player.Index, lap); err != nil {
		e.logger.WithError(err).Error("On lap completed plugin returned an error")
	}
}

// HasWinner reports whether any player has reached the winning lap count.
// It does not pick a player, several can cross the threshold in one tick.
func (e *Engine) HasWinner() bool {
	for _, player := range e.players {
		if player.Laps >= WinningLaps {
			return true
		}
	}

	return false
}

// Winner returns the furthest advanced player: greatest laps, ties broken
// by greatest position, remaining ties by lowest index. A later player must
// strictly beat the current leader to replace it, so the scan is
// deterministic for any input. The same ranking serves both lap-count wins
// and game-duration timeouts.
func (e *Engine) Winner() *Player {
	winner := e.players[0]

	for _, player := range e.players[1:] {
		if player.Laps > winner.Laps || (player.Laps == winner.Laps && player.Position > winner.Position) {
			winner = player
		}
	}

	return winner
}

type LeaderboardLine struct {
	Player   *Player
	NumLaps  int
	Position int
}

func (l *LeaderboardLine) String() string {
	return fmt.Sprintf("%d laps, position %d", l.NumLaps, l.Position)
}

// Leaderboard returns all players ranked by the Winner criteria.
func (e *Engine) Leaderboard() []*LeaderboardLine {
	var leaderboard []*LeaderboardLine

	for _, player := range e.players {
		leaderboard = append(leaderboard, &LeaderboardLine{
			Player:   player,
			NumLaps:  player.Laps,
			Position: player.Position,
		})
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		lineI, lineJ := leaderboard[i], leaderboard[j]

		if lineI.NumLaps == lineJ.NumLaps {
			return lineI.Position > lineJ.Position
		}

		return lineI.NumLaps > lineJ.NumLaps
	})

	return leaderboard
}

package racer

import (
	"time"

	"github.com/hako/durafmt"
)

// LogPlugin writes the game's lifecycle events to the injected Logger. It
// is the default plugin wired by cmd/ledRacer and doubles as the
// observability consumer of the lap-completion notifications.
type LogPlugin struct {
	logger Logger
}

func NewLogPlugin() *LogPlugin {
	return &LogPlugin{}
}

func (p *LogPlugin) Init(logger Logger) error {
	p.logger = logger

	return nil
}

func (p *LogPlugin) OnRaceStart(race RaceInfo) error {
	p.logger.Infof("Race %s is live: %d players on a %d pixel track", race.RaceID, race.NumPlayers, race.TrackLength)

	return nil
}

func (p *LogPlugin) OnPhaseChange(oldPhase, newPhase Phase) error {
	p.logger.Debugf("Phase change: %s -> %s", oldPhase, newPhase)

	return nil
}

func (p *LogPlugin) OnLapCompleted(playerIndex int, lap Lap) error {
	p.logger.Infof("Player %d completed lap %d in %s", playerIndex, lap.Number, lap.LapTime)

	return nil
}

func (p *LogPlugin) OnRaceEnd(result RaceResult) error {
	duration := durafmt.Parse(result.Duration.Round(time.Second))

	if result.TimedOut {
		p.logger.Infof("Race %s timed out after %s, furthest advanced is player %d (%d laps, position %d)", result.RaceID, duration, result.WinnerIndex, result.NumLaps, result.Position)
	} else {
		p.logger.Infof("Race %s won by player %d in %s (%d laps)", result.RaceID, result.WinnerIndex, duration, result.NumLaps)
	}

	return nil
}

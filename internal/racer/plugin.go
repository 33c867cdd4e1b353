package racer

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type RaceInfo struct {
	RaceID      string
	TrackLength int
	NumPlayers  int
}

type RaceResult struct {
	RaceID      string
	WinnerIndex int
	NumLaps     int
	Position    int
	Duration    time.Duration
	TimedOut    bool
}

// Plugin receives game lifecycle callbacks. Callbacks are dispatched from
// the game loop goroutine; implementations that do slow work should hand it
// off themselves.
type Plugin interface {
	Init(logger Logger) error

	OnRaceStart(race RaceInfo) error
	OnPhaseChange(oldPhase, newPhase Phase) error
	OnLapCompleted(playerIndex int, lap Lap) error
	OnRaceEnd(result RaceResult) error
}

type multiPlugin struct {
	plugins []Plugin
}

func MultiPlugin(plugins ...Plugin) Plugin {
	return &multiPlugin{plugins: plugins}
}

func (mp *multiPlugin) Init(logger Logger) error {
	g, _ := errgroup.WithContext(context.Background())

	for _, plugin := range mp.plugins {
		plugin := plugin
		g.Go(func() error {
			return plugin.Init(logger)
		})
	}

	return g.Wait()
}

func (mp *multiPlugin) OnRaceStart(race RaceInfo) error {
	g, _ := errgroup.WithContext(context.Background())

	for _, plugin := range mp.plugins {
		plugin := plugin
		g.Go(func() error {
			return plugin.OnRaceStart(race)
		})
	}

	return g.Wait()
}

func (mp *multiPlugin) OnPhaseChange(oldPhase, newPhase Phase) error {
	g, _ := errgroup.WithContext(context.Background())

	for _, plugin := range mp.plugins {
		plugin := plugin
		g.Go(func() error {
			return plugin.OnPhaseChange(oldPhase, newPhase)
		})
	}

	return g.Wait()
}

func (mp *multiPlugin) OnLapCompleted(playerIndex int, lap Lap) error {
	g, _ := errgroup.WithContext(context.Background())

	for _, plugin := range mp.plugins {
		plugin := plugin
		g.Go(func() error {
			return plugin.OnLapCompleted(playerIndex, lap)
		})
	}

	return g.Wait()
}

func (mp *multiPlugin) OnRaceEnd(result RaceResult) error {
	g, _ := errgroup.WithContext(context.Background())

	for _, plugin := range mp.plugins {
		plugin := plugin
		g.Go(func() error {
			return plugin.OnRaceEnd(result)
		})
	}

	return g.Wait()
}

type nilPlugin struct{}

func (nilPlugin) Init(_ Logger) error               { return nil }
func (nilPlugin) OnRaceStart(_ RaceInfo) error      { return nil }
func (nilPlugin) OnPhaseChange(_, _ Phase) error    { return nil }
func (nilPlugin) OnLapCompleted(_ int, _ Lap) error { return nil }
func (nilPlugin) OnRaceEnd(_ RaceResult) error      { return nil }

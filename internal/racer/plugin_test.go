package racer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"justapengu.in/ledracer/pkg/gpiobutton"
	"justapengu.in/ledracer/pkg/neopixel"
)

type recordingPlugin struct {
	nilPlugin

	raceStarts   []RaceInfo
	phaseChanges []Phase
	laps         []Lap
	raceEnds     []RaceResult
}

func (r *recordingPlugin) OnRaceStart(race RaceInfo) error {
	r.raceStarts = append(r.raceStarts, race)
	return nil
}

func (r *recordingPlugin) OnPhaseChange(oldPhase, newPhase Phase) error {
	r.phaseChanges = append(r.phaseChanges, newPhase)
	return nil
}

func (r *recordingPlugin) OnLapCompleted(playerIndex int, lap Lap) error {
	r.laps = append(r.laps, lap)
	return nil
}

func (r *recordingPlugin) OnRaceEnd(result RaceResult) error {
	r.raceEnds = append(r.raceEnds, result)
	return nil
}

type failingPlugin struct {
	nilPlugin
	err error
}

func (f *failingPlugin) OnRaceEnd(_ RaceResult) error {
	return f.err
}

func TestMultiPluginDispatchesToEveryPlugin(t *testing.T) {
	first := &recordingPlugin{}
	second := &recordingPlugin{}

	plugin := MultiPlugin(first, second)

	if err := plugin.Init(logrus.New()); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnRaceStart(RaceInfo{RaceID: "race-1"}); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnLapCompleted(0, Lap{Number: 1}); err != nil {
		t.Fatal(err)
	}

	for i, recorder := range []*recordingPlugin{first, second} {
		if len(recorder.raceStarts) != 1 || recorder.raceStarts[0].RaceID != "race-1" {
			t.Errorf("plugin %d: expected one race start for race-1, got %+v", i, recorder.raceStarts)
		}

		if len(recorder.laps) != 1 {
			t.Errorf("plugin %d: expected one lap completion, got %d", i, len(recorder.laps))
		}
	}
}

func TestMultiPluginAggregatesErrors(t *testing.T) {
	recorder := &recordingPlugin{}
	failing := &failingPlugin{err: errors.New("plugin exploded")}

	plugin := MultiPlugin(failing, recorder)

	if err := plugin.OnRaceEnd(RaceResult{}); err == nil {
		t.Error("expected a failing plugin's error to surface through the fan-out")
	}

	// the other plugins still receive the event
	if len(recorder.raceEnds) != 1 {
		t.Errorf("expected the healthy plugin to be called despite the failure, got %d calls", len(recorder.raceEnds))
	}
}

func TestLogPluginHandlesFullLifecycle(t *testing.T) {
	plugin := NewLogPlugin()

	if err := plugin.Init(logrus.New()); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnRaceStart(RaceInfo{RaceID: "race-1", TrackLength: TrackLength, NumPlayers: PlayerCount}); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnPhaseChange(PhaseCountdown, PhasePlaying); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnLapCompleted(0, Lap{Number: 1, LapTime: time.Second * 9}); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnRaceEnd(RaceResult{RaceID: "race-1", WinnerIndex: 2, NumLaps: 3, Duration: time.Second * 40}); err != nil {
		t.Fatal(err)
	}

	if err := plugin.OnRaceEnd(RaceResult{RaceID: "race-1", WinnerIndex: 1, Position: 55, Duration: gameDuration, TimedOut: true}); err != nil {
		t.Fatal(err)
	}
}

func TestGameDispatchesLifecycleThroughMultiPlugin(t *testing.T) {
	first := &recordingPlugin{}
	second := &recordingPlugin{}

	strip := neopixel.NewMemory(TrackLength)

	game, err := NewGame(context.Background(), DefaultHardwareConfig(), strip, gpiobutton.NewFake(), MultiPlugin(first, second), logrus.New())

	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()

	if err := game.enterCountdown(start); err != nil {
		t.Fatal(err)
	}

	if err := game.enterPlaying(start); err != nil {
		t.Fatal(err)
	}

	game.players[0].Laps = WinningLaps

	if err := game.tick(start.Add(time.Second)); err != nil {
		t.Fatal(err)
	}

	for i, recorder := range []*recordingPlugin{first, second} {
		if len(recorder.raceStarts) != 1 {
			t.Errorf("plugin %d: expected one race start, got %d", i, len(recorder.raceStarts))
		}

		if len(recorder.raceEnds) != 1 || recorder.raceEnds[0].WinnerIndex != 0 {
			t.Errorf("plugin %d: expected one race end won by player 0, got %+v", i, recorder.raceEnds)
		}

		expectedPhases := []Phase{PhaseCountdown, PhasePlaying, PhaseCelebrating}

		if len(recorder.phaseChanges) != len(expectedPhases) {
			t.Fatalf("plugin %d: expected %d phase changes, got %v", i, len(expectedPhases), recorder.phaseChanges)
		}

		for j, phase := range expectedPhases {
			if recorder.phaseChanges[j] != phase {
				t.Errorf("plugin %d: expected phase change %d to be %s, got %s", i, j, phase, recorder.phaseChanges[j])
			}
		}
	}
}

package racer

type Phase uint8

const (
	PhaseCountdown Phase = iota
	PhasePlaying
	PhaseCelebrating
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "Countdown"
	case PhasePlaying:
		return "Playing"
	case PhaseCelebrating:
		return "Celebrating"
	default:
		return "Unknown"
	}
}

package gpiobutton

import "testing"

func TestFakeUnsetPinsReadIdle(t *testing.T) {
	fake := NewFake()

	if !fake.Level(5) {
		t.Error("an unset pin must read high, matching the pull-up idle state")
	}
}

func TestFakePressAndRelease(t *testing.T) {
	fake := NewFake()

	fake.Press(5)

	if fake.Level(5) {
		t.Error("a pressed pin must read low")
	}

	if !fake.Level(6) {
		t.Error("pressing one pin must not affect another")
	}

	fake.Release(5)

	if !fake.Level(5) {
		t.Error("a released pin must read high again")
	}
}

package engine

import "errors"

var (
	// ErrGameRunning is returned by Run when the game is already running and by
	// SetRenderer while it is running.
	ErrGameRunning = errors.New("engine: game is running")

	// ErrGameNotRunning is returned by Pause and QueueInput when the game is
	// paused, not started or over.
	ErrGameNotRunning = errors.New("engine: game is not running")

	// ErrGameOver is returned by Run once a spawned piece found no room.
	ErrGameOver = errors.New("engine: game is over")

	// ErrGameClosed is returned by every call after Close. A closed game is
	// also not running, so it matches ErrGameNotRunning under errors.Is.
	ErrGameClosed error = closedError{}
)

type closedError struct{}

func (closedError) Error() string { return "engine: game is closed" }

func (closedError) Is(target error) bool { return target == ErrGameNotRunning }

package sched

import "errors"

var (
	// ErrInvalidQuantum is returned by New when the quantum is not positive.
	ErrInvalidQuantum = errors.New("time quantum must be positive")
	// ErrInvalidBurstTime is returned by Add when the burst time is not positive.
	ErrInvalidBurstTime = errors.New("burst time must be positive")
	// ErrAlreadyStarted is returned by Add once the simulation has begun.
	ErrAlreadyStarted = errors.New("scheduler already started")
)

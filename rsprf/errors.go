package rsprf

import (
	"errors"

	"github.com/sp301415/ringswitch-prf/polyring"
)

var (
	// ErrInvalidParameters is returned when a parameter set fails validation.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrInputTooLong is returned when an input exceeds the configured bit length.
	ErrInputTooLong = errors.New("input too long")
	// ErrDimensionMismatch is returned when matrix shapes are incompatible.
	ErrDimensionMismatch = polyring.ErrDimensionMismatch
	// ErrRingMismatch is returned when elements of different rings are combined.
	ErrRingMismatch = polyring.ErrRingMismatch
)

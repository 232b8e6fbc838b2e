package rsprf

import "fmt"

// SecurityLevel is a target security level, in bits.
type SecurityLevel int

const (
	// SecurityLevelToy selects a tiny parameter set for tests and examples.
	// It offers no security.
	SecurityLevelToy SecurityLevel = 0
	// SecurityLevel128 targets 128-bit security.
	SecurityLevel128 SecurityLevel = 128
	// SecurityLevel192 targets 192-bit security.
	SecurityLevel192 SecurityLevel = 192
	// SecurityLevel256 targets 256-bit security.
	SecurityLevel256 SecurityLevel = 256
)

// paramsToy returns the toy parameters set.
func paramsToy() ParametersLiteral {
	return ParametersLiteral{
		N: 4,
		Q: 17,

		NOut: 2,
		P:    5,

		M: 4,
		L: 2,

		InputBits: 3,
	}
}

// paramsLevel128 returns the parameters set targeting 128-bit security.
func paramsLevel128() ParametersLiteral {
	return ParametersLiteral{
		N: 1 << 9,
		Q: 8380417,

		NOut: 1 << 6,
		P:    1 << 8,

		M: 4,
		L: 1,

		InputBits: 64,
	}
}

// paramsLevel192 returns the parameters set targeting 192-bit security.
func paramsLevel192() ParametersLiteral {
	return ParametersLiteral{
		N: 1 << 10,
		Q: 8380417,

		NOut: 1 << 7,
		P:    1 << 10,

		M: 4,
		L: 1,

		InputBits: 128,
	}
}

// paramsLevel256 returns the parameters set targeting 256-bit security.
func paramsLevel256() ParametersLiteral {
	return ParametersLiteral{
		N: 1 << 11,
		Q: 2013265921,

		NOut: 1 << 8,
		P:    1 << 12,

		M: 4,
		L: 1,

		InputBits: 128,
	}
}

// PresetLiteral returns a fresh copy of the preset ParametersLiteral for the given security level.
// Modifying the returned value does not affect the presets.
func PresetLiteral(level SecurityLevel) (ParametersLiteral, error) {
	switch level {
	case SecurityLevelToy:
		return paramsToy(), nil
	case SecurityLevel128:
		return paramsLevel128(), nil
	case SecurityLevel192:
		return paramsLevel192(), nil
	case SecurityLevel256:
		return paramsLevel256(), nil
	}
	return ParametersLiteral{}, fmt.Errorf("%w: unsupported security level %d", ErrInvalidParameters, level)
}

// DeriveParameters returns the compiled preset parameters for the given security level.
func DeriveParameters(level SecurityLevel) (Parameters, error) {
	literal, err := PresetLiteral(level)
	if err != nil {
		return Parameters{}, err
	}
	return literal.Compile()
}

// Package generr defines the error classes shared by the mapping
// compiler. Every failure is one of three kinds: malformed source text,
// bad configuration, or a degree that cannot be placed on the grid.
// Callers classify with errors.Is against the sentinels.
package generr

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrConfig   = errors.New("config error")
	ErrEmission = errors.New("emission error")
)

func Syntaxf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

func Configf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func Emissionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEmission, fmt.Sprintf(format, args...))
}

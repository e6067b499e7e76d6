package types

import "fmt"

// ErrPresetNotFound is returned when a named pattern preset is not configured
type ErrPresetNotFound struct {
	Name string
}

func (e ErrPresetNotFound) Error() string {
	return fmt.Sprintf("no pattern preset named %q", e.Name)
}

// ErrInvalidTarget is returned when a rendered name cannot be used as a file name
type ErrInvalidTarget struct {
	Name   string
	Reason string
}

func (e ErrInvalidTarget) Error() string {
	return fmt.Sprintf("invalid target name %q: %s", e.Name, e.Reason)
}

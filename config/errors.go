package config

import (
	"fmt"
)

type OptionError struct {
	Chart  string
	Option string
	Value  string
	Err    error
}

func (e OptionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("chart %s: option %s not recognized", e.Chart, e.Option)
	}
	if e.Err != nil {
		return fmt.Sprintf("chart %s: invalid value %q for option %s: %s", e.Chart, e.Value, e.Option, e.Err)
	}
	return fmt.Sprintf("chart %s: invalid value %q for option %s", e.Chart, e.Value, e.Option)
}

func (e OptionError) Unwrap() error {
	return e.Err
}

type DecodeError struct {
	File string
	Err  error
}

func (e DecodeError) Error() string {
	if e.File == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.File, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

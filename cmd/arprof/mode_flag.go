package main

import "github.com/arprax/algos/profiler"

// modeValue adapts profiler.Mode to the pflag.Value interface so
// --mode rejects unknown aggregation names at parse time.
type modeValue profiler.Mode

func (m *modeValue) String() string {
	return profiler.Mode(*m).String()
}

func (m *modeValue) Set(s string) error {
	parsed, err := profiler.ParseMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(parsed)
	return nil
}

func (m *modeValue) Type() string {
	return "mode"
}

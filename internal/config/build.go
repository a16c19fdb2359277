package config

import (
	"errors"
	"fmt"
	"os"
)

// IgnoreCaseEnv enables case-insensitive search when present, whatever its value.
const IgnoreCaseEnv = "CASE_INSENSITIVE"

var ErrMissingArgument = errors.New("missing argument")

// Build assembles a Config from process arguments. args[0] is the program
// name and is skipped.
func Build(args []string) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return Config{}, fmt.Errorf("%w: didn't get a query string", ErrMissingArgument)
	}
	if len(args) < 2 {
		return Config{}, fmt.Errorf("%w: didn't get a file path", ErrMissingArgument)
	}
	_, ignoreCase := os.LookupEnv(IgnoreCaseEnv)
	return Config{
		Query:      args[0],
		Target:     args[1],
		IgnoreCase: ignoreCase,
	}, nil
}

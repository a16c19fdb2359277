package executil

import (
	"bytes"
	"errors"
	"os/exec"
)

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// Run spawns name with args and waits for it to exit. A non-zero exit code
// is reported in Result.Code, not as an error; err is set only when the
// process could not be started.
func Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	code := 0
	if err != nil {
		var e *exec.ExitError
		if !errors.As(err, &e) {
			return Result{}, err
		}
		code = e.ExitCode()
	}
	return Result{Stdout: out.String(), Stderr: errb.String(), Code: code}, nil
}

// Package ant extracts targets from Ant buildfiles, through `ant -p` or by reading the XML.
package ant

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"

	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolRunner = (*Runner)(nil)

// Runner invokes the Ant executable in project help mode.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// ListTargets runs `command -f buildFile -p` in the buildfile's directory and returns
// its combined output. Empty output counts as a failure.
func (r *Runner) ListTargets(ctx context.Context, command, buildFile string) ([]byte, error) {
	// #nosec G204 -- command comes from settings, the buildfile from the workspace scan
	cmd := exec.CommandContext(ctx, command, "-f", buildFile, "-p")
	cmd.Dir = filepath.Dir(buildFile)

	out, err := cmd.CombinedOutput()
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrToolInvocationFailed.Error()), "command", command)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
		}
		return nil, zerr.With(wrapped, "build_file", buildFile)
	}

	if len(bytes.TrimSpace(out)) == 0 {
		return nil, zerr.With(domain.ErrToolOutputEmpty, "build_file", buildFile)
	}
	return out, nil
}

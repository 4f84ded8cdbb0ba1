// Package detector inspects the host environment: platform, terminal and CI.
package detector

import (
	"os"
	"runtime"

	"golang.org/x/term"
)

// OutputMode selects how task output reaches the user.
type OutputMode int

const (
	// ModeAuto picks ModePTY on interactive terminals and ModePipe otherwise.
	ModeAuto OutputMode = iota
	// ModePTY runs tasks attached to a pseudo terminal.
	ModePTY
	// ModePipe runs tasks with plain pipes.
	ModePipe
)

// Environment describes the host antscan runs on.
type Environment struct {
	// GOOS is the host operating system, as reported by runtime.GOOS.
	GOOS string
	// Interactive is set when stdout is a terminal.
	Interactive bool
	// CI is set when a CI environment variable is present.
	CI bool
}

// IsWindows reports whether the host is Windows.
func (e Environment) IsWindows() bool {
	return e.GOOS == "windows"
}

// OutputMode returns the mode ModeAuto resolves to on this host.
func (e Environment) OutputMode() OutputMode {
	if !e.Interactive || e.CI || e.IsWindows() {
		return ModePipe
	}
	return ModePTY
}

// DetectEnvironment inspects the current process.
func DetectEnvironment() Environment {
	ci := os.Getenv("CI")
	return Environment{
		GOOS:        runtime.GOOS,
		Interactive: term.IsTerminal(int(os.Stdout.Fd())),
		CI:          ci == "true" || ci == "1",
	}
}

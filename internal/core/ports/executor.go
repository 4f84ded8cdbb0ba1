// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/antscan/internal/core/domain"
)

// Executor defines the interface for running task descriptors.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the task's shell execution in its working directory.
	//
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, task *domain.Task, stdout, stderr io.Writer) error
}

package ports

import (
	"context"

	"go.trai.ch/antscan/internal/core/domain"
)

//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks

// TargetExtractor produces the target mapping of one buildfile.
type TargetExtractor interface {
	// Extract never fails: problems are reported through an empty extraction and its Reason.
	Extract(ctx context.Context, path string) domain.Extraction
}

// TargetParser turns raw bytes into a target mapping.
type TargetParser interface {
	Parse(data []byte) (*domain.Targets, error)
}

// ToolRunner invokes the external build tool in project help mode.
type ToolRunner interface {
	// ListTargets runs command against buildFile and returns its combined output.
	ListTargets(ctx context.Context, command, buildFile string) ([]byte, error)
}

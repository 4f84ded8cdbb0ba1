package ant

import (
	"context"
	"fmt"

	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetExtractor = (*Extractor)(nil)

// Extractor implements ports.TargetExtractor. With tool mode on it asks Ant for the
// target list and falls back to reading the buildfile when Ant is unavailable.
type Extractor struct {
	fs     ports.FileSystem
	runner ports.ToolRunner
	tracer ports.Tracer
	logger ports.Logger

	useTool bool
	command string

	toolParser   ports.TargetParser
	markupParser ports.TargetParser
}

// NewExtractor creates an Extractor for the given settings. goos selects the Ant command.
func NewExtractor(
	fsys ports.FileSystem,
	runner ports.ToolRunner,
	tracer ports.Tracer,
	logger ports.Logger,
	settings *domain.Settings,
	goos string,
) *Extractor {
	return &Extractor{
		fs:           fsys,
		runner:       runner,
		tracer:       tracer,
		logger:       logger,
		useTool:      settings.UseAnt,
		command:      domain.AntExecutable(settings.PathToAnt, goos),
		toolParser:   ToolOutputParser{},
		markupParser: BuildFileParser{},
	}
}

// Extract returns the targets of the buildfile at path. Failures never escape: they
// leave an empty extraction whose Reason says what went wrong.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Extraction {
	ctx, span := e.tracer.Start(ctx, "extract")
	defer span.End()
	span.SetAttribute("build_file", path)

	result := e.extract(ctx, path)

	span.SetAttribute("source", result.Source)
	span.SetAttribute("targets", result.Targets.Len())
	span.SetAttribute("target_names", result.Targets.DisplayNames())
	if result.Reason != nil {
		span.RecordError(result.Reason)
	}

	switch result.Source {
	case domain.SourceEmpty:
		e.logger.Debug(fmt.Sprintf("no targets in %s: %v", path, result.Reason))
	default:
		for target := range result.Targets.All() {
			e.logger.Debug(fmt.Sprintf("found target %q (%s) in %s", target.DisplayName, result.Source, path))
		}
	}
	return result
}

func (e *Extractor) extract(ctx context.Context, path string) domain.Extraction {
	in, err := e.read(ctx, path)
	if err != nil {
		return domain.EmptyExtraction(err)
	}

	parser := e.markupParser
	if in.source == domain.SourceTool {
		parser = e.toolParser
	}

	targets, err := parser.Parse(in.data)
	if err != nil {
		return domain.EmptyExtraction(zerr.With(err, "build_file", path))
	}
	if targets.Len() == 0 {
		return domain.EmptyExtraction(zerr.With(domain.ErrNoTargets, "build_file", path))
	}

	return domain.Extraction{
		Targets: targets,
		Source:  in.source,
		Reason:  in.fallback,
	}
}

type input struct {
	source domain.ExtractionSource
	data   []byte
	// fallback is the tool failure that sent extraction to the buildfile.
	fallback error
}

// read decides where targets come from. Tool output wins whenever tool mode is on and
// Ant printed something; otherwise the buildfile itself is read.
func (e *Extractor) read(ctx context.Context, path string) (input, error) {
	var toolErr error
	if e.useTool {
		out, err := e.runner.ListTargets(ctx, e.command, path)
		if err == nil {
			return input{source: domain.SourceTool, data: out}, nil
		}
		e.logger.Debug(fmt.Sprintf("%s -p failed for %s, reading buildfile instead", e.command, path))
		toolErr = err
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		return input{}, zerr.With(zerr.Wrap(err, domain.ErrBuildFileReadFailed.Error()), "build_file", path)
	}
	return input{source: domain.SourceMarkup, data: data, fallback: toolErr}, nil
}

package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "endorse/audit"

// Bucket names reported to a Recorder.
const (
	BucketAuthored = "authored"
	BucketTouched  = "touched"
	BucketIgnored  = "ignored"
)

// Recorder receives one call per classified commit.
type Recorder interface {
	RecordCommit(ctx context.Context, bucket string, trailers []string)
}

// Options configures an Auditor.
type Options struct {
	Targets      Targets
	Match        MatchMode
	Report       ReportMode
	SelfTrailers SelfTrailers

	// OnAuthored, if set, is called for each commit whose author matches, as it is found.
	OnAuthored func(Commit)

	Logger   *slog.Logger
	Tracer   trace.Tracer
	Recorder Recorder
}

// Auditor drives one pass over a commit stream.
type Auditor struct {
	opts       Options
	classifier *Classifier
	logger     *slog.Logger
	tracer     trace.Tracer
}

// New creates an Auditor. Logger and Tracer default to discarding implementations.
func New(opts Options) (*Auditor, error) {
	if opts.Targets.Len() == 0 {
		return nil, ErrNoTargets
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}

	return &Auditor{
		opts:       opts,
		classifier: NewClassifier(opts.Targets, opts.SelfTrailers),
		logger:     logger,
		tracer:     tracer,
	}, nil
}

// Classify matches the author and extracts the trailers of one commit.
func (a *Auditor) Classify(commit Commit) Result {
	authored := a.opts.Targets.Matches(commit.AuthorEmail, a.opts.Match)

	self := ""
	if authored {
		self = commit.AuthorEmail
	}

	return Result{
		Authored: authored,
		Kinds:    a.classifier.Classify(commit.Message, commit.HasMessage, self),
	}
}

// Run consumes stream to the end and returns the final totals.
// Any stream error aborts the run and no totals are returned.
func (a *Auditor) Run(ctx context.Context, stream *Stream) (Totals, error) {
	ctx, span := a.tracer.Start(ctx, "audit.run", trace.WithAttributes(
		attribute.Int("audit.targets", a.opts.Targets.Len()),
		attribute.String("audit.match", a.opts.Match.String()),
		attribute.String("audit.report", a.opts.Report.String()),
	))
	defer span.End()

	agg := NewAggregator(a.opts.Report)

	for {
		commit, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "walk failed")

			return Totals{}, err
		}

		if !commit.HasMessage {
			a.logger.DebugContext(ctx, "commit message unreadable", "hash", commit.Hash.String())
		}

		res := a.Classify(commit)

		if res.Authored && a.opts.OnAuthored != nil {
			a.opts.OnAuthored(commit)
		}

		err = agg.Add(res)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invariant violated")

			return Totals{}, fmt.Errorf("commit %s: %w", commit.Hash, err)
		}

		a.record(ctx, res)
	}

	totals := agg.Totals()
	if totals.Scanned != stream.Scanned() {
		return Totals{}, fmt.Errorf("%w: aggregated %d of %d streamed commits",
			ErrInvariant, totals.Scanned, stream.Scanned())
	}

	span.SetAttributes(
		attribute.Int("audit.scanned", totals.Scanned),
		attribute.Int("audit.authored", totals.Authored),
	)

	a.logger.DebugContext(ctx, "audit finished",
		"scanned", totals.Scanned, "authored", totals.Authored, "trailers", totals.TrailerSum())

	return totals, nil
}

func (a *Auditor) record(ctx context.Context, res Result) {
	if a.opts.Recorder == nil {
		return
	}

	bucket := BucketIgnored

	switch {
	case res.Authored:
		bucket = BucketAuthored
	case !res.Kinds.Empty():
		bucket = BucketTouched
	}

	kinds := res.Kinds.Kinds()
	names := make([]string, len(kinds))

	for i, k := range kinds {
		names[i] = k.String()
	}

	a.opts.Recorder.RecordCommit(ctx, bucket, names)
}

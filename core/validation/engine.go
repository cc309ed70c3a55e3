package validation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Validator is implemented once per content type. Validate drives the
// three stages in order; implementations never call each other's stages.
type Validator interface {
	// Name identifies the content type (e.g. "post").
	Name() string

	// SourceData reads the local dataset. It must fill counts and sample.
	SourceData(ctx context.Context) (*Dataset, error)

	// DestinationData queries the remote side using identifiers derived
	// from the already fetched source sample.
	DestinationData(ctx context.Context, source *Dataset) (*Dataset, error)

	// Compare is pure: no I/O.
	Compare(source, destination *Dataset) Comparison
}

// Stage is a step of a validation run.
type Stage int

const (
	StageInit Stage = iota
	StageSourceFetched
	StageDestinationFetched
	StageCompared
	StageReported
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageSourceFetched:
		return "source_fetched"
	case StageDestinationFetched:
		return "destination_fetched"
	case StageCompared:
		return "compared"
	case StageReported:
		return "reported"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Result is the full payload of one validation run.
type Result struct {
	Validator   string     `json:"validator"`
	Source      *Dataset   `json:"source"`
	Destination *Dataset   `json:"destination"`
	Comparison  Comparison `json:"comparison"`
	Report      Report     `json:"report"`
	Stage       Stage      `json:"-"`
}

// Summary tallies the comparison.
func (r *Result) Summary() Summary {
	return r.Comparison.Summarize()
}

// Validate runs source fetch, destination fetch, comparison and report
// assembly strictly in that order. Any fetch error aborts the run and no
// partial result is returned.
func Validate(ctx context.Context, v Validator, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := logger.With(zap.String("validator", v.Name()))
	res := &Result{Validator: v.Name(), Stage: StageInit}

	source, err := v.SourceData(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch source: %w", v.Name(), err)
	}
	if source == nil {
		return nil, fmt.Errorf("%s: fetch source: empty dataset", v.Name())
	}
	res.Source = source
	res.advance(l, StageSourceFetched, zap.Int("sample", len(source.Sample)))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: fetch destination: %w", v.Name(), err)
	}
	destination, err := v.DestinationData(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch destination: %w", v.Name(), err)
	}
	if destination == nil {
		destination = &Dataset{}
	}
	res.Destination = destination
	res.advance(l, StageDestinationFetched, zap.Int("sample", len(destination.Sample)))

	res.Comparison = v.Compare(source, destination)
	res.advance(l, StageCompared)

	res.Report = Assemble(res.Comparison.Sections())
	res.advance(l, StageReported)

	return res, nil
}

func (r *Result) advance(l *zap.Logger, s Stage, fields ...zap.Field) {
	r.Stage = s
	l.Debug("Validation stage reached", append(fields, zap.Stringer("stage", s))...)
}

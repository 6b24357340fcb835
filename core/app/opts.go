package app

import "log/slog"

type (
	shellOptions struct {
		log             *slog.Logger
		metrics         AppMetrics
		maxCascadeDepth int
	}

	// ShellOption configures an aggregate, materialized view or saga manager.
	ShellOption interface{ applyToShell(*shellOptions) }

	LogOption          struct{ l *slog.Logger }
	MetricsOption      struct{ m AppMetrics }
	CascadeDepthOption struct{ n int }
)

func WithLogger(l *slog.Logger) LogOption    { return LogOption{l: l} }
func WithMetrics(m AppMetrics) MetricsOption { return MetricsOption{m: m} }

// WithMaxCascadeDepth bounds the recursion of the orchestrating aggregates.
// n is the maximum depth of follow-up commands below the inbound command;
// exceeding it fails the Handle call with ErrCascadeDepthExceeded. The
// default is unbounded. Other shells ignore this option.
func WithMaxCascadeDepth(n int) CascadeDepthOption { return CascadeDepthOption{n: n} }

func (o LogOption) applyToShell(s *shellOptions)          { s.log = o.l }
func (o MetricsOption) applyToShell(s *shellOptions)      { s.metrics = o.m }
func (o CascadeDepthOption) applyToShell(s *shellOptions) { s.maxCascadeDepth = o.n }

func newShellOptions(opts []ShellOption) shellOptions {
	options := shellOptions{
		log:     slog.Default(),
		metrics: NopAppMetrics(),
	}
	for _, opt := range opts {
		opt.applyToShell(&options)
	}
	return options
}

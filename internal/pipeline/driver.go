package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"chirp/internal/logging"
	"chirp/internal/tone"
)

// Frame is one carrier frame: the visual correlation token scanned from the
// video plane and the audio segment aligned with it.
type Frame struct {
	CorrelationToken string
	Audio            tone.Segment
}

// FrameSource yields frames in carrier order. Next returns io.EOF when the
// carrier is exhausted.
type FrameSource interface {
	Next(ctx context.Context) (Frame, error)
}

// Enqueuer accepts decoded instructions for execution.
type Enqueuer interface {
	Enqueue(correlationToken, raw string) error
}

// Driver decodes frames from a source and feeds the resulting instructions
// to an enqueuer.
type Driver struct {
	source FrameSource
	sink   Enqueuer
	opts   tone.Options
	logger *slog.Logger
}

// NewDriver wires a source to a sink with the given demodulation options.
func NewDriver(source FrameSource, sink Enqueuer, opts tone.Options, logger *slog.Logger) (*Driver, error) {
	if source == nil || sink == nil {
		return nil, errors.New("pipeline driver requires source and sink")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Driver{
		source: source,
		sink:   sink,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Run consumes frames until the source is exhausted or the context is
// canceled. A frame whose audio cannot be decoded is logged and skipped;
// frame-level failures never abort the run.
func (d *Driver) Run(ctx context.Context) error {
	for {
		frame, err := d.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			d.logger.Info("carrier exhausted")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		token := strings.TrimSpace(frame.CorrelationToken)
		if token == "" {
			// Unreadable visual plane; synthesize a token so the frame
			// still traces through logs.
			token = uuid.NewString()
		}

		raw, err := tone.Decode(frame.Audio, d.opts)
		if err != nil {
			d.logger.Warn("frame decode failed",
				logging.String(logging.FieldCorrelationToken, token),
				logging.Error(err))
			continue
		}

		if err := d.sink.Enqueue(token, raw); err != nil {
			d.logger.Warn("enqueue rejected",
				logging.String(logging.FieldCorrelationToken, token),
				logging.String(logging.FieldInstruction, raw),
				logging.Error(err))
			continue
		}
		d.logger.Debug("frame decoded",
			logging.String(logging.FieldCorrelationToken, token),
			logging.String(logging.FieldInstruction, raw))
	}
}

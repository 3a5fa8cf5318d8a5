package digest

import (
	"context"
	"fmt"
	"strconv"

	"stalepr/pkg/domain"
	"stalepr/pkg/ghactions"
	"stalepr/pkg/logger"
	"stalepr/pkg/serrors"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapfield"
)

// Step outputs consumed by the notification step.
const (
	OutputCount   ghactions.OutputName = "COUNT"
	OutputMessage ghactions.OutputName = "MESSAGE"
	OutputData    ghactions.OutputName = "data"
)

// Sinks are the append-only destinations a digest is published to.
type Sinks struct {
	Summary *ghactions.Summary
	Outputs *ghactions.Outputs
}

// Run collects records from src, builds the digest and publishes it.
//
// COUNT is written first. When there are no records MESSAGE is written empty
// and nothing else is published. Otherwise the summary section is appended,
// then MESSAGE and data. A failure aborts the run; earlier appends stay.
func Run(ctx context.Context, src Source, sinks Sinks, limit int) (domain.Digest, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("could not collect records: %w", err)
	}

	d := Build(records, limit)
	logger.Info(ctx, "built stale PR digest", zap.Int("total", d.Total), zap.Int("kept", len(d.Lines)))

	if err := publish(ctx, OutputCount, sinks.Outputs.Set(OutputCount, strconv.Itoa(d.Total))); err != nil {
		return d, err
	}

	if d.Empty() {
		return d, publish(ctx, OutputMessage, sinks.Outputs.Set(OutputMessage, ""))
	}

	if err := sinks.Summary.Section(Heading(d.Total), d.Lines); err != nil {
		return d, serrors.Wrap(sinkKind(err), err, "could not publish summary")
	}
	if err := publish(ctx, OutputMessage, sinks.Outputs.SetMultiline(OutputMessage, Message(d))); err != nil {
		return d, err
	}
	if err := publish(ctx, OutputData, sinks.Outputs.SetStrings(OutputData, d.Lines)); err != nil {
		return d, err
	}

	return d, nil
}

func publish(ctx context.Context, name ghactions.OutputName, err error) error {
	if err != nil {
		return serrors.Wrap(sinkKind(err), err, "could not publish output")
	}
	logger.Debug(ctx, "published output", zapfield.Str("output", name))

	return nil
}

// sinkKind keeps the kind reported by the sink itself, such as a missing sink
// pointer, and classifies anything else as an I/O failure.
func sinkKind(err error) serrors.Kind {
	if k := serrors.KindOf(err); k != nil {
		return k
	}

	return serrors.ErrIO
}

// Package metrics reports a digest run in the Prometheus text format, for
// pickup by a node exporter textfile collector on the runner.
package metrics

import (
	"context"
	"fmt"

	"stalepr/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DayBuckets are the histogram bucket boundaries, in days, used for the age
// of listed pull requests.
var DayBuckets = []float64{1, 2, 3, 5, 7, 14, 21, 30, 60, 90, 180, 365} //nolint: gochecknoglobals

// MeterName scopes the instruments recorded for a run.
const MeterName = "stalepr"

// WriteTextfile records d through an OpenTelemetry meter exported to a fresh
// Prometheus registry, then writes that registry to path.
func WriteTextfile(ctx context.Context, path string, d domain.Digest) error {
	reg := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(reg), otelprom.WithoutTargetInfo())
	if err != nil {
		return fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	defer func() { _ = mp.Shutdown(ctx) }()

	if err := record(ctx, mp.Meter(MeterName), d); err != nil {
		return err
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("could not write metrics to %s: %w", path, err)
	}

	return nil
}

func record(ctx context.Context, meter metric.Meter, d domain.Digest) error {
	total, err := meter.Int64Gauge("stale_prs",
		metric.WithDescription("Stale pull requests found in the run"))
	if err != nil {
		return fmt.Errorf("could not create stale_prs gauge: %w", err)
	}
	listed, err := meter.Int64Gauge("stale_prs_listed",
		metric.WithDescription("Stale pull requests listed in the digest after truncation"))
	if err != nil {
		return fmt.Errorf("could not create stale_prs_listed gauge: %w", err)
	}
	age, err := meter.Int64Histogram("stale_pr_days",
		metric.WithDescription("Days without reviews of listed pull requests"),
		metric.WithExplicitBucketBoundaries(DayBuckets...))
	if err != nil {
		return fmt.Errorf("could not create stale_pr_days histogram: %w", err)
	}

	total.Record(ctx, int64(d.Total))
	listed.Record(ctx, int64(len(d.Records)))
	for _, r := range d.Records {
		age.Record(ctx, int64(r.DaysStale))
	}

	return nil
}

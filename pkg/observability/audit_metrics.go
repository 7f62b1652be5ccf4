package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricCommitsTotal  = "endorse.commits.total"
	metricTrailersTotal = "endorse.trailers.total"

	attrBucket = "bucket"
	attrKind   = "kind"
)

// AuditMetrics counts scanned commits per bucket and counted trailers per kind.
type AuditMetrics struct {
	commitsTotal  metric.Int64Counter
	trailersTotal metric.Int64Counter
}

// NewAuditMetrics creates the audit instruments from the given meter.
func NewAuditMetrics(mt metric.Meter) (*AuditMetrics, error) {
	commits, err := mt.Int64Counter(metricCommitsTotal,
		metric.WithDescription("Commits scanned, by bucket"),
		metric.WithUnit("{commit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCommitsTotal, err)
	}

	trailers, err := mt.Int64Counter(metricTrailersTotal,
		metric.WithDescription("Acknowledgement trailers counted, by kind"),
		metric.WithUnit("{trailer}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricTrailersTotal, err)
	}

	return &AuditMetrics{commitsTotal: commits, trailersTotal: trailers}, nil
}

// RecordCommit adds one commit to bucket and one to each trailer kind.
func (am *AuditMetrics) RecordCommit(ctx context.Context, bucket string, trailers []string) {
	am.commitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrBucket, bucket)))

	for _, kind := range trailers {
		am.trailersTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrKind, kind)))
	}
}

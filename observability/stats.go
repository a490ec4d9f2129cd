package observability

import (
	"context"
	"strings"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricSortedListAdds    = "sorted_list.adds"
	metricSortedListRemoves = "sorted_list.removes"
	metricSortedListLookups = "sorted_list.lookups"
	metricSortedListSize    = "sorted_list.size"
)

// SortedListStats records the operations of one named sorted list.
type SortedListStats struct {
	name    string
	adds    metric.Int64Counter
	removes metric.Int64Counter
	lookups metric.Int64Counter
	size    metric.Int64UpDownCounter

	listAttr metric.MeasurementOption
	hitAttr  metric.MeasurementOption
	missAttr metric.MeasurementOption
}

type statsOptions struct {
	mp metric.MeterProvider
}

type StatsOption func(*statsOptions)

// WithStatsMeterProvider replaces the global meter provider.
func WithStatsMeterProvider(mp metric.MeterProvider) StatsOption {
	return func(opts *statsOptions) {
		opts.mp = mp
	}
}

func NewSortedListStats(name string, opts ...StatsOption) *SortedListStats {
	options := &statsOptions{}
	for _, o := range opts {
		if o != nil {
			o(options)
		}
	}
	if options.mp == nil {
		options.mp = otel.GetMeterProvider()
	}

	name = strings.TrimSpace(name)
	if len(name) == 0 {
		name = "default"
	}
	builder := &strings.Builder{}
	builder.WriteString("xsortedlist/list/")
	builder.WriteString(name)
	meter := options.mp.Meter(
		builder.String(),
		metric.WithInstrumentationVersion(otelruntime.Version()),
	)

	listKV := attribute.String("list", name)
	return &SortedListStats{
		name: name,
		adds: lo.Must[metric.Int64Counter](meter.Int64Counter(
			metricSortedListAdds,
			metric.WithDescription(`The number of values added to the sorted list.`),
		)),
		removes: lo.Must[metric.Int64Counter](meter.Int64Counter(
			metricSortedListRemoves,
			metric.WithDescription(`The number of remove calls, split by whether a value was removed.`),
		)),
		lookups: lo.Must[metric.Int64Counter](meter.Int64Counter(
			metricSortedListLookups,
			metric.WithDescription(`The number of contains calls, split by whether a value was found.`),
		)),
		size: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			metricSortedListSize,
			metric.WithDescription(`The number of values currently in the sorted list.`),
		)),
		listAttr: metric.WithAttributeSet(attribute.NewSet(listKV)),
		hitAttr:  metric.WithAttributeSet(attribute.NewSet(listKV, attribute.Bool("hit", true))),
		missAttr: metric.WithAttributeSet(attribute.NewSet(listKV, attribute.Bool("hit", false))),
	}
}

func (stats *SortedListStats) Name() string {
	if stats == nil {
		return ""
	}
	return stats.name
}

// RecordInitialSize seeds the size instrument with values a list held
// before it was observed.
func (stats *SortedListStats) RecordInitialSize(ctx context.Context, n int64) {
	if stats == nil || n == 0 {
		return
	}
	stats.size.Add(ctx, n, stats.listAttr)
}

func (stats *SortedListStats) RecordAdd(ctx context.Context) {
	if stats == nil {
		return
	}
	stats.adds.Add(ctx, 1, stats.listAttr)
	stats.size.Add(ctx, 1, stats.listAttr)
}

func (stats *SortedListStats) RecordRemove(ctx context.Context, removed bool) {
	if stats == nil {
		return
	}
	if !removed {
		stats.removes.Add(ctx, 1, stats.missAttr)
		return
	}
	stats.removes.Add(ctx, 1, stats.hitAttr)
	stats.size.Add(ctx, -1, stats.listAttr)
}

func (stats *SortedListStats) RecordLookup(ctx context.Context, found bool) {
	if stats == nil {
		return
	}
	if found {
		stats.lookups.Add(ctx, 1, stats.hitAttr)
		return
	}
	stats.lookups.Add(ctx, 1, stats.missAttr)
}

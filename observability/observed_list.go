package observability

import (
	"context"
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xsortedlist/lib/infra"
	"github.com/benz9527/xsortedlist/lib/list"
	"github.com/benz9527/xsortedlist/xlog"
)

var _ list.SortedList[struct{}] = (*observedSortedList[struct{}])(nil) // Type check assertion

// observedSortedList records every call into the stats and the logger.
// It adds no synchronization of its own, build the inner list with
// list.WithSortedListConcSafe for concurrent use.
type observedSortedList[T any] struct {
	ctx    context.Context
	impl   list.SortedList[T]
	stats  *SortedListStats
	logger xlog.XLogger
}

// NewObservedSortedList wraps impl. Both stats and logger are optional.
// Values already in impl are counted into the size instrument once.
func NewObservedSortedList[T any](impl list.SortedList[T], stats *SortedListStats, logger xlog.XLogger) (list.SortedList[T], error) {
	if impl == nil {
		return nil, infra.NewErrorStack("[observability] nil sorted list")
	}
	if logger != nil {
		name := "sorted-list"
		if stats != nil {
			name = name + "." + stats.Name()
		}
		logger = logger.Named(name)
	}
	ctx := context.Background()
	stats.RecordInitialSize(ctx, impl.Len())
	return &observedSortedList[T]{
		ctx:    ctx,
		impl:   impl,
		stats:  stats,
		logger: logger,
	}, nil
}

func (l *observedSortedList[T]) Len() int64 {
	return l.impl.Len()
}

func (l *observedSortedList[T]) Add(v T) {
	l.impl.Add(v)
	l.stats.RecordAdd(l.ctx)
	if l.logger != nil {
		l.logger.Debug("sorted list add", zap.Any("value", v), zap.Int64("len", l.impl.Len()))
	}
}

func (l *observedSortedList[T]) Remove(v T) bool {
	removed := l.impl.Remove(v)
	l.stats.RecordRemove(l.ctx, removed)
	if l.logger != nil {
		l.logger.Debug("sorted list remove",
			zap.Any("value", v),
			zap.Bool("removed", removed),
			zap.Int64("len", l.impl.Len()),
		)
	}
	return removed
}

func (l *observedSortedList[T]) Contains(v T) bool {
	found := l.impl.Contains(v)
	l.stats.RecordLookup(l.ctx, found)
	if l.logger != nil {
		l.logger.Debug("sorted list contains", zap.Any("value", v), zap.Bool("found", found))
	}
	return found
}

func (l *observedSortedList[T]) ToSlice() []T {
	return l.impl.ToSlice()
}

func (l *observedSortedList[T]) All() iter.Seq[T] {
	return l.impl.All()
}

func (l *observedSortedList[T]) Foreach(fn func(idx int64, v T) bool) {
	l.impl.Foreach(fn)
}

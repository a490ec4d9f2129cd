package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xsortedlist/lib/list"
	"github.com/benz9527/xsortedlist/xlog"
)

func TestModule(t *testing.T) {
	t.Setenv("XSORTEDLIST_METRICS_EXPORTER", "none")
	buf := &bytes.Buffer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)

	var observed list.SortedList[int]
	app := fxtest.New(t,
		fx.Provide(func() xlog.XLogger { return logger }),
		fx.WithLogger(func(l xlog.XLogger) fxevent.Logger { return xlog.NewFxXLogger(l) }),
		Module,
		fx.Provide(func(l xlog.XLogger) (list.SortedList[int], error) {
			return NewObservedSortedList(list.NewIntSortedList(), NewSortedListStats("fx"), l)
		}),
		fx.Populate(&observed),
	)
	app.RequireStart()
	observed.Add(2)
	observed.Add(1)
	require.Equal(t, []int{1, 2}, observed.ToSlice())
	app.RequireStop()

	out := buf.String()
	require.Contains(t, out, "metrics exporter installed")
	require.Contains(t, out, "sorted list add")
}

func TestModule_InvalidConfig(t *testing.T) {
	t.Setenv("XSORTEDLIST_METRICS_EXPORTER", "unknown")
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriteSyncer(zapcore.AddSync(&bytes.Buffer{})),
	)
	app := fx.New(
		fx.Provide(func() xlog.XLogger { return logger }),
		fx.NopLogger,
		Module,
	)
	require.Error(t, app.Err())
}

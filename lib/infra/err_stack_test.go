package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func caller() (Frame, int) {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	_, _, line, _ := runtime.Caller(1)
	return Frame(pcs[0]), line
}

func TestFrameFormat(t *testing.T) {
	frame, line := caller()
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{frame, "%s", "err_stack_test.go"},
		{frame, "%n", "TestFrameFormat"},
		{frame, "%d", strconv.Itoa(line)},
		{frame, "%v", "err_stack_test.go:" + strconv.Itoa(line)},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.Frame))
	}

	full := fmt.Sprintf("%+s", frame)
	require.True(t, strings.HasPrefix(full, "github.com/benz9527/xsortedlist/lib/infra.TestFrameFormat\n\t"))
	require.True(t, strings.HasSuffix(full, "err_stack_test.go"))
}

func TestFrameMarshal(t *testing.T) {
	frame, line := caller()
	text, err := frame.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "github.com/benz9527/xsortedlist/lib/infra.TestFrameMarshal "))
	require.True(t, strings.HasSuffix(string(text), "err_stack_test.go:"+strconv.Itoa(line)))

	text, err = Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))

	js, err := json.Marshal(Frame(0))
	require.NoError(t, err)
	require.Equal(t, `{"frame":"unknownFrame"}`, string(js))

	js, err = json.Marshal(frame)
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(js, &decoded))
	require.Equal(t, "github.com/benz9527/xsortedlist/lib/infra.TestFrameMarshal", decoded["func"])
}

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("[sorted-list] nil comparator")
	require.EqualError(t, err, "[sorted-list] nil comparator")

	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())
	require.Equal(t, "TestNewErrorStack", fmt.Sprintf("%n", es.Frames()[0]))
	require.Nil(t, es.Unwrap())
}

func TestWrapErrorStack(t *testing.T) {
	require.Nil(t, WrapErrorStack(nil))
	require.Nil(t, WrapErrorStackWithMessage(nil, "ignored"))

	sentinel := errors.New("boom")
	err := WrapErrorStack(sentinel)
	require.EqualError(t, err, "boom")
	require.ErrorIs(t, err, sentinel)

	err = WrapErrorStackWithMessage(sentinel, "shutdown")
	require.EqualError(t, err, "shutdown: boom")
	require.ErrorIs(t, err, sentinel)
	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.Equal(t, "TestWrapErrorStack", fmt.Sprintf("%n", es.Frames()[0]))

	inner := NewErrorStack("inner")
	outer := WrapErrorStackWithMessage(inner, "outer")
	require.EqualError(t, outer, "outer: inner")
	var innerES, outerES ErrorStack
	require.True(t, errors.As(inner, &innerES))
	require.True(t, errors.As(outer, &outerES))
	require.Equal(t, innerES.Frames(), outerES.Frames())
}

func TestErrorStackMarshalLogObject(t *testing.T) {
	err := NewErrorStack("marshal me")
	es := err.(ErrorStack)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, es.MarshalLogObject(enc))
	require.Equal(t, "marshal me", enc.Fields["error"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.Len(t, frames, len(es.Frames()))
}

func TestErrorStackMarshalJSON(t *testing.T) {
	err := WrapErrorStackWithMessage(NewErrorStack("arena exhausted"), "[sorted-list] add")
	js, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	var decoded struct {
		Error  string              `json:"error"`
		Frames []map[string]string `json:"errorStack"`
	}
	require.NoError(t, json.Unmarshal(js, &decoded))
	require.Equal(t, "[sorted-list] add: arena exhausted", decoded.Error)
	require.Len(t, decoded.Frames, len(err.(ErrorStack).Frames()))
	require.Equal(t, "github.com/benz9527/xsortedlist/lib/infra.TestErrorStackMarshalJSON", decoded.Frames[0]["func"])
	require.Contains(t, decoded.Frames[0]["fileAndLine"], "err_stack_test.go:")
}

package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const (
	maxStackDepth = 16
	unknownFunc   = "unknownFunc"
	unknownFile   = "unknownFile"
)

// Frame is a program counter captured by runtime.Callers.
type Frame uintptr

// resolve looks the frame up once. The stored pc is a return address, so
// the call instruction sits one byte before it.
func (frame Frame) resolve() (name, file string, line int) {
	pc := uintptr(frame) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunc, unknownFile, 0
	}
	file, line = fn.FileLine(pc)
	return fn.Name(), file, line
}

// Format characters:
// %s - base name of the source file
// %d - source line
// %n - function name without the package path
// %v - %s:%d
// %+s - <full function name>\n\t<full file path>
func (frame Frame) Format(s fmt.State, verb rune) {
	name, file, line := frame.resolve()
	switch verb {
	case 's':
		if !s.Flag('+') {
			_, _ = io.WriteString(s, path.Base(file))
			return
		}
		_, _ = io.WriteString(s, name+"\n\t"+file)
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, shortFuncName(name))
	case 'v':
		_, _ = io.WriteString(s, path.Base(file)+":"+strconv.Itoa(line))
	}
}

// MarshalText renders "<function> <file>:<line>".
func (frame Frame) MarshalText() ([]byte, error) {
	name, file, line := frame.resolve()
	if name == unknownFunc {
		return []byte("unknownFrame"), nil
	}
	return []byte(name + " " + file + ":" + strconv.Itoa(line)), nil
}

func (frame Frame) MarshalJSON() ([]byte, error) {
	name, file, line := frame.resolve()
	if name == unknownFunc {
		return []byte(`{"frame":"unknownFrame"}`), nil
	}
	return json.Marshal(struct {
		Func        string `json:"func"`
		FileAndLine string `json:"fileAndLine"`
	}{
		Func:        name,
		FileAndLine: file + ":" + strconv.Itoa(line),
	})
}

func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// ErrorStack is an error carrying the call frames where it was created.
// It implements zapcore.ObjectMarshaler so that a logger can inline the
// frames as structured fields instead of zap's plain text stacktrace.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	json.Marshaler
	Unwrap() error
	Frames() []Frame
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	msg    string
	cause  error
	frames []Frame
}

func (es *errorStack) Error() string {
	switch {
	case es.cause == nil:
		return es.msg
	case es.msg == "":
		return es.cause.Error()
	}
	return es.msg + ": " + es.cause.Error()
}

func (es *errorStack) Unwrap() error { return es.cause }

func (es *errorStack) Frames() []Frame { return es.frames }

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	return enc.AddArray("errorStack", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, frame := range es.frames {
			text, _ := frame.MarshalText()
			arr.AppendByteString(text)
		}
		return nil
	}))
}

// MarshalJSON keeps the same keys as MarshalLogObject, so errors written
// outside of zap look alike.
func (es *errorStack) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error  string  `json:"error"`
		Frames []Frame `json:"errorStack"`
	}{
		Error:  es.Error(),
		Frames: es.frames,
	})
}

func NewErrorStack(msg string) error {
	return &errorStack{
		msg:    msg,
		frames: callers(3),
	}
}

func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return wrap(err, "")
}

func WrapErrorStackWithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return wrap(err, msg)
}

func wrap(err error, msg string) error {
	var es *errorStack
	if errors.As(err, &es) {
		// Keep the deepest frames, they are closer to the root cause.
		return &errorStack{msg: msg, cause: err, frames: es.frames}
	}
	return &errorStack{msg: msg, cause: err, frames: callers(4)}
}

// callers skips runtime.Callers, itself and the exported constructors.
func callers(skip int) []Frame {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Frame(pcs[i]))
	}
	return frames
}

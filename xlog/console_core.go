package xlog

import (
	"go.uber.org/zap/zapcore"
)

func defaultCoreEncoderCfg() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
}

// newConsoleCore writes to the registered writer of the given type.
// It returns nil if no writer is registered for it.
func newConsoleCore(writer logOutWriterType) xLogCoreConstructor {
	return func(
		lvlEnabler zapcore.LevelEnabler,
		encoder logEncoderType,
		lvlEnc zapcore.LevelEncoder,
		tsEnc zapcore.TimeEncoder,
	) xLogCore {
		ws, ok := getOutWriterByType(writer)
		if !ok || ws == nil {
			return nil
		}
		return newCommonCore(ws, lvlEnabler, encoder, lvlEnc, tsEnc, defaultCoreEncoderCfg())
	}
}

// newWriteSyncerCore writes to an arbitrary write syncer, e.g. a file
// opened by the caller or an in-memory buffer.
func newWriteSyncerCore(ws zapcore.WriteSyncer) xLogCoreConstructor {
	return func(
		lvlEnabler zapcore.LevelEnabler,
		encoder logEncoderType,
		lvlEnc zapcore.LevelEncoder,
		tsEnc zapcore.TimeEncoder,
	) xLogCore {
		if ws == nil {
			return nil
		}
		return newCommonCore(zapcore.Lock(ws), lvlEnabler, encoder, lvlEnc, tsEnc, defaultCoreEncoderCfg())
	}
}

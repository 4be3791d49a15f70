package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestObservedLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)

	logger.Debugw("steering", "command", 0.5)
	logger.Infof("lookahead %v", 10)
	logger.Warn("plain")

	test.That(t, logs.Len(), test.ShouldEqual, 3)
	entries := logs.All()
	test.That(t, entries[0].Message, test.ShouldEqual, "steering")
	test.That(t, entries[0].Level, test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, entries[0].ContextMap()["command"], test.ShouldEqual, 0.5)
	test.That(t, entries[1].Message, test.ShouldEqual, "lookahead 10")
	test.That(t, entries[2].Level, test.ShouldEqual, zapcore.WarnLevel)
}

func TestSetLevel(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	test.That(t, logger.GetLevel(), test.ShouldEqual, DEBUG)

	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Errorw("kept", "err", "boom")
	test.That(t, logs.Len(), test.ShouldEqual, 1)
	test.That(t, logs.All()[0].Message, test.ShouldEqual, "kept")
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("pursuit")
	subsub := sub.Sublogger("block")

	sub.Info("from sub")
	subsub.Info("from subsub")
	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.All()[0].LoggerName, test.ShouldEqual, "pursuit")
	test.That(t, logs.All()[1].LoggerName, test.ShouldEqual, "pursuit.block")

	// sublogger levels are independent of the parent.
	sub.SetLevel(ERROR)
	sub.Info("dropped")
	logger.Info("from parent")
	test.That(t, logs.Len(), test.ShouldEqual, 3)
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.out)
		test.That(t, levelFromZap(level.AsZap()), test.ShouldEqual, tc.out)
	}
	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, WARN.String(), test.ShouldEqual, "Warn")
}

func TestGlobal(t *testing.T) {
	orig := Global()
	defer ReplaceGlobal(orig)

	logger := NewBlankLogger("blank")
	ReplaceGlobal(logger)
	test.That(t, Global(), test.ShouldEqual, logger)
	test.That(t, logger.Sync(), test.ShouldBeNil)
	test.That(t, logger.AsZap(), test.ShouldNotBeNil)
}

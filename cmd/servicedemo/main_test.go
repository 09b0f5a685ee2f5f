package main

import (
	"bytes"
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/centraunit/injector/config"
	"github.com/centraunit/injector/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer

	c, err := run(&out, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, c)

	got := out.String()
	assert.Contains(t, got, "H\nD\nA\nC\n")
	assert.Contains(t, got, "circular dependency detected involving *mock.I")
	assert.Contains(t, got, "5 + 9 = 14\n")

	assert.True(t, c.Resolved(reflect.TypeOf((**mock.H)(nil)).Elem()))
	assert.False(t, c.Resolved(reflect.TypeOf((**mock.I)(nil)).Elem()))
}

// syncSpy counts Sync calls on the logger's sink.
type syncSpy struct {
	bytes.Buffer
	syncs int
}

func (s *syncSpy) Sync() error {
	s.syncs++
	return nil
}

func spyLogger(sink *syncSpy) func(*config.Config) (*zap.Logger, error) {
	return func(*config.Config) (*zap.Logger, error) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return zap.New(zapcore.NewCore(enc, sink, zapcore.DebugLevel)), nil
	}
}

func TestStart(t *testing.T) {
	missingEnv := filepath.Join(t.TempDir(), "missing.env")

	t.Run("Success", func(t *testing.T) {
		var out bytes.Buffer
		sink := &syncSpy{}

		code := start([]string{"-env", missingEnv}, &out, spyLogger(sink))
		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "5 + 9 = 14")
		assert.Equal(t, 1, sink.syncs)
	})

	t.Run("ServerErrorFlushesLogs", func(t *testing.T) {
		t.Setenv("INJECTOR_HTTP_ADDR", "127.0.0.1:-1")
		var out bytes.Buffer
		sink := &syncSpy{}

		code := start([]string{"-env", missingEnv, "-serve"}, &out, spyLogger(sink))
		assert.Equal(t, 1, code)
		assert.Equal(t, 1, sink.syncs, "logger must be flushed before exiting")
		assert.Contains(t, sink.String(), `"msg":"server error"`)
	})

	t.Run("BadFlag", func(t *testing.T) {
		sink := &syncSpy{}
		code := start([]string{"-nope"}, io.Discard, spyLogger(sink))
		assert.Equal(t, 2, code)
		assert.Zero(t, sink.syncs)
	})
}

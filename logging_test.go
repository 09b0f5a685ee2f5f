package injector_test

import (
	"testing"

	"github.com/centraunit/injector"
	"github.com/centraunit/injector/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := injector.New(injector.WithLogger(zap.New(core)))

	require.NoError(t, c.RegisterMany(mock.Services()...))
	assert.Equal(t, 10, logs.FilterMessage("service registered").Len())

	_, err := injector.Resolve[*mock.D](c)
	require.NoError(t, err)
	assert.Equal(t, 3, logs.FilterMessage("service constructed").Len())

	_, err = injector.Resolve[*mock.D](c)
	require.NoError(t, err)
	hits := logs.FilterMessage("service cache hit").All()
	require.Len(t, hits, 1)
	assert.Equal(t, "*mock.D", hits[0].ContextMap()["type"])

	_, err = injector.Resolve[*mock.I](c)
	require.Error(t, err)
	failures := logs.FilterMessage("service resolution failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.WarnLevel, failures[0].Level)
	assert.Equal(t, "*mock.I", failures[0].ContextMap()["type"])
}

func TestNilLoggerIgnored(t *testing.T) {
	c := injector.New(injector.WithLogger(nil))
	require.NoError(t, injector.Provide[*mock.A](c))

	_, err := injector.Resolve[*mock.A](c)
	assert.NoError(t, err)
}

package server

import (
	"context"
	"errors"
	"testing"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return zapLogger
}

func TestShutdownManager_RunsFunctionsInRegistrationOrder(t *testing.T) {
	// Arrange
	sm := NewShutdownManager(newTestLogger(t))

	var order []string
	sm.Register(func(context.Context) error {
		order = append(order, "consumers")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "connection")
		return nil
	})

	// Act
	err := sm.Shutdown(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"consumers", "connection"}, order)
}

func TestShutdownManager_ContinuesPastFailingComponent(t *testing.T) {
	// Arrange
	sm := NewShutdownManager(newTestLogger(t))

	var cleaned bool
	sm.Register(func(context.Context) error {
		return errors.New("connection already closed")
	})
	sm.Register(func(context.Context) error {
		cleaned = true
		return nil
	})

	// Act
	err := sm.Shutdown(context.Background())

	// Assert - one failing component never blocks the rest
	assert.NoError(t, err)
	assert.True(t, cleaned)
}

func TestShutdownManager_NoRegisteredFunctions(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))

	assert.NoError(t, sm.Shutdown(context.Background()))
}

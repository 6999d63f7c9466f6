package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herissonneves/quantio/internal/core/services"
)

func testPorts() *Ports {
	return &Ports{
		Calculator: services.NewCalculatorService(),
		Converter:  services.NewConverterService(),
	}
}

func TestNewServer(t *testing.T) {
	t.Run("nil calculator service returns error", func(t *testing.T) {
		ports := &Ports{Converter: services.NewConverterService()}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCalculatorService)
	})

	t.Run("nil converter service returns error", func(t *testing.T) {
		ports := &Ports{Calculator: services.NewCalculatorService()}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingConverterService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingCalculatorService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		err := testPorts().Validate()
		assert.NoError(t, err)
	})
}

package server

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/handler"
	"github.com/pankajshindecodes-stack/Eventroop/internal/handler/http"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: http.NewHandler(&service.Services{}, &store.DB{}, nil, logger.Nop()),
	}
}

func TestNewServer_BindsAndShutsDown(t *testing.T) {
	srv, err := NewServer(testHandlers(), nil, "127.0.0.1:0", config.Server{}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, srv)

	inner := srv.(*server)
	assert.NotEmpty(t, inner.httpServer.Addr(), "bound address must be resolvable")

	require.NoError(t, inner.httpServer.listener.Close())
}

func TestNewServer_OccupiedPort(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close() //nolint:errcheck

	_, err = NewServer(testHandlers(), nil, taken.Addr().String(), config.Server{}, logger.Nop())
	assert.Error(t, err, "binding an occupied port must fail at construction")
}

func TestNewServer_MalformedAddress(t *testing.T) {
	_, err := NewServer(testHandlers(), nil, "0.0.0.0:not-a-port", config.Server{}, logger.Nop())
	assert.Error(t, err)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, "127.0.0.1:0", config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersProvided)
}

package testutils

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

// stubContainer answers only the calls endpoint makes
type stubContainer struct {
	testcontainers.Container
	host    string
	ports   map[nat.Port]nat.Port
	hostErr error
}

func (s *stubContainer) Host(context.Context) (string, error) {
	return s.host, s.hostErr
}

func (s *stubContainer) MappedPort(_ context.Context, port nat.Port) (nat.Port, error) {
	mapped, ok := s.ports[port]
	if !ok {
		return "", errors.New("port not exposed")
	}
	return mapped, nil
}

func TestEndpoint(t *testing.T) {
	ctx := context.Background()

	t.Run("joins host and mapped port", func(t *testing.T) {
		c := &stubContainer{host: "localhost", ports: map[nat.Port]nat.Port{"6379/tcp": "49153/tcp"}}

		addr, err := endpoint(ctx, c, "6379/tcp")
		require.NoError(t, err)
		assert.Equal(t, "localhost:49153", addr)
	})

	t.Run("unexposed port", func(t *testing.T) {
		c := &stubContainer{host: "localhost", ports: map[nat.Port]nat.Port{}}

		_, err := endpoint(ctx, c, "5432/tcp")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "5432/tcp")
	})

	t.Run("host lookup fails", func(t *testing.T) {
		c := &stubContainer{hostErr: errors.New("daemon gone")}

		_, err := endpoint(ctx, c, "6379/tcp")
		assert.ErrorContains(t, err, "container host")
	})
}

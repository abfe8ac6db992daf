package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"
	"github.com/lembowen/COSC340-A3/internal/pkg/wire"

	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T, cfgs ...Cfg) *wire.Conn {
	t.Helper()
	srv, err := NewServer(append([]Cfg{WithHost("localhost"), WithPort(0)}, cfgs...)...)
	require.NoError(t, err)
	require.NoError(t, srv.Listen())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	nc, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { nc.Close() })
	conn, err := wire.NewConn(nc)
	require.NoError(t, err)
	return conn
}

func TestServerPlaysFullGame(t *testing.T) {
	conn := startTestServer(t)

	require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeStartGame, nil)))
	msg, err := conn.Recv()
	require.NoError(t, err)
	require.Equal(t, protocol.TypePositioningShips, msg.Type)
	msg, err = conn.Recv()
	require.NoError(t, err)
	require.Equal(t, protocol.TypeShipsInPosition, msg.Type)

	var done bool
	for col := byte('A'); col <= 'I' && !done; col++ {
		for row := byte('1'); row <= '9' && !done; row++ {
			coord := string([]byte{col, row})
			require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeShot, protocol.Payload{"coordinate": coord})))
			msg, err := conn.Recv()
			require.NoError(t, err)
			switch msg.Type {
			case protocol.TypeHit, protocol.TypeMiss:
			case protocol.TypeGameOver:
				score, ok := msg.Data.Score()
				require.True(t, ok)
				require.Positive(t, score)
				done = true
			default:
				t.Fatalf("unexpected reply type %s", msg.Type)
			}
		}
	}
	require.True(t, done)

	// The server closes the connection once the game is complete.
	_, err = conn.Recv()
	require.ErrorIs(t, err, wire.ErrPeerDisconnected)
}

func TestServerRecoversFromInvalidCoordinate(t *testing.T) {
	conn := startTestServer(t)

	require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeStartGame, nil)))
	for i := 0; i < 2; i++ {
		_, err := conn.Recv()
		require.NoError(t, err)
	}

	require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeShot, protocol.Payload{"coordinate": "Z9"})))
	msg, err := conn.Recv()
	require.NoError(t, err)
	require.Equal(t, protocol.TypeError, msg.Type)
	text, ok := msg.Data.Text()
	require.True(t, ok)
	require.Contains(t, text, "Invalid coordinate")

	// The session is still in progress and accepts a valid shot.
	require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeShot, protocol.Payload{"coordinate": "E5"})))
	msg, err = conn.Recv()
	require.NoError(t, err)
	require.Contains(t, []protocol.Type{protocol.TypeHit, protocol.TypeMiss}, msg.Type)
}

func TestServerTerminatesOnHandshakeViolation(t *testing.T) {
	conn := startTestServer(t)

	require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeHit, nil)))
	msg, err := conn.Recv()
	require.NoError(t, err)
	require.Equal(t, protocol.TypeError, msg.Type)

	_, err = conn.Recv()
	require.ErrorIs(t, err, wire.ErrPeerDisconnected)
}

func TestServerDropsIdleSession(t *testing.T) {
	conn := startTestServer(t, WithIdleTimeout(50*time.Millisecond))

	require.NoError(t, conn.Send(protocol.NewMessage(protocol.TypeStartGame, nil)))
	for i := 0; i < 2; i++ {
		_, err := conn.Recv()
		require.NoError(t, err)
	}

	// Send nothing; the server should give up on us.
	_, err := conn.Recv()
	require.ErrorIs(t, err, wire.ErrPeerDisconnected)
}

package apps

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) uint16 {
	t.Helper()
	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer ln.Close()
	return uint16(ln.Addr().(*net.TCPAddr).Port)
}

func waitForServer(t *testing.T, port uint16) {
	t.Helper()
	addr := fmt.Sprintf("localhost:%d", port)
	for i := 0; i < 100; i++ {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server on %s never came up", addr)
}

func TestClientServerGame(t *testing.T) {
	for name, legacy := range map[string]bool{"json": false, "legacy": true} {
		legacy := legacy
		t.Run(name, func(t *testing.T) {
			port := freePort(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				s := &ServerApp{Host: "localhost", Port: port, Legacy: legacy}
				require.NoError(t, s.Run(ctx, nil))
			}()
			waitForServer(t, port)

			c := &ClientApp{Host: "localhost", Port: port, Auto: true, Legacy: legacy}
			require.NoError(t, c.Run(ctx, nil))

			cancel()
			wg.Wait()
		})
	}
}

package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/lembowen/COSC340-A3/internal/pkg/board"
	"github.com/lembowen/COSC340-A3/internal/pkg/log"
	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"
	"github.com/lembowen/COSC340-A3/internal/pkg/wire"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Client drives one game session against a server.
type Client struct {
	serverAddr string
	codec      protocol.Codec
	shots      ShotSource
	out        io.Writer

	view  *board.Board
	conn  *wire.Conn
	done  bool
	score int
}

// Cfg configures a Client.
type Cfg func(*Client) error

// WithServerAddr sets the server address to connect to.
func WithServerAddr(host string, port uint16) Cfg {
	return func(c *Client) error {
		c.serverAddr = net.JoinHostPort(host, strconv.Itoa(int(port)))
		return nil
	}
}

// WithCodec sets the wire codec.
func WithCodec(codec protocol.Codec) Cfg {
	return func(c *Client) error {
		c.codec = codec
		return nil
	}
}

// WithShotSource sets where coordinates come from.
func WithShotSource(shots ShotSource) Cfg {
	return func(c *Client) error {
		c.shots = shots
		return nil
	}
}

// WithOutput sets the writer the board view is rendered to. Nil disables
// rendering.
func WithOutput(out io.Writer) Cfg {
	return func(c *Client) error {
		c.out = out
		return nil
	}
}

// NewClient creates a new Client with the given configuration. By default it
// speaks the canonical JSON format and prompts on stdin.
func NewClient(cfgs ...Cfg) (*Client, error) {
	client := &Client{
		codec: protocol.JSONCodec{},
		view:  board.NewBoard(),
		out:   os.Stdout,
	}
	for _, cfg := range cfgs {
		if err := cfg(client); err != nil {
			return nil, errors.Wrap(err, "apply Client cfg failed")
		}
	}
	if client.shots == nil {
		client.shots = NewPromptSource(os.Stdin, os.Stdout)
	}
	return client, nil
}

// Connect establishes the connection to the server.
func (c *Client) Connect(ctx context.Context) error {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", c.serverAddr)
	if err != nil {
		return errors.Wrapf(err, "connect to %s failed", c.serverAddr)
	}
	conn, err := wire.NewConn(nc, wire.WithCodec(c.codec))
	if err != nil {
		nc.Close()
		return errors.Wrap(err, "wrap connection failed")
	}
	c.conn = conn
	logger.WithField("addr", c.serverAddr).Info("connected to server")
	return nil
}

// Score returns the final score reported by the server. Valid once Done.
func (c *Client) Score() int {
	return c.score
}

// Done reports whether the game ran to completion.
func (c *Client) Done() bool {
	return c.done
}

// handshake starts the game and waits for both positioning acknowledgements
// in their required order.
func (c *Client) handshake() error {
	if err := c.conn.Send(protocol.NewMessage(protocol.TypeStartGame, nil)); err != nil {
		return errors.Wrap(err, "send start game failed")
	}
	for _, want := range []protocol.Type{protocol.TypePositioningShips, protocol.TypeShipsInPosition} {
		msg, err := c.conn.Recv()
		if err != nil {
			return errors.Wrap(err, "receive handshake reply failed")
		}
		logger.WithFields(log.MessageToFields(msg)).Debug("received message")
		if msg.Type != want {
			return errors.Wrapf(ErrUnexpectedReply, "expected %s, got %s", want, msg.Type)
		}
	}
	return nil
}

// Run plays the session to completion: handshake, then one shot per turn
// until the server reports game over.
func (c *Client) Run(ctx context.Context) error {
	defer c.conn.Close()
	if err := c.handshake(); err != nil {
		return errors.Wrap(err, "handshake failed")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.render()
		coord, err := c.shots.Next()
		if err != nil {
			return errors.Wrap(err, "next shot failed")
		}
		shot := protocol.NewMessage(protocol.TypeShot, protocol.Payload{"coordinate": coord})
		if err := c.conn.Send(shot); err != nil {
			return errors.Wrap(err, "send shot failed")
		}
		msg, err := c.conn.Recv()
		if err != nil {
			return errors.Wrap(err, "receive shot reply failed")
		}
		logger.WithFields(log.MessageToFields(msg)).Debug("received message")
		switch msg.Type {
		case protocol.TypeHit:
			c.view.Mark(coord, true)
			logger.WithField("coordinate", coord).Info("hit")
		case protocol.TypeMiss:
			c.view.Mark(coord, false)
			logger.WithField("coordinate", coord).Info("miss")
		case protocol.TypeError:
			text, _ := msg.Data.Text()
			logger.WithField("message", text).Warning("server rejected shot")
		case protocol.TypeGameOver:
			// Game over only ever follows a hit on the final ship cell.
			c.view.Mark(coord, true)
			score, _ := msg.Data.Score()
			c.done = true
			c.score = score
			c.render()
			logger.WithField("score", score).Info("game over")
			return nil
		default:
			return errors.Wrapf(ErrUnexpectedReply, "unexpected %s reply to shot", msg.Type)
		}
	}
}

func (c *Client) render() {
	if c.out == nil {
		return
	}
	fmt.Fprintf(c.out, "\n%s\n", c.view)
}

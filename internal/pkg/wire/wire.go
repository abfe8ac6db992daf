// Package wire frames protocol messages over a duplex byte stream.
package wire

import (
	"bufio"
	"io"
	"net"
	"time"

	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"

	"github.com/pkg/errors"
)

// Conn frames messages over a net.Conn. Receives read until the newline
// delimiter, buffering across reads if the transport delivers partial frames.
type Conn struct {
	conn        net.Conn
	reader      *bufio.Reader
	codec       protocol.Codec
	idleTimeout time.Duration
}

// Cfg configures a Conn.
type Cfg func(*Conn) error

// WithCodec sets the codec used to encode and decode frames.
func WithCodec(codec protocol.Codec) Cfg {
	return func(c *Conn) error {
		c.codec = codec
		return nil
	}
}

// WithIdleTimeout sets the read deadline applied before each receive. Zero
// waits forever, which is the reference behaviour.
func WithIdleTimeout(d time.Duration) Cfg {
	return func(c *Conn) error {
		c.idleTimeout = d
		return nil
	}
}

// NewConn wraps conn with framing and the given configuration. The codec
// defaults to the canonical JSON format.
func NewConn(conn net.Conn, cfgs ...Cfg) (*Conn, error) {
	c := &Conn{
		conn:   conn,
		reader: bufio.NewReader(conn),
		codec:  protocol.JSONCodec{},
	}
	for _, cfg := range cfgs {
		if err := cfg(c); err != nil {
			return nil, errors.Wrap(err, "apply Conn cfg failed")
		}
	}
	return c, nil
}

// Send encodes msg and writes it as one frame.
func (c *Conn) Send(msg protocol.Message) error {
	b, err := c.codec.Encode(msg)
	if err != nil {
		return errors.Wrap(err, "encode message failed")
	}
	if _, err := c.conn.Write(b); err != nil {
		return errors.Wrap(err, "write frame failed")
	}
	return nil
}

// Recv blocks until one whole frame arrives and decodes it. A zero-length
// read yields ErrPeerDisconnected; an expired idle timeout yields
// ErrPeerTimeout.
func (c *Conn) Recv() (protocol.Message, error) {
	if c.idleTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.idleTimeout)); err != nil {
			return protocol.Message{}, errors.Wrap(err, "set read deadline failed")
		}
	}
	frame, err := c.reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return protocol.Message{}, ErrPeerDisconnected
		}
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return protocol.Message{}, ErrPeerTimeout
		}
		return protocol.Message{}, errors.Wrap(err, "read frame failed")
	}
	return c.codec.Decode(frame)
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

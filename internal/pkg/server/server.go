package server

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/lembowen/COSC340-A3/internal/pkg/log"
	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"
	"github.com/lembowen/COSC340-A3/internal/pkg/wire"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Server hosts battleship games, serving one connection fully before
// accepting the next.
type Server struct {
	host        string
	port        uint16
	codec       protocol.Codec
	idleTimeout time.Duration

	listener net.Listener
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithHost sets the host to bind to.
func WithHost(host string) Cfg {
	return func(s *Server) error {
		s.host = host
		return nil
	}
}

// WithPort sets the port to bind to.
func WithPort(port uint16) Cfg {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

// WithCodec sets the wire codec for all sessions.
func WithCodec(codec protocol.Codec) Cfg {
	return func(s *Server) error {
		s.codec = codec
		return nil
	}
}

// WithIdleTimeout drops a session if the client sends nothing for the given
// duration. Zero waits forever.
func WithIdleTimeout(d time.Duration) Cfg {
	return func(s *Server) error {
		s.idleTimeout = d
		return nil
	}
}

// NewServer creates a new Server with the given configuration.
func NewServer(cfgs ...Cfg) (*Server, error) {
	server := &Server{
		host:  "localhost",
		codec: protocol.JSONCodec{},
	}
	for _, cfg := range cfgs {
		if err := cfg(server); err != nil {
			return nil, errors.Wrap(err, "apply Server cfg failed")
		}
	}
	return server, nil
}

// Listen binds the server socket. Run calls it implicitly; tests call it
// first to learn the bound address when using port 0.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", net.JoinHostPort(s.host, strconv.Itoa(int(s.port))))
	if err != nil {
		return errors.Wrapf(err, "listen on %s:%d failed", s.host, s.port)
	}
	s.listener = ln
	logger.WithField("addr", ln.Addr().String()).Info("server listening")
	return nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run accepts and serves connections sequentially until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	defer s.listener.Close()
	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "accept connection failed")
		}
		s.serve(conn)
	}
}

// serve drives one connection from handshake to completion or termination.
func (s *Server) serve(nc net.Conn) {
	defer nc.Close()
	sess, err := NewSession()
	if err != nil {
		logger.WithError(err).Error("create session failed")
		return
	}
	sessLogger := logger.WithFields(logrus.Fields{
		"uuid":   sess.ID().String(),
		"remote": nc.RemoteAddr().String(),
	})
	sessLogger.Info("new connection established")
	conn, err := wire.NewConn(nc,
		wire.WithCodec(s.codec),
		wire.WithIdleTimeout(s.idleTimeout),
	)
	if err != nil {
		sessLogger.WithError(err).Error("wrap connection failed")
		return
	}
	for !sess.Done() {
		msg, err := conn.Recv()
		if err != nil {
			switch {
			case errors.Is(err, wire.ErrPeerDisconnected):
				sessLogger.Warning("client disconnected")
			case errors.Is(err, wire.ErrPeerTimeout):
				sessLogger.Warning("client timed out")
			case errors.Is(err, protocol.ErrMalformedMessage):
				sessLogger.WithError(err).Error("malformed frame")
				// Best effort; the legacy format has no ERROR representation.
				_ = conn.Send(errorMessage("malformed message"))
			default:
				sessLogger.WithError(err).Error("receive message failed")
			}
			return
		}
		sessLogger.WithFields(log.MessageToFields(msg)).Debug("received message")
		replies, handleErr := sess.Handle(msg)
		for _, reply := range replies {
			if err := conn.Send(reply); err != nil {
				if errors.Is(err, protocol.ErrNoLegacyEncoding) {
					continue
				}
				sessLogger.WithError(err).Error("send reply failed")
				return
			}
			sessLogger.WithFields(log.MessageToFields(reply)).Debug("sent message")
		}
		if handleErr != nil {
			sessLogger.WithError(handleErr).Error("session terminated")
			return
		}
	}
	sessLogger.WithField("score", sess.Score()).Info("game completed")
}

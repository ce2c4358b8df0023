package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a Server accepts connections on, plain
// TCP or TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long running network server. Start blocks until the server is
// stopped and returns nil after a clean Stop.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

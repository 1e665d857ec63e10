// Package portfinder picks a TCP port to listen on by probing upward from a
// preferred one.
package portfinder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"go.uber.org/zap"
)

const maxPort = 65535

var ErrNoPortAvailable = errors.New("no available port")

type listenFunc func(ctx context.Context, network, address string) (net.Listener, error)

// Finder probes ports by binding and immediately releasing a listener.
// Only "address in use" moves the search on; any other bind error ends it.
type Finder struct {
	// Host is the interface to probe. Empty means all interfaces.
	Host string
	// MaxAttempts bounds the number of probed ports. Zero means no bound
	// other than the top of the port range.
	MaxAttempts int
	Logger      *zap.Logger

	listen listenFunc
}

func New(logger *zap.Logger, maxAttempts int) *Finder {
	return &Finder{Logger: logger, MaxAttempts: maxAttempts}
}

// FindAvailablePort probes all interfaces starting at start with no attempt limit.
func FindAvailablePort(ctx context.Context, start int) (int, error) {
	return (&Finder{}).Find(ctx, start)
}

// Find returns the first port at or above start that could be bound.
// A start of 0 returns the ephemeral port chosen by the OS.
func (f *Finder) Find(ctx context.Context, start int) (int, error) {
	if start < 0 || start > maxPort {
		return 0, fmt.Errorf("invalid start port %d", start)
	}

	listen := f.listen
	if listen == nil {
		lc := net.ListenConfig{}
		listen = lc.Listen
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for port, attempts := start, 0; port <= maxPort; port++ {
		if f.MaxAttempts > 0 && attempts == f.MaxAttempts {
			return 0, fmt.Errorf("%w: tried %d ports from %d", ErrNoPortAvailable, attempts, start)
		}
		attempts++

		if err := ctx.Err(); err != nil {
			return 0, err
		}

		ln, err := listen(ctx, "tcp", net.JoinHostPort(f.Host, strconv.Itoa(port)))
		if err != nil {
			if addrInUse(err) {
				logger.Info("port in use, trying next", zap.Int("port", port))
				continue
			}
			return 0, fmt.Errorf("bind port %d: %w", port, err)
		}

		bound := port
		if addr, ok := ln.Addr().(*net.TCPAddr); ok {
			bound = addr.Port
		}
		if err := ln.Close(); err != nil {
			return 0, fmt.Errorf("release port %d: %w", bound, err)
		}
		return bound, nil
	}

	return 0, fmt.Errorf("%w: reached port %d", ErrNoPortAvailable, maxPort)
}

// addrInUse reports whether err is the platform's "address already in use".
func addrInUse(err error) bool {
	for _, errno := range inUseErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

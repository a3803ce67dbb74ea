package app

import (
	"context"
	"errors"
	"net"
	"strings"
)

// isTransientError reports whether a page-load failure looks like a passing
// network condition rather than the target being gone. Only used to annotate
// attempt logs; every failure consumes an attempt either way.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return true
	case strings.Contains(msg, "context deadline exceeded"):
		return true
	case strings.Contains(msg, "tls handshake"):
		return true
	case strings.Contains(msg, "connection refused"):
		return true
	case strings.Contains(msg, "connection reset"):
		return true
	case strings.Contains(msg, "no such host"):
		return true
	case strings.Contains(msg, "temporary failure in name resolution"):
		return true
	case strings.Contains(msg, "i/o timeout"):
		return true
	case strings.Contains(msg, "network is unreachable"):
		return true
	// Chromium navigation errors surface as net::ERR_* codes.
	case strings.Contains(msg, "net::err_connection"):
		return true
	case strings.Contains(msg, "net::err_name_not_resolved"):
		return true
	case strings.Contains(msg, "net::err_timed_out"):
		return true
	case strings.Contains(msg, "net::err_network_changed"):
		return true
	}
	return false
}

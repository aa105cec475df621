package gallery

import (
	"net"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// CheckConnectivity dials the gallery host once before the pipeline runs,
// to tell "this network cannot reach the marketplace at all" apart from
// per-request failures later on. This is advisory: callers log a warning and
// continue, since the check can be wrong (e.g. traffic that must flow
// through a proxy).
func CheckConnectivity(baseURL string, timeout time.Duration) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return goerr.Wrap(err, "invalid gallery base URL", goerr.V("url", baseURL))
	}

	addr := u.Host
	if u.Port() == "" {
		if u.Scheme == "http" {
			addr += ":80"
		} else {
			addr += ":443"
		}
	}

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return goerr.Wrap(err, "cannot reach marketplace host", goerr.V("addr", addr))
	}
	_ = conn.Close()

	return nil
}

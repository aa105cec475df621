package gallery

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vsixget/pkg/domain/interfaces"
	"github.com/m-mizutani/vsixget/pkg/domain/model"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
)

const copyBufferSize = 64 * 1024

// Config holds the explicit client configuration. It is threaded through the
// constructor; nothing reads process-wide proxy or timeout state.
type Config struct {
	BaseURL  string
	Platform string
	Timeout  time.Duration
	Proxy    string `masq:"secret"` // may embed credentials in the userinfo part
}

// Client talks to a marketplace gallery API. The metadata exchange is small
// and bounded end to end; the package download bounds only connection
// establishment and header receipt, so a healthy transfer of a large package
// may legitimately run far longer than the per-request timeout.
type Client struct {
	cfg        Config
	metaClient *http.Client
	dlClient   *http.Client
}

// New creates a gallery client. Zero-value config fields fall back to the
// public marketplace defaults.
func New(cfg Config) (interfaces.GalleryClient, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Platform == "" {
		cfg.Platform = DefaultPlatform
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: cfg.Timeout}).DialContext
	transport.TLSHandshakeTimeout = cfg.Timeout
	transport.ResponseHeaderTimeout = cfg.Timeout
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid proxy URL")
		}
		// Applies to both http and https requests.
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &Client{
		cfg:        cfg,
		metaClient: &http.Client{Transport: transport, Timeout: cfg.Timeout},
		// No Client.Timeout here: that deadline covers the body read
		// and would kill a slow but progressing package transfer. The
		// transport above still bounds connect and header receipt.
		dlClient: &http.Client{Transport: transport},
	}, nil
}

func (x *Client) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", rawURL))
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("User-Agent", "vsixget/"+types.Version)

	ctxlog.From(ctx).Debug("sending request",
		"url", rawURL,
		"request_id", reqID,
		"timeout", x.cfg.Timeout.String(),
	)

	return req, nil
}

// LatestVersion queries the metadata endpoint and returns versions[0].version
// of the decoded payload. The server returns versions newest-first; the list
// is not re-sorted here. 404 is classified as not-found, timeouts and
// connection failures as transport errors; everything else (including a
// malformed or empty versions list) is a plain error the caller may degrade
// on.
func (x *Client) LatestVersion(ctx context.Context, ref *model.ExtensionRef) (string, error) {
	logger := ctxlog.From(ctx)
	apiURL := metadataURL(x.cfg.BaseURL, ref)

	logger.Info("fetching version info", "url", apiURL, "extension", ref.String())

	req, err := x.newRequest(ctx, apiURL)
	if err != nil {
		return "", err
	}

	resp, err := x.metaClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "version metadata request failed",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", apiURL),
		)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", goerr.New("extension not found on the marketplace",
			goerr.T(types.ErrTagNotFound),
			goerr.V("extension", ref.String()),
			goerr.V("url", apiURL),
		)

	case resp.StatusCode != http.StatusOK:
		return "", goerr.New("unexpected status from version metadata endpoint",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", apiURL),
		)
	}

	var meta struct {
		Versions []struct {
			Version string `json:"version"`
		} `json:"versions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return "", goerr.Wrap(err, "failed to decode version metadata", goerr.V("url", apiURL))
	}

	if len(meta.Versions) == 0 || meta.Versions[0].Version == "" {
		return "", goerr.New("version metadata has no versions", goerr.V("url", apiURL))
	}

	return meta.Versions[0].Version, nil
}

// Download streams one target's payload into its temporary file. Any stale
// temporary file is removed before starting, and the partial file is removed
// on failure, so a temp file never survives a failed attempt.
func (x *Client) Download(ctx context.Context, target model.DownloadTarget) (int64, error) {
	logger := ctxlog.From(ctx)
	tmpPath := target.TempPath()

	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		return 0, goerr.Wrap(err, "failed to remove stale temporary file", goerr.V("path", tmpPath))
	}

	req, err := x.newRequest(ctx, target.URL)
	if err != nil {
		return 0, err
	}

	resp, err := x.dlClient.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "download request failed",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", target.URL),
		)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, goerr.New("package not found",
			goerr.T(types.ErrTagNotFound),
			goerr.V("url", target.URL),
		)

	case resp.StatusCode != http.StatusOK:
		// Marketplace frontends answer with transient 5xx under load;
		// treat any unexpected status as retryable.
		return 0, goerr.New("unexpected status from download endpoint",
			goerr.T(types.ErrTagTransport),
			goerr.V("status", resp.StatusCode),
			goerr.V("url", target.URL),
		)
	}

	total := resp.ContentLength
	if total > 0 {
		logger.Info("downloading", "total_mb", toMB(total), "url", target.URL)
	} else {
		logger.Info("downloading, size unknown", "url", target.URL)
	}

	f, err := os.Create(tmpPath)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create temporary file", goerr.V("path", tmpPath))
	}

	progress := newProgressWriter(logger, total)
	written, err := io.CopyBuffer(io.MultiWriter(f, progress), resp.Body, make([]byte, copyBufferSize))
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return 0, goerr.Wrap(err, "download interrupted",
			goerr.T(types.ErrTagTransport),
			goerr.V("url", target.URL),
			goerr.V("received", written),
		)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, goerr.Wrap(err, "failed to finalize temporary file", goerr.V("path", tmpPath))
	}

	logger.Info("download finished", "received_mb", toMB(written), "path", tmpPath)
	return written, nil
}

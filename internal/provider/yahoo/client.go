// Package yahoo implements provider.Provider on top of the public Yahoo Finance
// chart and quoteSummary endpoints.
package yahoo

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/guttosm/stockapi/config"
	"github.com/guttosm/stockapi/internal/logger"
	"github.com/guttosm/stockapi/internal/provider"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	chartPath   = "/v8/finance/chart/{symbol}"
	summaryPath = "/v10/finance/quoteSummary/{symbol}"
	crumbPath   = "/v1/test/getcrumb"
)

// Client talks to Yahoo Finance. It is safe for concurrent use.
type Client struct {
	http      *resty.Client
	cookieURL string

	crumbs *cache.Cache
	group  singleflight.Group
}

var _ provider.Provider = (*Client)(nil)

// New builds a Client from the provider configuration.
//
// The underlying resty client keeps a cookie jar, which carries the session
// cookie required by quoteSummary between calls.
func New(cfg config.ProviderConfig) *Client {
	ttl := cfg.CrumbTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetLogger(restyLogger{}).
		SetHeaders(map[string]string{
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, br",
			"User-Agent":      cfg.UserAgent,
		})
	rc.OnAfterResponse(decompress)
	rc.OnAfterResponse(logCall)

	return &Client{
		http:      rc,
		cookieURL: cfg.CookieURL,
		crumbs:    cache.New(ttl, 2*ttl),
	}
}

// Name identifies the provider in logs.
func (c *Client) Name() string { return "yahoo" }

// Close drops the cached session and idle upstream connections.
func (c *Client) Close() {
	c.crumbs.Flush()
	c.http.GetClient().CloseIdleConnections()
}

func logCall(_ *resty.Client, resp *resty.Response) error {
	ctx := resp.Request.Context()
	logger.Ctx(ctx).Debug().
		Str("provider", "yahoo").
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Int64("latency_ms", resp.Time().Milliseconds()).
		Msg("upstream_call")
	return nil
}

// restyLogger routes resty's own warnings into the application logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logger.L().Error().Str("provider", "yahoo").Msg(fmt.Sprintf(format, v...))
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logger.L().Warn().Str("provider", "yahoo").Msg(fmt.Sprintf(format, v...))
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logger.L().Debug().Str("provider", "yahoo").Msg(fmt.Sprintf(format, v...))
}

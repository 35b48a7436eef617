package yahoo

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/stockapi/internal/logger"
	"github.com/guttosm/stockapi/internal/provider"
	"github.com/patrickmn/go-cache"
)

const crumbKey = "crumb"

// crumb returns the session crumb quoteSummary requires, establishing the
// session cookie first when none is cached. Concurrent callers share one refresh.
func (c *Client) crumb(ctx context.Context) (string, error) {
	if v, ok := c.crumbs.Get(crumbKey); ok {
		return v.(string), nil
	}

	v, err, _ := c.group.Do(crumbKey, func() (interface{}, error) {
		if v, ok := c.crumbs.Get(crumbKey); ok {
			return v, nil
		}
		crumb, err := c.fetchCrumb(ctx)
		if err != nil {
			return nil, err
		}
		c.crumbs.Set(crumbKey, crumb, cache.DefaultExpiration)
		logger.Ctx(ctx).Debug().Str("provider", "yahoo").Msg("session crumb refreshed")
		return crumb, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) fetchCrumb(ctx context.Context) (string, error) {
	// The cookie endpoint answers 404 but sets the session cookie in the jar.
	if _, err := c.http.R().SetContext(ctx).SetHeader("Accept", "text/html").Get(c.cookieURL); err != nil {
		return "", fmt.Errorf("yahoo session cookie: %w", err)
	}

	resp, err := c.http.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get(crumbPath)
	if err != nil {
		return "", fmt.Errorf("yahoo crumb: %w", err)
	}
	crumb := strings.TrimSpace(resp.String())
	if !resp.IsSuccess() || crumb == "" || strings.ContainsAny(crumb, "<{ ") {
		return "", fmt.Errorf("yahoo crumb: %w: status %d", provider.ErrUpstream, resp.StatusCode())
	}
	return crumb, nil
}

func (c *Client) invalidateCrumb() {
	c.crumbs.Delete(crumbKey)
}

// Ping checks that a provider session can be established.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.crumb(ctx)
	return err
}

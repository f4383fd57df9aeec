package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"

	"docscrawl/internal/config"
)

// Session owns one headless browser process for the lifetime of a crawl.
// Tabs for individual pages are derived from its browser context.
type Session struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
}

// SessionOption configures a Session.
type SessionOption func(*sessionSettings)

type sessionSettings struct {
	userAgent string
	cookies   []config.Cookie
}

// WithUserAgent overrides the browser's default User-Agent.
func WithUserAgent(ua string) SessionOption {
	return func(s *sessionSettings) {
		s.userAgent = ua
	}
}

// WithCookies injects session cookies into the browser before the first
// navigation. Used for crawling login-walled sites with a saved session.
func WithCookies(cookies []config.Cookie) SessionOption {
	return func(s *sessionSettings) {
		s.cookies = cookies
	}
}

// NewSession starts a headless browser and returns a Session bound to it.
// The browser is warmed immediately so a broken Chrome installation fails
// here, before the crawl begins, rather than on the first page.
func NewSession(ctx context.Context, opts ...SessionOption) (*Session, error) {
	var settings sessionSettings
	for _, opt := range opts {
		opt(&settings)
	}

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	if ua := strings.TrimSpace(settings.userAgent); ua != "" {
		execOpts = append(execOpts, chromedp.UserAgent(ua))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, execOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	s := &Session{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
	}

	actions := []chromedp.Action{
		// A no-op navigation forces the browser process to start.
		chromedp.Navigate("about:blank"),
	}
	if len(settings.cookies) > 0 {
		actions = append(actions, setCookiesAction(settings.cookies))
	}
	if err := chromedp.Run(browserCtx, actions...); err != nil {
		s.Close()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	return s, nil
}

// NewTab derives a context for one page render, with its own deadline.
// The returned cancel must be called to close the tab.
func (s *Session) NewTab(timeout time.Duration) (context.Context, context.CancelFunc) {
	tabCtx, tabCancel := chromedp.NewContext(s.browserCtx)
	timeoutCtx, timeoutCancel := context.WithTimeout(tabCtx, timeout)
	return timeoutCtx, func() {
		timeoutCancel()
		tabCancel()
	}
}

// Close shuts the browser down. Safe to call more than once.
func (s *Session) Close() {
	s.browserCancel()
	s.allocCancel()
}

// setCookiesAction converts the credential-file cookies to CDP cookie
// parameters and installs them in the browser's cookie store.
func setCookiesAction(cookies []config.Cookie) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		params := make([]*network.CookieParam, 0, len(cookies))
		for _, c := range cookies {
			p := &network.CookieParam{
				Name:     c.Name,
				Value:    c.Value,
				Domain:   c.Domain,
				Path:     c.Path,
				Secure:   c.Secure,
				HTTPOnly: c.HTTPOnly,
			}
			// Exports use -1 or 0 for session cookies; only a positive
			// expiry is meaningful.
			if c.Expires > 0 {
				exp := cdp.TimeSinceEpoch(time.Unix(int64(c.Expires), 0))
				p.Expires = &exp
			}
			switch strings.ToLower(c.SameSite) {
			case "lax":
				p.SameSite = network.CookieSameSiteLax
			case "strict":
				p.SameSite = network.CookieSameSiteStrict
			case "none":
				p.SameSite = network.CookieSameSiteNone
			}
			params = append(params, p)
		}
		return storage.SetCookies(params).Do(ctx)
	})
}

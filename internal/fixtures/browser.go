// Package fixtures provides per-test dependencies for the browser scenarios:
// an isolated browser context, the page objects bound to it, a seeded data
// factory and leased remote accounts.
package fixtures

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/exercise-e2e/internal/config"
)

// Browser owns the Playwright driver and one launched browser for a test binary
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.SiteConfig
}

// LaunchBrowser starts Playwright and the engine named in cfg.
// Browsers must already be installed with the playwright CLI.
func LaunchBrowser(cfg *config.SiteConfig) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	var engine playwright.BrowserType
	switch cfg.Browser {
	case config.BrowserFirefox:
		engine = pw.Firefox
	case config.BrowserWebKit:
		engine = pw.WebKit
	default:
		engine = pw.Chromium
	}

	browser, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	return &Browser{pw: pw, browser: browser, cfg: cfg}, nil
}

// Close shuts the browser and the driver down
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		b.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return b.pw.Stop()
}

// NewContext opens an isolated context rooted at the configured base URL.
// It is closed when the test ends.
func (b *Browser) NewContext(t testing.TB) playwright.BrowserContext {
	t.Helper()

	bctx, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(b.cfg.BaseURL),
	})
	if err != nil {
		t.Fatalf("failed to create browser context: %v", err)
	}
	bctx.SetDefaultTimeout(b.cfg.ActionTimeoutMillis())
	bctx.SetDefaultNavigationTimeout(b.cfg.NavigationTimeoutMillis())

	t.Cleanup(func() {
		if err := bctx.Close(); err != nil {
			t.Logf("failed to close browser context: %v", err)
		}
	})

	return bctx
}

// NewPage opens a tab in a fresh context
func (b *Browser) NewPage(t testing.TB) playwright.Page {
	t.Helper()

	page, err := b.NewContext(t).NewPage()
	if err != nil {
		t.Fatalf("failed to open page: %v", err)
	}
	return page
}

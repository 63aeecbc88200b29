// Package pages holds one page object per screen of the shop.
//
// Page objects never hold resolved elements. Every locator accessor builds
// its query against the tab when it is called, so constructing a page
// object touches neither the network nor the DOM.
package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/themizzi/exercise-e2e/internal/step"
)

// Handle is the part of a browser tab the page objects query.
// playwright.Page satisfies it.
type Handle interface {
	Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error)
	Title() (string, error)
	Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator
	GetByRole(role playwright.AriaRole, options ...playwright.PageGetByRoleOptions) playwright.Locator
	GetByTestId(testId interface{}) playwright.Locator
	GetByText(text interface{}, options ...playwright.PageGetByTextOptions) playwright.Locator
	GetByTitle(text interface{}, options ...playwright.PageGetByTitleOptions) playwright.Locator
	GetByLabel(text interface{}, options ...playwright.PageGetByLabelOptions) playwright.Locator
}

// BasePage carries the waiting and interaction primitives shared by every page
type BasePage struct {
	page    Handle
	log     logrus.FieldLogger
	timeout time.Duration
}

// NewBasePage binds the primitives to one tab. timeout bounds every visibility wait.
func NewBasePage(page Handle, log logrus.FieldLogger, timeout time.Duration) BasePage {
	return BasePage{
		page:    page,
		log:     log,
		timeout: timeout,
	}
}

// Page returns the tab the page object is bound to
func (b *BasePage) Page() Handle {
	return b.page
}

// NavigateTo loads url, relative to the context base URL when it starts with /
func (b *BasePage) NavigateTo(url string) error {
	if _, err := b.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// WaitForVisible blocks until locator is visible or the timeout elapses
func (b *BasePage) WaitForVisible(locator playwright.Locator) error {
	return locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: b.timeoutMillis(),
	})
}

// WaitForHidden blocks until locator is hidden or detached, or the timeout elapses
func (b *BasePage) WaitForHidden(locator playwright.Locator) error {
	return locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: b.timeoutMillis(),
	})
}

// ScrollIntoView scrolls locator into the viewport if it is not already there
func (b *BasePage) ScrollIntoView(locator playwright.Locator) error {
	return locator.ScrollIntoViewIfNeeded()
}

// SelectRadio checks a radio or checkbox
func (b *BasePage) SelectRadio(locator playwright.Locator) error {
	return locator.Check()
}

// Title returns the document title
func (b *BasePage) Title() (string, error) {
	return b.page.Title()
}

func (b *BasePage) timeoutMillis() *float64 {
	return playwright.Float(float64(b.timeout.Milliseconds()))
}

func (b *BasePage) step(name string, fn func() error) error {
	return step.Run(b.log, name, fn)
}

func (b *BasePage) stepf(fn func() error, format string, args ...any) error {
	return step.Runf(b.log, fn, format, args...)
}

// waitAndClick is the guard-then-act shape most composite actions share
func (b *BasePage) waitAndClick(locator playwright.Locator) error {
	if err := b.WaitForVisible(locator); err != nil {
		return err
	}
	return locator.Click()
}

func (b *BasePage) textOf(locator playwright.Locator) (string, error) {
	if err := b.WaitForVisible(locator); err != nil {
		return "", err
	}
	return locator.TextContent()
}

func named(name interface{}) playwright.PageGetByRoleOptions {
	return playwright.PageGetByRoleOptions{Name: name}
}

func exactlyNamed(name string) playwright.PageGetByRoleOptions {
	return playwright.PageGetByRoleOptions{Name: name, Exact: playwright.Bool(true)}
}

package pages

import "github.com/playwright-community/playwright-go"

// AccountDeletedPage confirms an account removal done through the UI
type AccountDeletedPage struct {
	BasePage
}

// NewAccountDeletedPage creates an AccountDeletedPage
func NewAccountDeletedPage(base BasePage) *AccountDeletedPage {
	return &AccountDeletedPage{BasePage: base}
}

func (p *AccountDeletedPage) Heading() playwright.Locator {
	return p.page.GetByTestId("account-deleted")
}

func (p *AccountDeletedPage) ContinueButton() playwright.Locator {
	return p.page.GetByTestId("continue-button")
}

// WaitForHeading waits for the confirmation heading and returns it
func (p *AccountDeletedPage) WaitForHeading() (playwright.Locator, error) {
	heading := p.Heading()
	if err := p.WaitForVisible(heading); err != nil {
		return nil, err
	}
	return heading, nil
}

func (p *AccountDeletedPage) ClickContinue() error {
	return p.step("Click Continue button", func() error {
		return p.waitAndClick(p.ContinueButton())
	})
}

package pages

import (
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/exercise-e2e/internal/dataset"
)

var downloadInvoiceLink = regexp.MustCompile(`(?i)Download Invoice`)

// PaymentPage takes card details and shows the order confirmation
type PaymentPage struct {
	BasePage
}

// NewPaymentPage creates a PaymentPage
func NewPaymentPage(base BasePage) *PaymentPage {
	return &PaymentPage{BasePage: base}
}

func (p *PaymentPage) NameOnCardInput() playwright.Locator {
	return p.page.GetByTestId("name-on-card")
}

func (p *PaymentPage) CardNumberInput() playwright.Locator {
	return p.page.GetByTestId("card-number")
}

func (p *PaymentPage) CVCInput() playwright.Locator {
	return p.page.GetByTestId("cvc")
}

func (p *PaymentPage) ExpirationMonthInput() playwright.Locator {
	return p.page.GetByTestId("expiry-month")
}

func (p *PaymentPage) ExpirationYearInput() playwright.Locator {
	return p.page.GetByTestId("expiry-year")
}

func (p *PaymentPage) PayAndConfirmButton() playwright.Locator {
	return p.page.GetByTestId("pay-button")
}

func (p *PaymentPage) SuccessMessage() playwright.Locator {
	return p.page.GetByText(dataset.MessageOrderSuccess)
}

func (p *PaymentPage) DownloadInvoiceButton() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named(downloadInvoiceLink))
}

func (p *PaymentPage) ContinueButton() playwright.Locator {
	return p.page.GetByTestId("continue-button")
}

// EnterPaymentDetails fills every card field from card
func (p *PaymentPage) EnterPaymentDetails(card dataset.PaymentCard) error {
	return p.step("Enter payment details", func() error {
		fields := []struct {
			input playwright.Locator
			value string
		}{
			{p.NameOnCardInput(), card.NameOnCard},
			{p.CardNumberInput(), card.CardNumber},
			{p.CVCInput(), card.CVC},
			{p.ExpirationMonthInput(), card.ExpirationMonth},
			{p.ExpirationYearInput(), card.ExpirationYear},
		}
		for _, f := range fields {
			if err := f.input.Fill(f.value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *PaymentPage) ClickPayAndConfirm() error {
	return p.step("Click Pay and Confirm Order button", func() error {
		return p.waitAndClick(p.PayAndConfirmButton())
	})
}

// SuccessMessageText waits for the confirmation and returns its text
func (p *PaymentPage) SuccessMessageText() (string, error) {
	return p.textOf(p.SuccessMessage())
}

func (p *PaymentPage) ClickDownloadInvoice() error {
	return p.step("Click Download Invoice button", func() error {
		return p.waitAndClick(p.DownloadInvoiceButton())
	})
}

func (p *PaymentPage) ClickContinue() error {
	return p.step("Click Continue button", func() error {
		return p.waitAndClick(p.ContinueButton())
	})
}

package pages

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

var registerLoginLink = regexp.MustCompile(`(?i)Register.*Login`)

// CheckoutPage shows the addresses and the order review before payment
type CheckoutPage struct {
	BasePage
}

// NewCheckoutPage creates a CheckoutPage
func NewCheckoutPage(base BasePage) *CheckoutPage {
	return &CheckoutPage{BasePage: base}
}

func (p *CheckoutPage) DeliveryAddressSection() playwright.Locator {
	return p.page.Locator("#address_delivery")
}

func (p *CheckoutPage) BillingAddressSection() playwright.Locator {
	return p.page.Locator("#address_invoice")
}

func (p *CheckoutPage) ReviewOrderSection() playwright.Locator {
	return p.page.Locator("#cart_info")
}

func (p *CheckoutPage) CommentTextArea() playwright.Locator {
	return p.page.Locator("textarea.form-control")
}

func (p *CheckoutPage) PlaceOrderButton() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named("Place Order"))
}

func (p *CheckoutPage) RegisterLoginLink() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named(registerLoginLink))
}

// ClickRegisterLogin follows the prompt shown to anonymous shoppers
func (p *CheckoutPage) ClickRegisterLogin() error {
	return p.step("Click Register/Login link", func() error {
		return p.waitAndClick(p.RegisterLoginLink())
	})
}

// VerifyAddressDetails waits for the delivery and billing blocks independently
func (p *CheckoutPage) VerifyAddressDetails() error {
	return p.step("Verify Address Details", func() error {
		if err := p.WaitForVisible(p.DeliveryAddressSection()); err != nil {
			return err
		}
		return p.WaitForVisible(p.BillingAddressSection())
	})
}

// ReviewOrder waits for the order review table and returns it
func (p *CheckoutPage) ReviewOrder() (playwright.Locator, error) {
	section := p.ReviewOrderSection()
	if err := p.WaitForVisible(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (p *CheckoutPage) DeliveryAddress() (string, error) {
	return p.textOf(p.DeliveryAddressSection())
}

func (p *CheckoutPage) BillingAddress() (string, error) {
	return p.textOf(p.BillingAddressSection())
}

func (p *CheckoutPage) EnterComment(comment string) error {
	return p.stepf(func() error {
		area := p.CommentTextArea()
		if err := p.WaitForVisible(area); err != nil {
			return err
		}
		return area.Fill(comment)
	}, "Enter comment: %s", comment)
}

func (p *CheckoutPage) ClickPlaceOrder() error {
	return p.step("Click Place Order button", func() error {
		return p.waitAndClick(p.PlaceOrderButton())
	})
}

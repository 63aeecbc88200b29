package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/exercise-e2e/internal/dataset"
)

// HomePage is the landing page and the navigation bar shared by every screen
type HomePage struct {
	BasePage
}

// NewHomePage creates a HomePage
func NewHomePage(base BasePage) *HomePage {
	return &HomePage{BasePage: base}
}

func (p *HomePage) TitleElement() playwright.Locator {
	return p.page.GetByTitle(dataset.TitleHome)
}

func (p *HomePage) HomeLink() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named("Home"))
}

func (p *HomePage) ProductsLink() playwright.Locator {
	return p.page.Locator(`a[href="/products"]`).First()
}

func (p *HomePage) CartLink() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named("Cart")).First()
}

func (p *HomePage) SignupLoginLink() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named("Signup / Login"))
}

func (p *HomePage) LogoutLink() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named("Logout"))
}

func (p *HomePage) DeleteAccountLink() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleLink, named("Delete Account"))
}

// LoggedInUserName locates the "Logged in as" banner for name
func (p *HomePage) LoggedInUserName(name string) playwright.Locator {
	return p.page.GetByText("Logged in as " + name)
}

// NavigateToHomePage opens the site root
func (p *HomePage) NavigateToHomePage() error {
	return p.NavigateTo("/")
}

func (p *HomePage) ClickProductsLink() error {
	return p.step("Click on Products link", func() error {
		return p.waitAndClick(p.ProductsLink())
	})
}

func (p *HomePage) ClickCartLink() error {
	return p.step("Click on Cart link", func() error {
		return p.waitAndClick(p.CartLink())
	})
}

func (p *HomePage) ClickSignupLoginLink() error {
	return p.step("Click on Signup/Login link", func() error {
		return p.waitAndClick(p.SignupLoginLink())
	})
}

func (p *HomePage) WaitForLoggedInUserName(name string) error {
	return p.WaitForVisible(p.LoggedInUserName(name))
}

func (p *HomePage) WaitForProductsLink() error {
	return p.WaitForVisible(p.ProductsLink())
}

func (p *HomePage) WaitForCartLink() error {
	return p.WaitForVisible(p.CartLink())
}

func (p *HomePage) WaitForSignupLoginLink() error {
	return p.WaitForVisible(p.SignupLoginLink())
}

func (p *HomePage) WaitForLogoutLink() error {
	return p.WaitForVisible(p.LogoutLink())
}

func (p *HomePage) WaitForDeleteAccountLink() error {
	return p.WaitForVisible(p.DeleteAccountLink())
}

// Logout ends the session through the navigation bar
func (p *HomePage) Logout() error {
	return p.step("Logout", func() error {
		return p.waitAndClick(p.LogoutLink())
	})
}

// DeleteAccount removes the logged-in account through the navigation bar
func (p *HomePage) DeleteAccount() error {
	return p.step("Delete Account", func() error {
		return p.waitAndClick(p.DeleteAccountLink())
	})
}

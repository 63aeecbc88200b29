package pages

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

var (
	allProductsHeading = regexp.MustCompile(`(?i)All Products`)
	viewProductLink    = regexp.MustCompile(`(?i)View Product`)
)

// ProductsPage lists the catalogue as cards
type ProductsPage struct {
	BasePage
}

// NewProductsPage creates a ProductsPage
func NewProductsPage(base BasePage) *ProductsPage {
	return &ProductsPage{BasePage: base}
}

func (p *ProductsPage) HeadingAllProducts() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleHeading, named(allProductsHeading))
}

func (p *ProductsPage) ProductCards() playwright.Locator {
	return p.page.Locator(".features_items .col-sm-4")
}

// ProductCardByName narrows the cards to the one whose text equals name exactly
func (p *ProductsPage) ProductCardByName(name string) playwright.Locator {
	return p.ProductCards().Filter(playwright.LocatorFilterOptions{
		Has: p.page.GetByText(name, playwright.PageGetByTextOptions{Exact: playwright.Bool(true)}),
	})
}

func (p *ProductsPage) WaitForHeadingAllProducts() error {
	return p.WaitForVisible(p.HeadingAllProducts())
}

// ClickViewProduct opens the detail page of the named product
func (p *ProductsPage) ClickViewProduct(name string) error {
	return p.stepf(func() error {
		if err := p.WaitForHeadingAllProducts(); err != nil {
			return err
		}
		card := p.ProductCardByName(name)
		if err := p.ScrollIntoView(card); err != nil {
			return err
		}
		return card.GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{Name: viewProductLink}).Click()
	}, "Click on View Product for %q", name)
}

package pages

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

var emptyCartText = regexp.MustCompile(`(?i)Cart is empty!`)

// CartPage is the cart table and its checkout button
type CartPage struct {
	BasePage
}

// NewCartPage creates a CartPage
func NewCartPage(base BasePage) *CartPage {
	return &CartPage{BasePage: base}
}

func (p *CartPage) CartTable() playwright.Locator {
	return p.page.Locator("#cart_info_table")
}

func (p *CartPage) ProceedToCheckoutButton() playwright.Locator {
	return p.page.Locator("a.btn.check_out").Filter(playwright.LocatorFilterOptions{HasText: "Proceed To Checkout"})
}

func (p *CartPage) EmptyCart() playwright.Locator {
	return p.page.Locator("#empty_cart").GetByText(emptyCartText)
}

// ProductInCart locates the product name inside the cart table, exact match
func (p *CartPage) ProductInCart(name string) playwright.Locator {
	return p.CartTable().GetByText(name, playwright.LocatorGetByTextOptions{Exact: playwright.Bool(true)})
}

// Row locates the table row holding a link named exactly name.
// A name that is a prefix of another product's name does not match that row.
func (p *CartPage) Row(name string) playwright.Locator {
	return p.page.Locator("tr", playwright.PageLocatorOptions{
		Has: p.page.GetByRole(*playwright.AriaRoleLink, exactlyNamed(name)),
	})
}

func (p *CartPage) ClickProceedToCheckout() error {
	return p.waitAndClick(p.ProceedToCheckoutButton())
}

// DeleteProduct removes the named product's row
func (p *CartPage) DeleteProduct(name string) error {
	return p.stepf(func() error {
		return p.Row(name).Locator("td.cart_delete a.cart_quantity_delete").Click()
	}, "Delete product %q from cart", name)
}

// ProductName returns the link text of the named row
func (p *CartPage) ProductName(name string) (string, error) {
	return p.Row(name).GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{
		Name:  name,
		Exact: playwright.Bool(true),
	}).TextContent()
}

// ProductPrice returns the unit price cell of the named row
func (p *CartPage) ProductPrice(name string) (string, error) {
	return p.Row(name).Locator("td.cart_price p").TextContent()
}

// ProductQuantity returns the quantity button text of the named row
func (p *CartPage) ProductQuantity(name string) (string, error) {
	return p.Row(name).GetByRole(*playwright.AriaRoleButton).TextContent()
}

// ProductTotalPrice returns the line total of the named row
func (p *CartPage) ProductTotalPrice(name string) (string, error) {
	return p.Row(name).Locator("p.cart_total_price").TextContent()
}

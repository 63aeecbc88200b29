package pages

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

var (
	detailPrice            = regexp.MustCompile(`^Rs\.\s*\d+$`)
	addToCartButton        = regexp.MustCompile(`(?i)Add to cart`)
	addedModalTitle        = regexp.MustCompile(`(?i)Added!`)
	continueShoppingButton = regexp.MustCompile(`(?i)Continue Shopping`)
)

// ProductDetailPage shows one product with its add-to-cart control
type ProductDetailPage struct {
	BasePage
}

// NewProductDetailPage creates a ProductDetailPage
func NewProductDetailPage(base BasePage) *ProductDetailPage {
	return &ProductDetailPage{BasePage: base}
}

func (p *ProductDetailPage) PriceText() playwright.Locator {
	return p.page.GetByText(detailPrice)
}

func (p *ProductDetailPage) AddToCartButton() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleButton, named(addToCartButton))
}

func (p *ProductDetailPage) AddedModalTitle() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleHeading, named(addedModalTitle))
}

func (p *ProductDetailPage) ContinueShoppingButton() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleButton, named(continueShoppingButton))
}

// Price returns the displayed unit price, e.g. "Rs. 1000"
func (p *ProductDetailPage) Price() (string, error) {
	return p.textOf(p.PriceText())
}

func (p *ProductDetailPage) AddToCart() error {
	return p.AddToCartButton().Click()
}

// ClickContinueShopping dismisses the added-to-cart modal
func (p *ProductDetailPage) ClickContinueShopping() error {
	return p.step("Click Continue Shopping", func() error {
		if err := p.WaitForVisible(p.AddedModalTitle()); err != nil {
			return err
		}
		return p.ContinueShoppingButton().Click()
	})
}

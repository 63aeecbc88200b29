package pages

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Pages is one instance of every page object, all bound to the same tab
type Pages struct {
	Home           *HomePage
	Products       *ProductsPage
	ProductDetail  *ProductDetailPage
	Cart           *CartPage
	LoginSignUp    *LoginSignUpPage
	Checkout       *CheckoutPage
	Payment        *PaymentPage
	AccountDeleted *AccountDeletedPage
}

// NewPages builds the full set for page
func NewPages(page Handle, log logrus.FieldLogger, timeout time.Duration) *Pages {
	base := NewBasePage(page, log, timeout)
	return &Pages{
		Home:           NewHomePage(base),
		Products:       NewProductsPage(base),
		ProductDetail:  NewProductDetailPage(base),
		Cart:           NewCartPage(base),
		LoginSignUp:    NewLoginSignUpPage(base),
		Checkout:       NewCheckoutPage(base),
		Payment:        NewPaymentPage(base),
		AccountDeleted: NewAccountDeletedPage(base),
	}
}

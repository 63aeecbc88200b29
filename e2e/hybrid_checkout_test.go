//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/dataset"
	"github.com/themizzi/exercise-e2e/internal/fixtures"
)

// Feature: Place order
//
//	As a shopper
//	I want to check out with a new account
//	So that my order is confirmed whether I register first or at checkout

func addBothAndOpenCart(t *testing.T, f *fixtures.Fixture, first, second api.Product) {
	t.Helper()

	addToCart(t, f, first.Name)
	addToCart(t, f, second.Name)
	require.NoError(t, f.Pages().Home.ClickCartLink())

	cart := f.Pages().Cart
	require.NoError(t, f.Expect().Locator(cart.ProductInCart(first.Name)).ToBeVisible())
	require.NoError(t, f.Expect().Locator(cart.ProductInCart(second.Name)).ToBeVisible())
}

func payAndConfirm(t *testing.T, f *fixtures.Fixture) {
	t.Helper()
	p := f.Pages()

	require.NoError(t, p.Checkout.EnterComment(dataset.CheckoutComment))
	require.NoError(t, p.Checkout.ClickPlaceOrder())
	require.NoError(t, p.Payment.EnterPaymentDetails(f.Factory.PaymentCard()))
	require.NoError(t, p.Payment.ClickPayAndConfirm())

	msg, err := p.Payment.SuccessMessageText()
	require.NoError(t, err)
	assert.Equal(t, dataset.MessageOrderSuccess, msg)
}

func TestCheckout_RegisterWhileCheckingOut(t *testing.T) {
	fixtures.With(t, env, func(f *fixtures.Fixture) {
		first, second := firstTwoProducts(t, f)
		p := f.Pages()

		// Given an anonymous shopper with two products in the cart
		require.NoError(t, p.Home.NavigateToHomePage())
		addBothAndOpenCart(t, f, first, second)

		// When they register from the checkout prompt
		require.NoError(t, p.Cart.ClickProceedToCheckout())
		require.NoError(t, p.Checkout.ClickRegisterLogin())
		user, _ := registerThroughUI(t, f)

		// And return to checkout
		require.NoError(t, p.Home.ClickCartLink())
		require.NoError(t, p.Cart.ClickProceedToCheckout())

		// Then the delivery address is theirs
		require.NoError(t, p.Checkout.VerifyAddressDetails())
		delivery, err := p.Checkout.DeliveryAddress()
		require.NoError(t, err)
		assert.Contains(t, delivery, user.Address)

		// And the order is confirmed
		payAndConfirm(t, f)
	})
}

func TestCheckout_RegisterBeforeCheckout(t *testing.T) {
	fixtures.With(t, env, func(f *fixtures.Fixture) {
		first, second := firstTwoProducts(t, f)
		p := f.Pages()

		// Given a shopper who registered first
		openSignupLogin(t, f)
		user, _ := registerThroughUI(t, f)

		// When they fill the cart and proceed
		addBothAndOpenCart(t, f, first, second)
		require.NoError(t, p.Cart.ClickProceedToCheckout())

		// Then both addresses are theirs
		require.NoError(t, p.Checkout.VerifyAddressDetails())
		delivery, err := p.Checkout.DeliveryAddress()
		require.NoError(t, err)
		assert.Contains(t, delivery, user.Address)

		billing, err := p.Checkout.BillingAddress()
		require.NoError(t, err)
		assert.Contains(t, billing, user.Address)

		_, err = p.Checkout.ReviewOrder()
		require.NoError(t, err)

		payAndConfirm(t, f)
	})
}

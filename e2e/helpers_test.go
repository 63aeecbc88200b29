//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/exercise-e2e/internal/account"
	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/dataset"
	"github.com/themizzi/exercise-e2e/internal/fixtures"
	"github.com/themizzi/exercise-e2e/internal/pricing"
)

// addToCart opens the named product from the catalogue and adds one unit
func addToCart(t *testing.T, f *fixtures.Fixture, name string) {
	t.Helper()
	p := f.Pages()

	require.NoError(t, p.Home.ClickProductsLink())
	require.NoError(t, p.Products.ClickViewProduct(name))
	require.NoError(t, p.ProductDetail.AddToCart())
	require.NoError(t, p.ProductDetail.ClickContinueShopping())
}

// openSignupLogin lands on the home page and follows the Signup / Login link
func openSignupLogin(t *testing.T, f *fixtures.Fixture) {
	t.Helper()
	p := f.Pages()

	require.NoError(t, p.Home.NavigateToHomePage())
	require.NoError(t, p.Home.ClickSignupLoginLink())
}

// registerThroughUI fills the whole sign-up form for a fresh user, confirms
// the created page and returns the user. The account is tracked so it is
// deleted when the test ends unless the scenario deletes it itself.
func registerThroughUI(t *testing.T, f *fixtures.Fixture) (dataset.User, *account.Lease) {
	t.Helper()
	p := f.Pages()

	user := f.Factory.User()
	lease := f.TrackAccount(user)

	require.NoError(t, p.LoginSignUp.FullSignUp(user))
	require.NoError(t, p.LoginSignUp.WaitForAccountCreatedMessage())
	require.NoError(t, lease.Confirm(f.Context()))
	require.NoError(t, p.LoginSignUp.ClickContinueButton())
	require.NoError(t, p.Home.WaitForLoggedInUserName(user.Name))
	return user, lease
}

// deleteThroughUI removes the logged-in account from the header link and
// drops the lease so teardown does not try again
func deleteThroughUI(t *testing.T, f *fixtures.Fixture, lease *account.Lease) {
	t.Helper()
	p := f.Pages()

	require.NoError(t, p.Home.DeleteAccount())
	heading, err := p.AccountDeleted.WaitForHeading()
	require.NoError(t, err)
	assert.NoError(t, f.Expect().Locator(heading).ToBeVisible())
	require.NoError(t, lease.Forget(f.Context()))
}

// loginWithLease signs in through the form with the leased credentials
func loginWithLease(t *testing.T, f *fixtures.Fixture, lease *account.Lease) {
	t.Helper()
	p := f.Pages()

	openSignupLogin(t, f)
	creds := lease.Credentials()
	require.NoError(t, p.LoginSignUp.Login(creds.Email, creds.Password))
	require.NoError(t, p.Home.WaitForLoggedInUserName(lease.User().Name))
}

// firstTwoProducts reads the catalogue through the API
func firstTwoProducts(t *testing.T, f *fixtures.Fixture) (api.Product, api.Product) {
	t.Helper()

	resp, err := f.API().ListProducts(f.Context())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := api.Expect(resp, http.StatusOK)
	require.NoError(t, err)
	require.Greater(t, len(body.Products), 1)

	return body.Products[0], body.Products[1]
}

// cartRow is what the cart table shows for one product
type cartRow struct {
	Name     string
	Price    string
	Quantity string
	Total    string
}

func readCartRow(t *testing.T, f *fixtures.Fixture, name string) cartRow {
	t.Helper()
	cart := f.Pages().Cart

	var row cartRow
	var err error
	row.Name, err = cart.ProductName(name)
	require.NoError(t, err)
	row.Price, err = cart.ProductPrice(name)
	require.NoError(t, err)
	row.Quantity, err = cart.ProductQuantity(name)
	require.NoError(t, err)
	row.Total, err = cart.ProductTotalPrice(name)
	require.NoError(t, err)

	return cartRow{
		Name:     pricing.NormalizeText(row.Name),
		Price:    pricing.NormalizeText(row.Price),
		Quantity: pricing.NormalizeText(row.Quantity),
		Total:    pricing.NormalizeText(row.Total),
	}
}

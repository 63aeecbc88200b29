// Package dataset holds the fixed values the scenarios assert against and
// the factory that generates per-test users and payment cards.
package dataset

// Page titles
const (
	TitleHome           = "Automation Exercise"
	TitleProducts       = "Automation Exercise - All Products"
	TitleProductDetails = "Automation Exercise - Product Details"
	TitleCart           = "Automation Exercise - Checkout"
	TitleSignupLogin    = "Automation Exercise - Signup / Login"
)

// HeadingSignUp is shown once the first sign-up step is accepted
const HeadingSignUp = "Enter Account Information"

// Messages rendered by the site or returned by its API
const (
	MessageLoginError        = "Your email or password is incorrect!"
	MessageSignUpError       = "Email Address already exist!"
	MessageOrderSuccess      = "Congratulations! Your order has been confirmed!"
	MessageAccountCreatedAPI = "User created!"
	MessageAccountDeletedAPI = "Account deleted!"
	MessageAccountUpdatedAPI = "User updated!"
	MessageUserExists        = "User exists!"
	MessageUserNotFound      = "User not found!"
	MessageAccountNotFound   = "Account not found!"
	MessageMethodUnsupported = "This request method is not supported."
)

// Gender titles as labelled on the sign-up form
const (
	GenderMale   = "Mr."
	GenderFemale = "Mrs."
)

// CheckoutComment is typed into the order comment box
const CheckoutComment = "Please deliver between 9 AM - 5 PM"

// API endpoint paths relative to the base URL
const (
	EndpointVerifyLogin          = "/api/verifyLogin"
	EndpointProductsList         = "/api/productsList"
	EndpointBrandsList           = "/api/brandsList"
	EndpointSearchProduct        = "/api/searchProduct"
	EndpointCreateAccount        = "/api/createAccount"
	EndpointDeleteAccount        = "/api/deleteAccount"
	EndpointUpdateAccount        = "/api/updateAccount"
	EndpointGetUserDetailByEmail = "/api/getUserDetailByEmail"
)

// Product is a catalogue entry as displayed on the site
type Product struct {
	Name  string
	Price string
}

// Static catalogue snippets
var (
	SleevelessDress = Product{Name: "Sleeveless Dress", Price: "Rs. 1000"}
	FancyGreenTop   = Product{Name: "Fancy Green Top", Price: "Rs. 700"}
	HalfSleevesTop  = Product{Name: "Half Sleeves Top", Price: "Rs. 359"}
	SleevesPrinted  = Product{Name: "Sleeves Printed Top", Price: "Rs. 499"}
	UnicornDress    = Product{Name: "Sleeveless Unicorn Print Fit & Flare Net Dress", Price: "Rs. 1100"}
)

// Credentials for login scenarios
type Credentials struct {
	Email    string
	Password string
}

// Fixed login variants. The existing account must be provisioned on the site beforehand.
const (
	InvalidEmail    = "brr@test.com"
	ValidPassword   = "123456"
	InvalidPassword = "1234567"
)

// Months in the order the sign-up form lists them
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Countries offered by the sign-up form that the factory picks from
var Countries = []string{
	"India", "United States", "Canada", "Australia", "Israel", "New Zealand", "Singapore",
}

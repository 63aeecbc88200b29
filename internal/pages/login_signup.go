package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/exercise-e2e/internal/dataset"
)

// SignUpField names one control of the account information form
type SignUpField string

// Account information form controls
const (
	FieldGender       SignUpField = "gender"
	FieldPassword     SignUpField = "password"
	FieldDateOfBirth  SignUpField = "date_of_birth"
	FieldFirstName    SignUpField = "first_name"
	FieldLastName     SignUpField = "last_name"
	FieldCompany      SignUpField = "company"
	FieldAddress      SignUpField = "address"
	FieldAddress2     SignUpField = "address2"
	FieldCountry      SignUpField = "country"
	FieldState        SignUpField = "state"
	FieldCity         SignUpField = "city"
	FieldZipcode      SignUpField = "zipcode"
	FieldMobileNumber SignUpField = "mobile_number"
)

// DefaultSignUpFieldOrder follows the tab order of the live form
var DefaultSignUpFieldOrder = []SignUpField{
	FieldGender,
	FieldPassword,
	FieldDateOfBirth,
	FieldFirstName,
	FieldLastName,
	FieldCompany,
	FieldAddress,
	FieldAddress2,
	FieldCountry,
	FieldState,
	FieldCity,
	FieldZipcode,
	FieldMobileNumber,
}

// ErrInvalidFieldOrder is returned when an order skips or repeats a field
var ErrInvalidFieldOrder = errors.New("invalid sign-up field order")

// ValidateFieldOrder checks that order names every form control exactly once
func ValidateFieldOrder(order []SignUpField) error {
	seen := make(map[SignUpField]bool, len(order))
	for _, f := range order {
		if !isKnownField(f) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidFieldOrder, f)
		}
		if seen[f] {
			return fmt.Errorf("%w: %q listed twice", ErrInvalidFieldOrder, f)
		}
		seen[f] = true
	}
	for _, f := range DefaultSignUpFieldOrder {
		if !seen[f] {
			return fmt.Errorf("%w: %q missing", ErrInvalidFieldOrder, f)
		}
	}
	return nil
}

func isKnownField(f SignUpField) bool {
	for _, known := range DefaultSignUpFieldOrder {
		if f == known {
			return true
		}
	}
	return false
}

// LoginSignUpPage covers the login form, the sign-up form and the account information form
type LoginSignUpPage struct {
	BasePage

	// FieldOrder is the sequence FullSignUp fills the account information form in
	FieldOrder []SignUpField
}

// NewLoginSignUpPage creates a LoginSignUpPage using DefaultSignUpFieldOrder
func NewLoginSignUpPage(base BasePage) *LoginSignUpPage {
	return &LoginSignUpPage{
		BasePage:   base,
		FieldOrder: DefaultSignUpFieldOrder,
	}
}

func (p *LoginSignUpPage) NameInput() playwright.Locator {
	return p.page.GetByTestId("signup-name")
}

func (p *LoginSignUpPage) SignUpEmailInput() playwright.Locator {
	return p.page.GetByTestId("signup-email")
}

func (p *LoginSignUpPage) SignUpButton() playwright.Locator {
	return p.page.GetByTestId("signup-button")
}

func (p *LoginSignUpPage) LoginEmailInput() playwright.Locator {
	return p.page.GetByTestId("login-email")
}

func (p *LoginSignUpPage) LoginPasswordInput() playwright.Locator {
	return p.page.GetByTestId("login-password")
}

func (p *LoginSignUpPage) LoginButton() playwright.Locator {
	return p.page.GetByTestId("login-button")
}

func (p *LoginSignUpPage) LoginErrorMessage() playwright.Locator {
	return p.page.GetByText(dataset.MessageLoginError)
}

func (p *LoginSignUpPage) SignUpErrorMessage() playwright.Locator {
	return p.page.GetByText(dataset.MessageSignUpError)
}

func (p *LoginSignUpPage) SignUpHeading() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleHeading, named(dataset.HeadingSignUp))
}

func (p *LoginSignUpPage) SignUpPasswordInput() playwright.Locator {
	return p.page.GetByTestId("password")
}

func (p *LoginSignUpPage) FirstNameInput() playwright.Locator {
	return p.page.GetByTestId("first_name")
}

func (p *LoginSignUpPage) LastNameInput() playwright.Locator {
	return p.page.GetByTestId("last_name")
}

func (p *LoginSignUpPage) CompanyInput() playwright.Locator {
	return p.page.GetByTestId("company")
}

func (p *LoginSignUpPage) AddressInput() playwright.Locator {
	return p.page.GetByTestId("address")
}

func (p *LoginSignUpPage) Address2Input() playwright.Locator {
	return p.page.GetByTestId("address2")
}

func (p *LoginSignUpPage) StateInput() playwright.Locator {
	return p.page.GetByTestId("state")
}

func (p *LoginSignUpPage) CityInput() playwright.Locator {
	return p.page.GetByTestId("city")
}

func (p *LoginSignUpPage) ZipcodeInput() playwright.Locator {
	return p.page.GetByTestId("zipcode")
}

func (p *LoginSignUpPage) MobileNumberInput() playwright.Locator {
	return p.page.GetByTestId("mobile_number")
}

func (p *LoginSignUpPage) CreateAccountButton() playwright.Locator {
	return p.page.GetByTestId("create-account")
}

func (p *LoginSignUpPage) AccountCreatedMessage() playwright.Locator {
	return p.page.GetByTestId("account-created")
}

func (p *LoginSignUpPage) ContinueButton() playwright.Locator {
	return p.page.GetByTestId("continue-button")
}

func (p *LoginSignUpPage) DayOfBirthSelect() playwright.Locator {
	return p.page.GetByTestId("days")
}

func (p *LoginSignUpPage) MonthOfBirthSelect() playwright.Locator {
	return p.page.GetByTestId("months")
}

func (p *LoginSignUpPage) YearOfBirthSelect() playwright.Locator {
	return p.page.GetByTestId("years")
}

func (p *LoginSignUpPage) CountrySelect() playwright.Locator {
	return p.page.GetByTestId("country")
}

// GenderRadio locates the title radio labelled gender, e.g. "Mr."
func (p *LoginSignUpPage) GenderRadio(gender string) playwright.Locator {
	return p.page.GetByLabel(gender)
}

func (p *LoginSignUpPage) WaitForLoginErrorMessage() error {
	return p.WaitForVisible(p.LoginErrorMessage())
}

func (p *LoginSignUpPage) WaitForSignUpErrorMessage() error {
	return p.WaitForVisible(p.SignUpErrorMessage())
}

func (p *LoginSignUpPage) WaitForSignUpHeading() error {
	return p.WaitForVisible(p.SignUpHeading())
}

func (p *LoginSignUpPage) WaitForAccountCreatedMessage() error {
	return p.WaitForVisible(p.AccountCreatedMessage())
}

func (p *LoginSignUpPage) ClickContinueButton() error {
	return p.ContinueButton().Click()
}

func (p *LoginSignUpPage) SelectGender(gender string) error {
	return p.SelectRadio(p.GenderRadio(gender))
}

// FillDateOfBirth selects day and year by option value and month by visible label
func (p *LoginSignUpPage) FillDateOfBirth(dob dataset.DateOfBirth) error {
	return p.stepf(func() error {
		if _, err := p.DayOfBirthSelect().SelectOption(playwright.SelectOptionValues{Values: &[]string{dob.Day}}); err != nil {
			return err
		}
		if _, err := p.MonthOfBirthSelect().SelectOption(playwright.SelectOptionValues{Labels: &[]string{dob.Month}}); err != nil {
			return err
		}
		_, err := p.YearOfBirthSelect().SelectOption(playwright.SelectOptionValues{Values: &[]string{dob.Year}})
		return err
	}, "Fill date of birth with %q and %q and %q", dob.Day, dob.Month, dob.Year)
}

func (p *LoginSignUpPage) FillCountry(country string) error {
	_, err := p.CountrySelect().SelectOption(playwright.SelectOptionValues{Values: &[]string{country}})
	return err
}

// Login submits the login form
func (p *LoginSignUpPage) Login(email, password string) error {
	return p.stepf(func() error {
		if err := p.LoginEmailInput().Fill(email); err != nil {
			return err
		}
		if err := p.LoginPasswordInput().Fill(password); err != nil {
			return err
		}
		return p.LoginButton().Click()
	}, "Login with %q and %q credentials", email, password)
}

// SignUp submits the first sign-up step
func (p *LoginSignUpPage) SignUp(name, email string) error {
	return p.step("Sign up with name and email", func() error {
		return p.submitSignUp(name, email)
	})
}

// FullSignUp registers user end to end and submits the account information form
func (p *LoginSignUpPage) FullSignUp(user dataset.User) error {
	if err := ValidateFieldOrder(p.FieldOrder); err != nil {
		return err
	}

	return p.step("Complete full sign up form", func() error {
		if err := p.submitSignUp(user.Name, user.Email); err != nil {
			return err
		}
		if err := p.WaitForSignUpHeading(); err != nil {
			return err
		}
		for _, field := range p.FieldOrder {
			if err := p.fillField(field, user); err != nil {
				return fmt.Errorf("fill %s: %w", field, err)
			}
		}
		return p.CreateAccountButton().Click()
	})
}

func (p *LoginSignUpPage) submitSignUp(name, email string) error {
	if err := p.NameInput().Fill(name); err != nil {
		return err
	}
	if err := p.SignUpEmailInput().Fill(email); err != nil {
		return err
	}
	return p.SignUpButton().Click()
}

func (p *LoginSignUpPage) fillField(field SignUpField, user dataset.User) error {
	switch field {
	case FieldGender:
		return p.SelectGender(user.Gender)
	case FieldPassword:
		return p.SignUpPasswordInput().Fill(user.Password)
	case FieldDateOfBirth:
		return p.FillDateOfBirth(user.DateOfBirth)
	case FieldFirstName:
		return p.FirstNameInput().Fill(user.Name)
	case FieldLastName:
		return p.LastNameInput().Fill(user.LastName)
	case FieldCompany:
		return p.CompanyInput().Fill(user.Company)
	case FieldAddress:
		return p.AddressInput().Fill(user.Address)
	case FieldAddress2:
		return p.Address2Input().Fill(user.Address2)
	case FieldCountry:
		return p.FillCountry(user.Country)
	case FieldState:
		return p.StateInput().Fill(user.State)
	case FieldCity:
		return p.CityInput().Fill(user.City)
	case FieldZipcode:
		return p.ZipcodeInput().Fill(user.Zipcode)
	case FieldMobileNumber:
		return p.MobileNumberInput().Fill(user.MobileNumber)
	default:
		return fmt.Errorf("%w: unknown field %q", ErrInvalidFieldOrder, field)
	}
}

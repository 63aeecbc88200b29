package dataset

import (
	"net/url"
)

// DateOfBirth is entered as day and year values and a month label
type DateOfBirth struct {
	Day   string
	Month string
	Year  string
}

// User is a synthetic shopper
type User struct {
	Name         string
	LastName     string
	Email        string
	Password     string
	Company      string
	Address      string
	Address2     string
	State        string
	City         string
	Zipcode      string
	MobileNumber string
	DateOfBirth  DateOfBirth
	Country      string
	Gender       string
}

// FormValues returns the registration field set accepted by the account API
func (u User) FormValues() url.Values {
	return url.Values{
		"name":          {u.Name},
		"email":         {u.Email},
		"password":      {u.Password},
		"title":         {u.Gender},
		"birth_date":    {u.DateOfBirth.Day},
		"birth_month":   {u.DateOfBirth.Month},
		"birth_year":    {u.DateOfBirth.Year},
		"firstname":     {u.Name},
		"lastname":      {u.LastName},
		"company":       {u.Company},
		"address1":      {u.Address},
		"address2":      {u.Address2},
		"country":       {u.Country},
		"zipcode":       {u.Zipcode},
		"state":         {u.State},
		"city":          {u.City},
		"mobile_number": {u.MobileNumber},
	}
}

// Credentials returns the user's login pair
func (u User) Credentials() Credentials {
	return Credentials{Email: u.Email, Password: u.Password}
}

// PaymentCard is a sandbox card, never checked by a real processor
type PaymentCard struct {
	NameOnCard      string
	CardNumber      string
	CVC             string
	ExpirationMonth string
	ExpirationYear  string
}

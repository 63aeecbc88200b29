package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnexpectedResponseCode is returned by Expect when the body reports another outcome
var ErrUnexpectedResponseCode = errors.New("unexpected responseCode")

// Category groups a product under a user type
type Category struct {
	UserType struct {
		UserType string `json:"usertype"`
	} `json:"usertype"`
	Category string `json:"category"`
}

// Product is a catalogue entry as returned by the API
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Brand    string   `json:"brand"`
	Category Category `json:"category"`
}

// Brand is a brand entry as returned by the API
type Brand struct {
	ID    int    `json:"id"`
	Brand string `json:"brand"`
}

// UserDetail is the account record returned by the detail lookup
type UserDetail struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Title      string `json:"title"`
	BirthDay   string `json:"birth_day"`
	BirthMonth string `json:"birth_month"`
	BirthYear  string `json:"birth_year"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Zipcode    string `json:"zipcode"`
}

// Envelope is the body shape shared by every endpoint
type Envelope struct {
	ResponseCode int         `json:"responseCode"`
	Message      string      `json:"message,omitempty"`
	Products     []Product   `json:"products,omitempty"`
	Brands       []Brand     `json:"brands,omitempty"`
	User         *UserDetail `json:"user,omitempty"`

	// StatusCode is the transport status, kept next to the logical one
	StatusCode  int    `json:"-"`
	ContentType string `json:"-"`
}

// Decode reads and closes resp.Body. The site labels JSON as text/html,
// so the content type is recorded but not checked.
func Decode(resp *http.Response) (*Envelope, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}
	env.StatusCode = resp.StatusCode
	env.ContentType = resp.Header.Get("Content-Type")

	return &env, nil
}

// ResponseCodeError carries the body outcome that did not match
type ResponseCodeError struct {
	Got     int
	Want    int
	Message string
}

func (e *ResponseCodeError) Error() string {
	return fmt.Sprintf("%s: got %d want %d (%s)", ErrUnexpectedResponseCode, e.Got, e.Want, e.Message)
}

func (e *ResponseCodeError) Unwrap() error {
	return ErrUnexpectedResponseCode
}

// Expect decodes resp and checks the body reports want
func Expect(resp *http.Response, want int) (*Envelope, error) {
	env, err := Decode(resp)
	if err != nil {
		return nil, err
	}
	if env.ResponseCode != want {
		return env, &ResponseCodeError{Got: env.ResponseCode, Want: want, Message: env.Message}
	}
	return env, nil
}

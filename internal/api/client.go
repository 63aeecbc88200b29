// Package api wraps the automationexercise.com REST endpoints.
//
// Every call returns the raw *http.Response. The site answers 200 at the
// transport level and reports the real outcome in the body's responseCode,
// so callers decode the body (see Decode) and assert on that.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/exercise-e2e/internal/dataset"
	"github.com/themizzi/exercise-e2e/internal/step"
)

const formContentType = "application/x-www-form-urlencoded"

// Client talks to the site's API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for step reporting
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the site at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the site root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// VerifyLogin checks a credential pair
func (c *Client) VerifyLogin(ctx context.Context, email, password string) (*http.Response, error) {
	var resp *http.Response
	err := step.Runf(c.log, func() error {
		var err error
		resp, err = c.sendForm(ctx, http.MethodPost, dataset.EndpointVerifyLogin, url.Values{
			"email":    {email},
			"password": {password},
		})
		return err
	}, "Login via API with email: %s", email)
	return resp, err
}

// VerifyLoginForm posts an arbitrary form to the login check, for missing-field scenarios
func (c *Client) VerifyLoginForm(ctx context.Context, form url.Values) (*http.Response, error) {
	var resp *http.Response
	err := step.Run(c.log, "Login via API with custom form", func() error {
		var err error
		resp, err = c.sendForm(ctx, http.MethodPost, dataset.EndpointVerifyLogin, form)
		return err
	})
	return resp, err
}

// ListProducts fetches the full catalogue
func (c *Client) ListProducts(ctx context.Context) (*http.Response, error) {
	var resp *http.Response
	err := step.Run(c.log, "Get all products via API", func() error {
		var err error
		resp, err = c.send(ctx, http.MethodGet, dataset.EndpointProductsList, nil, "")
		return err
	})
	return resp, err
}

// PostProductsList calls the catalogue endpoint with the unsupported POST method
func (c *Client) PostProductsList(ctx context.Context) (*http.Response, error) {
	var resp *http.Response
	err := step.Run(c.log, "POST to products list via API", func() error {
		var err error
		resp, err = c.send(ctx, http.MethodPost, dataset.EndpointProductsList, nil, "")
		return err
	})
	return resp, err
}

// ListBrands fetches every brand
func (c *Client) ListBrands(ctx context.Context) (*http.Response, error) {
	var resp *http.Response
	err := step.Run(c.log, "Get all brands via API", func() error {
		var err error
		resp, err = c.send(ctx, http.MethodGet, dataset.EndpointBrandsList, nil, "")
		return err
	})
	return resp, err
}

// SearchProduct searches the catalogue for term
func (c *Client) SearchProduct(ctx context.Context, term string) (*http.Response, error) {
	var resp *http.Response
	err := step.Runf(c.log, func() error {
		var err error
		resp, err = c.sendForm(ctx, http.MethodPost, dataset.EndpointSearchProduct, url.Values{
			"search_product": {term},
		})
		return err
	}, "Search product via API: %s", term)
	return resp, err
}

// CreateAccount registers user with the full field set
func (c *Client) CreateAccount(ctx context.Context, user dataset.User) (*http.Response, error) {
	var resp *http.Response
	err := step.Runf(c.log, func() error {
		var err error
		resp, err = c.sendForm(ctx, http.MethodPost, dataset.EndpointCreateAccount, user.FormValues())
		return err
	}, "Sign up via API with email: %s", user.Email)
	return resp, err
}

// UpdateAccount overwrites the stored details of user
func (c *Client) UpdateAccount(ctx context.Context, user dataset.User) (*http.Response, error) {
	var resp *http.Response
	err := step.Runf(c.log, func() error {
		var err error
		resp, err = c.sendForm(ctx, http.MethodPut, dataset.EndpointUpdateAccount, user.FormValues())
		return err
	}, "Update account via API with email: %s", user.Email)
	return resp, err
}

// DeleteAccount removes the account matching the credential pair
func (c *Client) DeleteAccount(ctx context.Context, email, password string) (*http.Response, error) {
	var resp *http.Response
	err := step.Runf(c.log, func() error {
		var err error
		resp, err = c.sendForm(ctx, http.MethodDelete, dataset.EndpointDeleteAccount, url.Values{
			"email":    {email},
			"password": {password},
		})
		return err
	}, "Delete account via API with email: %s", email)
	return resp, err
}

// GetUserDetailByEmail looks an account up by address
func (c *Client) GetUserDetailByEmail(ctx context.Context, email string) (*http.Response, error) {
	var resp *http.Response
	err := step.Runf(c.log, func() error {
		var err error
		path := dataset.EndpointGetUserDetailByEmail + "?" + url.Values{"email": {email}}.Encode()
		resp, err = c.send(ctx, http.MethodGet, path, nil, "")
		return err
	}, "Get user detail via API with email: %s", email)
	return resp, err
}

func (c *Client) sendForm(ctx context.Context, method, path string, form url.Values) (*http.Response, error) {
	return c.send(ctx, method, path, strings.NewReader(form.Encode()), formContentType)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("api response received")

	return resp, nil
}

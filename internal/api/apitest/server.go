// Package apitest provides an in-process stand-in for the site's API so the
// client, the account lease and the CLI can be tested without the network.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/dataset"
)

// Account is a registered user held by the fake
type Account struct {
	Form url.Values
}

// Server mimics the remote API: HTTP 200 on every reply with the outcome in responseCode
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	accounts  map[string]Account
	products  []api.Product
	brands    []api.Brand
	overrides map[string]http.HandlerFunc
	calls     map[string]int
}

// NewServer starts a fake seeded with a small catalogue. Close it when done.
func NewServer() *Server {
	s := &Server{
		accounts:  make(map[string]Account),
		products:  DefaultProducts(),
		brands:    DefaultBrands(),
		overrides: make(map[string]http.HandlerFunc),
		calls:     make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(dataset.EndpointVerifyLogin, s.handleVerifyLogin)
	mux.HandleFunc(dataset.EndpointProductsList, s.handleProductsList)
	mux.HandleFunc(dataset.EndpointBrandsList, s.handleBrandsList)
	mux.HandleFunc(dataset.EndpointSearchProduct, s.handleSearchProduct)
	mux.HandleFunc(dataset.EndpointCreateAccount, s.handleCreateAccount)
	mux.HandleFunc(dataset.EndpointDeleteAccount, s.handleDeleteAccount)
	mux.HandleFunc(dataset.EndpointUpdateAccount, s.handleUpdateAccount)
	mux.HandleFunc(dataset.EndpointGetUserDetailByEmail, s.handleGetUserDetail)

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.URL.Path]++
		override := s.overrides[r.URL.Path]
		s.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	}))

	return s
}

// DefaultProducts is the catalogue the fake starts with
func DefaultProducts() []api.Product {
	products := []api.Product{
		{ID: 1, Name: "Blue Top", Price: "Rs. 500", Brand: "Polo"},
		{ID: 2, Name: "Men Tshirt", Price: "Rs. 400", Brand: "H&M"},
		{ID: 3, Name: "Sleeveless Dress", Price: "Rs. 1000", Brand: "Madame"},
		{ID: 4, Name: "Fancy Green Top", Price: "Rs. 700", Brand: "Polo"},
	}
	categories := []struct{ userType, category string }{
		{"Women", "Tops"}, {"Men", "Tshirts"}, {"Women", "Dress"}, {"Women", "Tops"},
	}
	for i := range products {
		products[i].Category.UserType.UserType = categories[i].userType
		products[i].Category.Category = categories[i].category
	}
	return products
}

// DefaultBrands is the brand list the fake starts with
func DefaultBrands() []api.Brand {
	return []api.Brand{{ID: 1, Brand: "Polo"}, {ID: 2, Brand: "H&M"}, {ID: 3, Brand: "Madame"}}
}

// AddAccount registers an account directly
func (s *Server) AddAccount(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = Account{Form: url.Values{"email": {email}, "password": {password}, "name": {"Existing"}}}
}

// HasAccount reports whether email is registered
func (s *Server) HasAccount(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.accounts[email]
	return ok
}

// AccountCount returns the number of registered accounts
func (s *Server) AccountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// Override replaces the handler for path, nil restores the default
func (s *Server) Override(path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == nil {
		delete(s.overrides, path)
		return
	}
	s.overrides[path] = h
}

// Calls returns how many requests hit path
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// Reply writes a body-level outcome the way the site does
func Reply(w http.ResponseWriter, env api.Envelope) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(env)
}

func methodNotSupported(w http.ResponseWriter) {
	Reply(w, api.Envelope{ResponseCode: http.StatusMethodNotAllowed, Message: dataset.MessageMethodUnsupported})
}

// readForm parses the body for any method; net/http skips DELETE bodies
func readForm(r *http.Request) url.Values {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return url.Values{}
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		return url.Values{}
	}
	return form
}

func (s *Server) handleVerifyLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotSupported(w)
		return
	}
	form := readForm(r)
	if !form.Has("email") || !form.Has("password") {
		Reply(w, api.Envelope{ResponseCode: http.StatusBadRequest, Message: "Bad request, email or password parameter is missing in POST request."})
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[form.Get("email")]
	s.mu.Unlock()

	if ok && acc.Form.Get("password") == form.Get("password") {
		Reply(w, api.Envelope{ResponseCode: http.StatusOK, Message: dataset.MessageUserExists})
		return
	}
	Reply(w, api.Envelope{ResponseCode: http.StatusNotFound, Message: dataset.MessageUserNotFound})
}

func (s *Server) handleProductsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotSupported(w)
		return
	}
	s.mu.Lock()
	products := append([]api.Product(nil), s.products...)
	s.mu.Unlock()
	Reply(w, api.Envelope{ResponseCode: http.StatusOK, Products: products})
}

func (s *Server) handleBrandsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotSupported(w)
		return
	}
	s.mu.Lock()
	brands := append([]api.Brand(nil), s.brands...)
	s.mu.Unlock()
	Reply(w, api.Envelope{ResponseCode: http.StatusOK, Brands: brands})
}

func (s *Server) handleSearchProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotSupported(w)
		return
	}
	form := readForm(r)
	if !form.Has("search_product") {
		Reply(w, api.Envelope{ResponseCode: http.StatusBadRequest, Message: "Bad request, search_product parameter is missing in POST request."})
		return
	}

	term := strings.ToLower(form.Get("search_product"))
	s.mu.Lock()
	var found []api.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Category.Category), term) {
			found = append(found, p)
		}
	}
	s.mu.Unlock()
	Reply(w, api.Envelope{ResponseCode: http.StatusOK, Products: found})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotSupported(w)
		return
	}
	form := readForm(r)
	email := form.Get("email")
	if email == "" || form.Get("password") == "" || form.Get("name") == "" {
		Reply(w, api.Envelope{ResponseCode: http.StatusBadRequest, Message: "Bad request, required parameter is missing in POST request."})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[email]; exists {
		Reply(w, api.Envelope{ResponseCode: http.StatusBadRequest, Message: "Email already exists!"})
		return
	}
	s.accounts[email] = Account{Form: form}
	Reply(w, api.Envelope{ResponseCode: http.StatusCreated, Message: dataset.MessageAccountCreatedAPI})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotSupported(w)
		return
	}
	form := readForm(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[form.Get("email")]
	if !ok || acc.Form.Get("password") != form.Get("password") {
		Reply(w, api.Envelope{ResponseCode: http.StatusNotFound, Message: dataset.MessageAccountNotFound})
		return
	}
	delete(s.accounts, form.Get("email"))
	Reply(w, api.Envelope{ResponseCode: http.StatusOK, Message: dataset.MessageAccountDeletedAPI})
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotSupported(w)
		return
	}
	form := readForm(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[form.Get("email")]
	if !ok || acc.Form.Get("password") != form.Get("password") {
		Reply(w, api.Envelope{ResponseCode: http.StatusNotFound, Message: dataset.MessageAccountNotFound})
		return
	}
	s.accounts[form.Get("email")] = Account{Form: form}
	Reply(w, api.Envelope{ResponseCode: http.StatusOK, Message: dataset.MessageAccountUpdatedAPI})
}

func (s *Server) handleGetUserDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotSupported(w)
		return
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		Reply(w, api.Envelope{ResponseCode: http.StatusBadRequest, Message: "Bad request, email parameter is missing in GET request."})
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		Reply(w, api.Envelope{ResponseCode: http.StatusNotFound, Message: "Account not found with this email, try another email!"})
		return
	}

	f := acc.Form
	Reply(w, api.Envelope{ResponseCode: http.StatusOK, User: &api.UserDetail{
		ID:         1,
		Name:       f.Get("name"),
		Email:      email,
		Title:      f.Get("title"),
		BirthDay:   f.Get("birth_date"),
		BirthMonth: f.Get("birth_month"),
		BirthYear:  f.Get("birth_year"),
		FirstName:  f.Get("firstname"),
		LastName:   f.Get("lastname"),
		Company:    f.Get("company"),
		Address1:   f.Get("address1"),
		Address2:   f.Get("address2"),
		Country:    f.Get("country"),
		State:      f.Get("state"),
		City:       f.Get("city"),
		Zipcode:    f.Get("zipcode"),
	}})
}

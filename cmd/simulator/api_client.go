package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// errEmailTaken is returned by Register when the account already exists
var errEmailTaken = errors.New("email already registered")

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Session is an authenticated account
type Session struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

type SeizureType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ContactType struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type SeizureLength struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type Seizure struct {
	ID          string        `json:"id,omitempty"`
	Date        time.Time     `json:"date"`
	Length      SeizureLength `json:"length"`
	SeizureType string        `json:"seizureType"`
	Trigger     string        `json:"trigger,omitempty"`
	Comment     string        `json:"comment,omitempty"`
}

type Contact struct {
	ID               string `json:"id,omitempty"`
	ContactType      string `json:"contactType"`
	Category         string `json:"category,omitempty"`
	ContactFirstName string `json:"contactFirstName"`
	ContactSurname   string `json:"contactSurname"`
	PhoneNumber      string `json:"phoneNumber"`
	Relation         string `json:"relation,omitempty"`
}

type validationErrorBody struct {
	Errors []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"errors"`
}

// Register creates a new account
func (c *APIClient) Register(email, password string) (*Session, error) {
	resp, err := c.do(http.MethodPost, "/users", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		var body validationErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			for _, e := range body.Errors {
				if e.Field == "email" && e.Rule == "unique" {
					return nil, errEmailTaken
				}
			}
		}
		return nil, fmt.Errorf("register rejected: %+v", body.Errors)
	}

	var session Session
	if err := decode(resp, http.StatusOK, &session); err != nil {
		return nil, fmt.Errorf("register failed: %w", err)
	}
	return &session, nil
}

// Login returns the account's token
func (c *APIClient) Login(email, password string) (*Session, error) {
	resp, err := c.do(http.MethodPost, "/sessions", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	var session Session
	if err := decode(resp, http.StatusOK, &session); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &session, nil
}

// RegisterOrLogin registers the account, falling back to login when the
// email is taken.
func (c *APIClient) RegisterOrLogin(email, password string) (*Session, bool, error) {
	session, err := c.Register(email, password)
	if errors.Is(err, errEmailTaken) {
		session, err = c.Login(email, password)
		return session, false, err
	}
	return session, err == nil, err
}

func (c *APIClient) SeizureTypes() ([]SeizureType, error) {
	resp, err := c.do(http.MethodGet, "/seizuretypes", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("seizure types request failed: %w", err)
	}
	defer resp.Body.Close()

	var types []SeizureType
	if err := decode(resp, http.StatusOK, &types); err != nil {
		return nil, fmt.Errorf("seizure types failed: %w", err)
	}
	return types, nil
}

func (c *APIClient) ContactTypes() ([]ContactType, error) {
	resp, err := c.do(http.MethodGet, "/contacttypes", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("contact types request failed: %w", err)
	}
	defer resp.Body.Close()

	var types []ContactType
	if err := decode(resp, http.StatusOK, &types); err != nil {
		return nil, fmt.Errorf("contact types failed: %w", err)
	}
	return types, nil
}

// CreateSeizure records a seizure for the session's account
func (c *APIClient) CreateSeizure(session *Session, seizure Seizure) (*Seizure, error) {
	resp, err := c.do(http.MethodPost, "/seizures", seizure, session)
	if err != nil {
		return nil, fmt.Errorf("create seizure request failed: %w", err)
	}
	defer resp.Body.Close()

	var created Seizure
	if err := decode(resp, http.StatusOK, &created); err != nil {
		return nil, fmt.Errorf("create seizure failed: %w", err)
	}
	return &created, nil
}

// CreateContact stores a contact for the session's account
func (c *APIClient) CreateContact(session *Session, contact Contact) (*Contact, error) {
	resp, err := c.do(http.MethodPost, "/contacts", contact, session)
	if err != nil {
		return nil, fmt.Errorf("create contact request failed: %w", err)
	}
	defer resp.Body.Close()

	var created Contact
	if err := decode(resp, http.StatusOK, &created); err != nil {
		return nil, fmt.Errorf("create contact failed: %w", err)
	}
	return &created, nil
}

// UserData returns the raw GET /userdata body
func (c *APIClient) UserData(session *Session) (json.RawMessage, error) {
	resp, err := c.do(http.MethodGet, "/userdata", nil, session)
	if err != nil {
		return nil, fmt.Errorf("user data request failed: %w", err)
	}
	defer resp.Body.Close()

	var data json.RawMessage
	if err := decode(resp, http.StatusOK, &data); err != nil {
		return nil, fmt.Errorf("user data failed: %w", err)
	}
	return data, nil
}

// HTTP helpers

func (c *APIClient) do(method, path string, body interface{}, session *Session) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	if session != nil {
		req.Header.Set("Authorization", session.AccessToken)
		req.Header.Set("X-User-ID", session.UserID)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func decode(resp *http.Response, wantStatus int, v interface{}) error {
	if resp.StatusCode != wantStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

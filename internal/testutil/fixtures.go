package testutil

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with a unique email
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build stores the user directly through repo and returns it with the raw
// password.
func (b *UserBuilder) Build(t *testing.T, repo repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		AccessToken:  hex.EncodeToString([]byte(uuid.New().String())),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

// Register creates the user via the API and returns the auth response
func (b *UserBuilder) Register(t *testing.T, ts *TestServer) AuthResponse {
	t.Helper()

	resp := DoRequest(t, http.MethodPost, ts.URL("/users"), map[string]string{
		"email":    b.email,
		"password": b.password,
	}, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return authResp
}

// SeizureBuilder creates seizure records owned by a user
type SeizureBuilder struct {
	userID      uuid.UUID
	date        time.Time
	length      domain.SeizureLength
	seizureType string
	trigger     string
}

func NewSeizureBuilder(userID uuid.UUID) *SeizureBuilder {
	return &SeizureBuilder{
		userID:      userID,
		date:        time.Now().UTC().Truncate(time.Second),
		length:      domain.SeizureLength{Minutes: 2, Seconds: 30},
		seizureType: "Absence",
	}
}

func (b *SeizureBuilder) WithDate(date time.Time) *SeizureBuilder {
	b.date = date.UTC()
	return b
}

func (b *SeizureBuilder) WithType(seizureType string) *SeizureBuilder {
	b.seizureType = seizureType
	return b
}

func (b *SeizureBuilder) WithLength(length domain.SeizureLength) *SeizureBuilder {
	b.length = length
	return b
}

func (b *SeizureBuilder) WithTrigger(trigger string) *SeizureBuilder {
	b.trigger = trigger
	return b
}

func (b *SeizureBuilder) Build(t *testing.T, repo repository.SeizureRepository) *domain.Seizure {
	t.Helper()

	seizure := &domain.Seizure{
		ID:          uuid.New(),
		UserID:      b.userID,
		Date:        b.date,
		Length:      datatypes.NewJSONType(b.length),
		SeizureType: b.seizureType,
		Trigger:     b.trigger,
	}

	if err := repo.Create(context.Background(), seizure); err != nil {
		t.Fatalf("failed to create seizure: %v", err)
	}
	return seizure
}

// ContactBuilder creates contact records owned by a user
type ContactBuilder struct {
	userID      uuid.UUID
	contactType string
	category    domain.ContactCategory
	firstName   string
	phoneNumber string
}

func NewContactBuilder(userID uuid.UUID) *ContactBuilder {
	return &ContactBuilder{
		userID:      userID,
		contactType: "Neurologist",
		category:    domain.CategoryMedical,
		firstName:   "Ada",
		phoneNumber: "+46700000000",
	}
}

func (b *ContactBuilder) WithType(contactType string, category domain.ContactCategory) *ContactBuilder {
	b.contactType = contactType
	b.category = category
	return b
}

func (b *ContactBuilder) WithFirstName(name string) *ContactBuilder {
	b.firstName = name
	return b
}

func (b *ContactBuilder) Build(t *testing.T, repo repository.ContactRepository) *domain.Contact {
	t.Helper()

	contact := &domain.Contact{
		ID:               uuid.New(),
		UserID:           b.userID,
		ContactType:      b.contactType,
		Category:         b.category,
		ContactFirstName: b.firstName,
		PhoneNumber:      b.phoneNumber,
	}

	if err := repo.Create(context.Background(), contact); err != nil {
		t.Fatalf("failed to create contact: %v", err)
	}
	return contact
}

// Headers builds the auth and ownership headers for a request. Empty values
// are left out.
func Headers(token, userID, recordID string) map[string]string {
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = token
	}
	if userID != "" {
		headers["X-User-ID"] = userID
	}
	if recordID != "" {
		headers["X-Record-ID"] = recordID
	}
	return headers
}

// DoRequest sends a JSON request and returns the response
func DoRequest(t *testing.T, method, url string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

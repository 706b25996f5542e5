package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/klypso/agency-backend/auth"
	"github.com/klypso/agency-backend/database"
	"github.com/klypso/agency-backend/models"
)

const testJWTSecret = "test-secret"

// stubNotifier records enquiry notifications on a channel so tests can wait
// for the fire-and-forget dispatch.
type stubNotifier struct {
	calls chan models.Enquiry
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{calls: make(chan models.Enquiry, 8)}
}

func (s *stubNotifier) NotifyNewEnquiry(enquiry models.Enquiry) {
	s.calls <- enquiry
}

type testAPI struct {
	handler  http.Handler
	db       database.Database
	notifier *stubNotifier
	tokens   auth.TokenIssuer
}

func setupTestAPI(t *testing.T) testAPI {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	currentDB := database.New(db)
	notifier := newStubNotifier()

	router := newRouter(currentDB, notifier, withConfig(map[string]string{
		"JWT_SECRET": testJWTSecret,
	}))

	return testAPI{
		handler:  router,
		db:       currentDB,
		notifier: notifier,
		tokens:   auth.NewTokenIssuer(testJWTSecret, time.Hour),
	}
}

// createUser inserts a user with a hashed password and returns a valid
// bearer token for it.
func (a testAPI) createUser(t *testing.T, email, password string, isAdmin bool) (models.User, string) {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      "Test User",
		Email:     email,
		Password:  hashed,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}
	if err := a.db.UserRepo().Add(&user); err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return user, token
}

func (a testAPI) adminToken(t *testing.T) string {
	t.Helper()
	_, token := a.createUser(t, "admin@klypso.agency", "password123", true)
	return token
}

// do performs a request against the router. Pass an empty token for
// anonymous calls; body may be nil.
func (a testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/auth"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

func registerDemoUser(t *testing.T, store *fakeUserStore, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user, err := store.Create(context.Background(), "Demo User 1", email, hash)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestRegister_Success(t *testing.T) {
	store := newFakeUserStore()
	engine, _ := setupRouter(store, &fakeContentService{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Demo User 1",
		"email":    "demo1@example.com",
		"password": "demo1pass",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Register() status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var info models.UserInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if info.Email != "demo1@example.com" {
		t.Errorf("Register() email = %q, want demo1@example.com", info.Email)
	}

	// The stored hash is never the raw password and never leaves the API.
	stored := store.users["demo1@example.com"]
	if stored.PasswordHash == "demo1pass" {
		t.Error("Register() stored the raw password")
	}
	if body := w.Body.String(); json.Valid([]byte(body)) {
		var raw map[string]any
		_ = json.Unmarshal([]byte(body), &raw)
		if _, leaked := raw["password_hash"]; leaked {
			t.Error("Register() leaked the password hash")
		}
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	engine, _ := setupRouter(newFakeUserStore(), &fakeContentService{})

	testCases := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "demo1@example.com", "password": "demo1pass"}},
		{"bad email", map[string]string{"name": "Demo", "email": "not-an-email", "password": "demo1pass"}},
		{"short password", map[string]string{"name": "Demo", "email": "demo1@example.com", "password": "abc"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Register() status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	registerDemoUser(t, store, "demo1@example.com", "demo1pass")
	engine, _ := setupRouter(store, &fakeContentService{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Demo User 1",
		"email":    "demo1@example.com",
		"password": "demo1pass",
	})

	if w.Code != http.StatusConflict {
		t.Errorf("Register() status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	user := registerDemoUser(t, store, "demo1@example.com", "demo1pass")
	engine, jwtMgr := setupRouter(store, &fakeContentService{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "demo1@example.com",
		"password": "demo1pass",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Login() status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Login() returned empty token")
	}
	if resp.User.ID != user.ID {
		t.Errorf("Login() user id = %s, want %s", resp.User.ID, user.ID)
	}

	// The returned token must pass the same validation the middleware runs.
	claims, err := jwtMgr.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID.String() {
		t.Errorf("token uid = %s, want %s", claims.UserID, user.ID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := newFakeUserStore()
	registerDemoUser(t, store, "demo1@example.com", "demo1pass")
	engine, _ := setupRouter(store, &fakeContentService{})

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "demo1pass"},
		{"wrong password", "demo1@example.com", "wrongpass"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", map[string]string{
				"email":    tc.email,
				"password": tc.password,
			})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Login() status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestProfile_Get(t *testing.T) {
	store := newFakeUserStore()
	user := registerDemoUser(t, store, "demo1@example.com", "demo1pass")
	engine, jwtMgr := setupRouter(store, &fakeContentService{})

	w := doJSON(t, engine, http.MethodGet, "/api/profile", bearerToken(t, jwtMgr, user), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Get() status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var info models.UserInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if info.ID != user.ID {
		t.Errorf("Get() id = %s, want %s", info.ID, user.ID)
	}
}

func TestProfile_Update(t *testing.T) {
	store := newFakeUserStore()
	user := registerDemoUser(t, store, "demo1@example.com", "demo1pass")
	engine, jwtMgr := setupRouter(store, &fakeContentService{})

	w := doJSON(t, engine, http.MethodPut, "/api/profile", bearerToken(t, jwtMgr, user), map[string]string{
		"id":    user.ID.String(),
		"name":  "Renamed",
		"email": "demo1@example.com",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Update() status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var info models.UserInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if info.Name != "Renamed" {
		t.Errorf("Update() name = %q, want Renamed", info.Name)
	}
}

func TestProfile_UpdateOtherUserForbidden(t *testing.T) {
	store := newFakeUserStore()
	user := registerDemoUser(t, store, "demo1@example.com", "demo1pass")
	engine, jwtMgr := setupRouter(store, &fakeContentService{})

	w := doJSON(t, engine, http.MethodPut, "/api/profile", bearerToken(t, jwtMgr, user), map[string]string{
		"id":    uuid.NewString(),
		"name":  "Renamed",
		"email": "demo1@example.com",
	})

	if w.Code != http.StatusForbidden {
		t.Errorf("Update() status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestProfile_RequiresToken(t *testing.T) {
	engine, _ := setupRouter(newFakeUserStore(), &fakeContentService{})

	w := doJSON(t, engine, http.MethodGet, "/api/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Get() status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/auth"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  "Demo User 1",
		Email: "demo1@example.com",
	}
}

func TestJWTManager_GenerateToken(t *testing.T) {
	t.Helper()

	mgr := auth.NewJWTManager("test-secret-key-32-chars-minimum", 24*time.Hour)

	token, err := mgr.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}
}

func TestJWTManager_ValidateToken_Success(t *testing.T) {
	t.Helper()

	mgr := auth.NewJWTManager("test-secret-key-32-chars-minimum", 24*time.Hour)
	user := testUser()

	token, err := mgr.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != user.ID.String() {
		t.Errorf("ValidateToken() uid = %s, want %s", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("ValidateToken() email = %s, want %s", claims.Email, user.Email)
	}

	callerID, err := claims.CallerID()
	if err != nil {
		t.Fatalf("CallerID() error = %v", err)
	}
	if callerID != user.ID {
		t.Errorf("CallerID() = %s, want %s", callerID, user.ID)
	}
}

func TestJWTManager_ValidateToken_WrongSecret(t *testing.T) {
	t.Helper()

	mgr := auth.NewJWTManager("test-secret-key-32-chars-minimum", 24*time.Hour)
	other := auth.NewJWTManager("a-completely-different-secret-key", 24*time.Hour)

	token, err := mgr.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() expected error for token signed with a different secret")
	}
}

func TestJWTManager_ValidateToken_Expired(t *testing.T) {
	t.Helper()

	mgr := auth.NewJWTManager("test-secret-key-32-chars-minimum", -time.Hour)

	token, err := mgr.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := mgr.ValidateToken(token); err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestJWTManager_ValidateToken_Garbage(t *testing.T) {
	t.Helper()

	mgr := auth.NewJWTManager("test-secret-key-32-chars-minimum", 24*time.Hour)

	if _, err := mgr.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() expected error for malformed token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Helper()

	hash, err := auth.HashPassword("demo1pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if err := auth.CheckPassword(hash, "demo1pass"); err != nil {
		t.Errorf("CheckPassword() error = %v, want nil for correct password", err)
	}

	if err := auth.CheckPassword(hash, "wrongpass"); err == nil {
		t.Error("CheckPassword() expected error for wrong password")
	}
}

package testutil

import (
	"context"
	"database/sql"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/metadata"

	"lostFoundManagement/internal/db"
	"lostFoundManagement/models"
	"lostFoundManagement/repository"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The name keeps databases of different tests apart; shared cache lets
// multiple connections see the same data. Closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SeedUser inserts a user with a bcrypt-hashed password and returns it.
func SeedUser(t *testing.T, d *sql.DB, name, email, password, role, contact string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := repository.NewUserRepository(d)
	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.NormalizeRole(role),
		Contact:      contact,
	}
	id, err := users.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	u.ID = id
	return u
}

// GenerateJWTHS256 returns a signed JWT string with the claims the app uses.
func GenerateJWTHS256(t *testing.T, secret, email, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// CtxWithBearer returns a context containing gRPC metadata Authorization header with the given token.
func CtxWithBearer(ctx context.Context, token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(ctx, md)
}

package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
)

const testSecret = "a-long-enough-secret-for-signing-test-tokens"
const testUserID = "user-123"
const testRole = "member"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		assert.Panics(t, auth.Init)
	})

	t.Run("ValidSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", testSecret)
		assert.NotPanics(t, auth.Init)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, testRole, claims.Role)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{UserID: testUserID})
		tokenStr, err := token.SignedString([]byte("a-different-secret"))
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("SubjectFallback", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "supabase-user",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		})
		tokenStr, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "supabase-user", claims.UserID)
	})

	t.Run("RejectsOtherAlgorithms", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{UserID: testUserID})
		tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		assert.Error(t, err)
	})
}

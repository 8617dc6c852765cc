package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID    = "user_id"
	CtxSessionID = "session_id"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenManager issues and verifies the signed token pair. One instance is
// built from config at startup and shared by the auth routes and middleware.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// GenerateAccessToken signs a short-lived token carrying the authenticated
// (userId, sessionId) pair.
func (t *TokenManager) GenerateAccessToken(userID, sessionID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID,
		"exp":        time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// GenerateRefreshToken signs a long-lived token carrying only the session id.
// A jti claim keeps rotated tokens for the same session distinct.
func (t *TokenManager) GenerateRefreshToken(sessionID uint) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"jti":        uuid.NewString(),
		"exp":        time.Now().Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// VerifyAccessToken returns the (userId, sessionId) pair from a valid token.
func (t *TokenManager) VerifyAccessToken(tokenStr string) (uint, uint, error) {
	claims, err := t.parse(tokenStr)
	if err != nil {
		return 0, 0, err
	}
	userID, ok := numericClaim(claims, "user_id")
	if !ok {
		return 0, 0, ErrInvalidToken
	}
	sessionID, ok := numericClaim(claims, "session_id")
	if !ok {
		return 0, 0, ErrInvalidToken
	}
	return userID, sessionID, nil
}

// VerifyRefreshToken returns the session id from a valid refresh token.
func (t *TokenManager) VerifyRefreshToken(tokenStr string) (uint, error) {
	claims, err := t.parse(tokenStr)
	if err != nil {
		return 0, err
	}
	sessionID, ok := numericClaim(claims, "session_id")
	if !ok {
		return 0, ErrInvalidToken
	}
	return sessionID, nil
}

func (t *TokenManager) parse(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// numericClaim reads an id claim; jwt decodes numbers as float64.
func numericClaim(claims jwt.MapClaims, key string) (uint, bool) {
	raw, ok := claims[key].(float64)
	if !ok || raw < 0 {
		return 0, false
	}
	return uint(raw), true
}

// RequireAuth ensures a valid access token is present and stores the
// resolved (userId, sessionId) pair on the request context.
func (t *TokenManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, sessionID, err := t.VerifyAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxSessionID, sessionID)
		c.Next()
	}
}

// UserID reads the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) uint {
	return c.MustGet(CtxUserID).(uint)
}

// SessionID reads the authenticated session id set by RequireAuth.
func SessionID(c *gin.Context) uint {
	return c.MustGet(CtxSessionID).(uint)
}

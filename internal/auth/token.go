package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in token claims. Admin tokens carry only a role; user tokens
// additionally carry the user id under "uid".
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// TokenService issues and verifies signed, time-limited bearer tokens.
// It is stateless: there is no revocation list, expiry is the only
// invalidation mechanism.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// AdminClaims builds the claim set for an admin session token.
func AdminClaims() jwt.MapClaims {
	return jwt.MapClaims{"role": RoleAdmin}
}

// UserClaims builds the claim set for a student session token.
func UserClaims(userID uint) jwt.MapClaims {
	return jwt.MapClaims{"uid": userID, "role": RoleStudent}
}

// Issue signs the given claims into a token valid for ttl. The expiry and
// issued-at claims are always server-assigned; callers cannot extend them.
func (s *TokenService) Issue(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	signed := jwt.MapClaims{
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	for k, v := range claims {
		if k == "exp" || k == "iat" {
			continue
		}
		signed[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, signed)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims.
// Any signature, expiry, or format problem is an error.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Validate token expiration (exp claim)
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil && exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	// Validate issued at (iat claim) - prevents using tokens issued in the future
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// parseToken validates signature and format using HMAC signing method
func (s *TokenService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// ExtractRole extracts and validates the role from token claims.
// All tokens must have an explicit role claim - no defaults are provided.
func ExtractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token missing required 'role' claim")
	}

	allowedRoles := map[string]bool{
		RoleAdmin:   true,
		RoleStudent: true,
	}
	if !allowedRoles[role] {
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: admin, student", role)
	}

	return role, nil
}

// ExtractUserID extracts and validates the user id from token claims.
// Admin tokens carry no "uid" claim and are rejected here, which is what
// keeps the my-registrations lookup user-only.
func ExtractUserID(claims jwt.MapClaims) (uint, error) {
	// JSON numbers are parsed as float64
	if uid, ok := claims["uid"].(float64); ok {
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		return uint(uid), nil
	}

	return 0, fmt.Errorf("token missing required 'uid' claim. This token is not valid for user-scoped routes")
}

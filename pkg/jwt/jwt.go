package jwt

import (
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	Groups   []string `json:"cognito:groups,omitempty"`
	Username string   `json:"cognito:username,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the value stored as an event's creator
func (c *Claims) Identity() string {
	if c.Subject != "" {
		return c.Subject
	}

	return c.Username
}

func (c *Claims) InGroup(group string) bool {
	for _, g := range c.Groups {
		if g == group {
			return true
		}
	}

	return false
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)

	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	return strings.TrimSpace(parts[1]), nil
}

// Parse reads claims without checking the signature. Only use behind a
// gateway that has already verified the token.
func Parse(token string) (*Claims, error) {
	var c Claims

	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, err
	}

	if err := c.Valid(); err != nil {
		return nil, err
	}

	return &c, nil
}

type JwtManager struct {
	secret []byte
}

func NewJwtManager(secret string) *JwtManager {
	return &JwtManager{secret: []byte(secret)}
}

func (j *JwtManager) Token(subject string, groups []string, duration time.Duration) (string, error) {
	now := time.Now()

	c := Claims{
		Groups: groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secret)
}

func (j *JwtManager) Verify(token string) (*Claims, error) {
	var c Claims

	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

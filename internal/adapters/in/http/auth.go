package http

import (
	"errors"
	"fmt"
	"strings"

	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	UserTypeUser  = "USER"
	UserTypeAdmin = "ADMIN"

	principalKey = "principal"
)

var ErrUnauthenticated = errors.New("missing or invalid bearer token")

// Claims is the token payload issued by the login service.
type Claims struct {
	UserType string `json:"userType"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller.
type Principal struct {
	ID       kernel.UUID
	UserType string
	Role     admin.Role
}

// Authenticator verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Authenticate resolves the principal from the Authorization header.
func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return ErrUnauthenticated
		}

		principal, err := a.Parse(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// Parse verifies the token and maps its claims.
func (a *Authenticator) Parse(raw string) (Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}

	principal := Principal{ID: id, UserType: claims.UserType}
	switch claims.UserType {
	case UserTypeUser:
	case UserTypeAdmin:
		if principal.Role, err = admin.ParseRole(claims.Role); err != nil {
			return Principal{}, err
		}
	default:
		return Principal{}, fmt.Errorf("unknown user type %q", claims.UserType)
	}

	return principal, nil
}

// RequireUserType rejects authenticated callers of another type with 403.
func RequireUserType(userType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := principalFrom(c)
			if err != nil {
				return err
			}
			if principal.UserType != userType {
				return errs.NewForbiddenError(fmt.Sprintf("%s access required", strings.ToLower(userType)))
			}
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (Principal, error) {
	principal, ok := c.Get(principalKey).(Principal)
	if !ok {
		return Principal{}, ErrUnauthenticated
	}
	return principal, nil
}

func actorFrom(c echo.Context) (admin.Actor, error) {
	principal, err := principalFrom(c)
	if err != nil {
		return admin.Actor{}, err
	}
	return admin.NewActor(principal.ID, principal.Role)
}

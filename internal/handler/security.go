package handler

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/auth"
)

const roleAdmin = "admin"

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// claims are the token claims the storefront reads. The admin role may sit
// at the top level or under metadata.
type claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role,omitempty"`
	Metadata struct {
		Role string `json:"role,omitempty"`
	} `json:"metadata,omitzero"`
}

// SecurityHandler implements ogen's SecurityHandler interface,
// authenticating callers with HS256 bearer tokens.
type SecurityHandler struct {
	secret []byte
	parser *jwt.Parser
}

// NewSecurityHandler creates a SecurityHandler verifying tokens with secret.
func NewSecurityHandler(secret string) *SecurityHandler {
	return &SecurityHandler{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// HandleBearerAuth resolves the caller from the token and stores the
// identity in the context. Operations requiring the admin role reject other
// callers.
func (s *SecurityHandler) HandleBearerAuth(ctx context.Context, _ oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	id, err := s.Authenticate(t.Token)
	if err != nil {
		return ctx, err
	}
	if slices.Contains(t.Roles, roleAdmin) && !id.Admin {
		return ctx, errForbidden
	}
	return auth.WithIdentity(ctx, id), nil
}

// Authenticate parses a raw bearer token.
func (s *SecurityHandler) Authenticate(raw string) (auth.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(s.secret) == 0 {
		return auth.Identity{}, errUnauthorized
	}

	var c claims
	_, err := s.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return auth.Identity{}, errors.Wrap(errUnauthorized, err.Error())
	}
	if c.Subject == "" {
		return auth.Identity{}, errors.Wrap(errUnauthorized, "token has no subject")
	}

	return auth.Identity{
		CustomerID: c.Subject,
		Admin:      c.Role == roleAdmin || c.Metadata.Role == roleAdmin,
	}, nil
}

// Admin guards a route outside the generated server. Browsers cannot set
// headers on websocket upgrades, so the token may also come from the
// access_token query parameter.
func (s *SecurityHandler) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			raw = r.URL.Query().Get("access_token")
		}
		id, err := s.Authenticate(raw)
		if err == nil && !id.Admin {
			err = errForbidden
		}
		if err != nil {
			ErrorHandler(r.Context(), w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

// Sign issues a token for the identity. It is used by tools and tests.
func (s *SecurityHandler) Sign(id auth.Identity, c jwt.RegisteredClaims) (string, error) {
	tc := claims{RegisteredClaims: c}
	tc.Subject = id.CustomerID
	if id.Admin {
		tc.Role = roleAdmin
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(s.secret)
}

func identity(ctx context.Context) auth.Identity {
	id, _ := auth.FromContext(ctx)
	return id
}

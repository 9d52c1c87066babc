package echoapi

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/profile"
)

var (
	// appJWTConfig validates the session tokens minted by the external
	// authentication service; this API never issues tokens itself.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "sessionToken",
		Claims:        new(Claims),
	}
	contextIdentityKey = "identity"
)

// Claims is the subset of the session token this service reads: the subject
// is the user ID at the authentication service.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email,omitempty"`
}

// GenerateToken signs a token the way the authentication service does.
// Test helper; production tokens come from the external service.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// getContextIdentity builds the caller's identity from the validated token.
// Admin status comes from the admins table on every request; the token is
// never trusted for it. Absent or unparsed tokens yield the anonymous
// identity.
func getContextIdentity(ctx echo.Context, svc *profile.Service) (core.Identity, error) {
	if ident, ok := ctx.Get(contextIdentityKey).(core.Identity); ok {
		return ident, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return core.Identity{}, nil // anonymous
	}

	ident := core.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}
	isAdmin, err := svc.IsAdmin(ctx.Request().Context(), ident.UserID)
	if err != nil {
		return core.Identity{}, errors.Wrap(err, "resolving admin membership")
	}
	ident.Admin = isAdmin

	ctx.Set(contextIdentityKey, ident)
	return ident, nil
}

// optionalJWT runs the JWT middleware only when a token is presented, so
// anonymous callers pass through with no identity instead of a 400.
func optionalJWT(jwtmw echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(ctx)
			}
			return jwtmw(next)(ctx)
		}
	}
}

package auth

import (
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "healthtrack/internal/errors"
)

// Rejection reasons reported to GateConfig.OnReject.
const (
	ReasonMissing   = "missing"
	ReasonMalformed = "malformed"
	ReasonInvalid   = "invalid"
)

const bearerPrefix = "Bearer "

// GateConfig configures the bearer token middleware.
type GateConfig struct {
	Tokens   *TokenService
	Logger   *logrus.Logger
	OnReject func(reason string)
}

// Gate returns middleware that admits requests carrying a valid bearer token
// and stores the caller's Identity in the context.
func Gate(cfg GateConfig) echo.MiddlewareFunc {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":" + bearerPrefix,
		ContextKey:  IdentityKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := cfg.Tokens.Verify(token)
			if err != nil {
				return nil, err
			}
			return Identity{UserID: claims.UserID, Email: claims.Email}, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			reason, httpErr := classify(c.Request().Header.Get(echo.HeaderAuthorization))
			log.WithFields(logrus.Fields{
				"reason": reason,
				"path":   c.Path(),
				"error":  err.Error(),
			}).Info("request rejected by auth gate")
			if cfg.OnReject != nil {
				cfg.OnReject(reason)
			}
			return httpErr
		},
	})
}

// classify decides which rejection applies from the raw Authorization header.
func classify(header string) (string, *echo.HTTPError) {
	if header == "" {
		return ReasonMissing, reject(apperrors.ErrTokenMissing)
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) ||
		strings.TrimSpace(header[len(bearerPrefix):]) == "" {
		return ReasonMalformed, reject(apperrors.ErrTokenMalformed)
	}
	return ReasonInvalid, reject(apperrors.ErrTokenInvalid)
}

func reject(e *apperrors.Error) *echo.HTTPError {
	return echo.NewHTTPError(e.Kind.StatusCode(), apperrors.ErrorResponse{Error: e.Message, Code: e.Code})
}

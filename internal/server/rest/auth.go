package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/common"
	"github.com/dmitrijs2005/gophsafe/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// requireBearer accepts "Authorization: Bearer <access token>" and stores
// the token's user under userIDKey.
func (s *Server) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimSpace(token), s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, common.ErrTokenExpired.Error())
			}
			return echo.NewHTTPError(http.StatusUnauthorized, common.ErrInvalidToken.Error())
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

func userID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

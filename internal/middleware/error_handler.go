package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CustomErrorHandler renders the error page for failed requests.
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		switch code {
		case http.StatusNotFound:
			errorTitle = "Not Found"
			if errorMessage == "" {
				errorMessage = "The record you're looking for doesn't exist."
			}
		case http.StatusUnauthorized:
			errorTitle = "Unauthorized"
			if errorMessage == "" {
				errorMessage = "Please log in to continue."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if errorMessage == "" {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		errorMessage = "Something went wrong. Please try again later."
	}

	c.Logger().Error(err)

	if c.Response().Committed {
		return
	}

	// Login and static assets get a plain response, everything else the error page
	path := c.Request().URL.Path
	plain := strings.HasPrefix(path, "/auth") || strings.HasPrefix(path, "/static") ||
		strings.HasPrefix(path, "/client-profiles")

	if plain {
		c.String(code, errorMessage)
		return
	}

	data := map[string]interface{}{
		"Title":        errorTitle,
		"ActiveNav":    "",
		"ErrorTitle":   errorTitle,
		"ErrorMessage": errorMessage,
	}
	c.Response().Status = code
	if renderErr := c.Render(code, "error.html", data); renderErr != nil {
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		c.String(code, errorMessage)
	}
}

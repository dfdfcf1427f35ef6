package handlers

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Breadcrumb represents a navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// pageData builds the common template payload: title, nav state, breadcrumbs
// and the signed-in user, plus any page-specific entries.
func pageData(c echo.Context, title, activeNav string, breadcrumbs []Breadcrumb, extra map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		"Title":       title,
		"ActiveNav":   activeNav,
		"Breadcrumbs": breadcrumbs,
		"UserEmail":   getStringFromContext(c, "userEmail"),
		"UserName":    getStringFromContext(c, "userName"),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}

// timeFromForm parses the YYYY-MM-DD value an HTML date input submits.
func timeFromForm(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// timePtrFromForm returns nil for an empty date field.
func timePtrFromForm(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := timeFromForm(value)
	if err != nil {
		return nil
	}
	return &t
}

package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index handles GET /.
func Index(c echo.Context) error {
	return c.HTML(http.StatusOK, "<h1>Hello World!</h1>")
}

// RequestContext handles GET /context and echoes the request path and host.
func RequestContext(c echo.Context) error {
	req := c.Request()
	return c.HTML(http.StatusOK, fmt.Sprintf("<h1>Path%s Host:%s</h1>",
		html.EscapeString(req.URL.Path), html.EscapeString(req.Host)))
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	apiPathPrefix    = "/api"
)

// CORS gates every request under /api. It attaches the cross-origin response
// headers and answers pre-flight OPTIONS probes directly, before any handler
// runs. Requests outside /api pass through untouched.
//
// allowedOrigins pins the trusted origins; the single entry "*" (or an empty
// list) echoes whatever origin the caller sends, which the hybrid
// browser/desktop deployment relies on. The gate never rejects a request —
// an untrusted origin simply gets no Allow-Origin echo, leaving enforcement
// to the browser.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	echoAny := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			echoAny = true
			continue
		}
		allowed[o] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !isAPIPath(req.URL.Path) {
				return next(c)
			}

			h := c.Response().Header()
			origin := req.Header.Get(echo.HeaderOrigin)
			switch {
			case origin == "":
				// Same-origin or non-browser caller.
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			default:
				if _, ok := allowed[origin]; ok || echoAny {
					h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				}
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			}
			h.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
			h.Set(echo.HeaderAccessControlAllowCredentials, "true")

			if req.Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}

func isAPIPath(path string) bool {
	return path == apiPathPrefix || strings.HasPrefix(path, apiPathPrefix+"/")
}

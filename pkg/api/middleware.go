package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/helmsman-ai/helmsman/pkg/idempotency"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// idempotencyKey extracts the client-supplied key. X-Correlation-ID doubles
// as an idempotency key for callers that only propagate correlation headers.
func idempotencyKey(r *http.Request) string {
	if key := r.Header.Get("Idempotency-Key"); key != "" {
		return key
	}
	return r.Header.Get("X-Correlation-ID")
}

// idempotencyMiddleware suppresses duplicate effects for requests carrying an
// idempotency key. Identity is (key, method, path). The first request claims
// the key and caches its 2xx JSON response for replay; concurrent duplicates
// get 409; later duplicates within the result TTL get the cached response
// verbatim. Failures release the claim so the client can retry.
func idempotencyMiddleware(store idempotency.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := idempotencyKey(c.Request())
			if key == "" || store == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			compositeKey := fmt.Sprintf("%s:%s:%s", key, c.Request().Method, c.Request().URL.Path)

			state, cached, err := store.Begin(ctx, compositeKey)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "idempotency store unavailable")
			}

			switch state {
			case idempotency.StateProcessing:
				return echo.NewHTTPError(http.StatusConflict,
					"a request with this idempotency key is still being processed")
			case idempotency.StateCompleted:
				return c.Blob(cached.StatusCode, cached.ContentType, cached.Body)
			}

			// StateNew: we own processing. Capture the response for replay.
			res := c.Response()
			rec := &responseRecorder{ResponseWriter: res.Writer, status: http.StatusOK}
			res.Writer = rec

			if err := next(c); err != nil {
				_ = store.Release(ctx, compositeKey)
				return err
			}

			contentType := res.Header().Get(echo.HeaderContentType)
			if rec.status >= 200 && rec.status < 300 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
				_ = store.Complete(ctx, compositeKey, idempotency.Result{
					StatusCode:  rec.status,
					ContentType: contentType,
					Body:        rec.body.Bytes(),
				})
			} else {
				_ = store.Release(ctx, compositeKey)
			}
			return nil
		}
	}
}

// responseRecorder tees the response body so a 2xx result can be cached.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

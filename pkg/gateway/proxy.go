package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
)

// hopByHopHeaders are connection-scoped and must not be forwarded.
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Router resolves request paths to backends via longest-prefix matching.
type Router struct {
	routes         []RouteConfig
	defaultService string
}

// NewRouter builds the ordered route table. Routes are sorted longest prefix
// first so matching can stop at the first hit.
func NewRouter(cfg *Config) *Router {
	routes := make([]RouteConfig, len(cfg.Routes))
	copy(routes, cfg.Routes)
	sort.SliceStable(routes, func(i, j int) bool {
		return len(routes[i].PathPrefix) > len(routes[j].PathPrefix)
	})
	return &Router{
		routes:         routes,
		defaultService: cfg.DefaultService,
	}
}

// Match resolves a request path. When no route matches, the default backend
// catches the request with no prefix stripping; without a default backend the
// second return is false.
func (r *Router) Match(path string) (RouteConfig, bool) {
	for _, route := range r.routes {
		if strings.HasPrefix(path, route.PathPrefix) {
			return route, true
		}
	}
	if r.defaultService != "" {
		return RouteConfig{PathPrefix: "/", TargetService: r.defaultService}, true
	}
	return RouteConfig{}, false
}

// rewritePath applies the route's strip_prefix to the request path.
func rewritePath(path string, route RouteConfig) string {
	if !route.StripPrefix {
		return path
	}
	stripped := strings.TrimPrefix(path, strings.TrimSuffix(route.PathPrefix, "/"))
	if stripped == "" || !strings.HasPrefix(stripped, "/") {
		stripped = "/" + stripped
	}
	return stripped
}

// Proxy forwards requests to registry backends with bounded retries.
type Proxy struct {
	registry *Registry

	// clients are per-service so each backend gets its configured timeout.
	clients map[string]*http.Client
}

// NewProxy builds the proxy over the registry's backends.
func NewProxy(cfg *Config, registry *Registry) *Proxy {
	clients := make(map[string]*http.Client, len(cfg.Services))
	for _, svc := range cfg.Services {
		clients[svc.Name] = &http.Client{
			Timeout: svc.Timeout,
			// Redirects come back to the client untouched.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return &Proxy{registry: registry, clients: clients}
}

// Forward proxies one request to the routed backend, retrying transient
// failures up to the service's retry_count. The request body is buffered so
// every attempt sends the same bytes.
func (p *Proxy) Forward(w http.ResponseWriter, r *http.Request, route RouteConfig) {
	svc, ok := p.registry.Service(route.TargetService)
	if !ok {
		http.Error(w, "unknown backend service", http.StatusBadGateway)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	targetURL := strings.TrimSuffix(svc.BaseURL, "/") + rewritePath(r.URL.Path, route)
	if r.URL.RawQuery != "" {
		targetURL += "?" + r.URL.RawQuery
	}

	var lastErr error
	for attempt := 0; attempt <= svc.RetryCount; attempt++ {
		resp, err := p.attempt(r.Context(), r, svc, targetURL, body)
		if err != nil {
			lastErr = err
			if r.Context().Err() != nil {
				return // client gone, nothing to answer
			}
			continue
		}

		copyResponse(w, resp)
		return
	}

	slog.Warn("Backend exhausted retries",
		"service", svc.Name,
		"url", targetURL,
		"attempts", svc.RetryCount+1,
		"error", lastErr)
	http.Error(w, fmt.Sprintf("upstream %s unavailable: %v", svc.Name, lastErr), http.StatusBadGateway)
}

func (p *Proxy) attempt(ctx context.Context, original *http.Request, svc ServiceConfig, targetURL string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, original.Method, targetURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header = original.Header.Clone()
	for _, h := range hopByHopHeaders {
		req.Header.Del(h)
	}
	if original.RemoteAddr != "" {
		host := original.RemoteAddr
		if i := strings.LastIndex(host, ":"); i > 0 {
			host = host[:i]
		}
		req.Header.Set("X-Forwarded-For", host)
	}

	client := p.clients[svc.Name]
	return client.Do(req)
}

func copyResponse(w http.ResponseWriter, resp *http.Response) {
	defer resp.Body.Close()

	header := w.Header()
	for k, vals := range resp.Header {
		if isHopByHop(k) {
			continue
		}
		for _, v := range vals {
			header.Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

func isHopByHop(header string) bool {
	for _, h := range hopByHopHeaders {
		if strings.EqualFold(h, header) {
			return true
		}
	}
	return false
}

package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouterConfig() *Config {
	return &Config{
		DefaultService: "dashboard",
		Services: []ServiceConfig{
			{Name: "control-plane", BaseURL: "http://cp:8081"},
			{Name: "dashboard", BaseURL: "http://dash:3000"},
		},
		Routes: []RouteConfig{
			{PathPrefix: "/api", TargetService: "control-plane", StripPrefix: true},
			{PathPrefix: "/api/admin", TargetService: "control-plane"},
			{PathPrefix: "/missions", TargetService: "control-plane"},
		},
	}
}

func TestRouterLongestPrefixWins(t *testing.T) {
	router := NewRouter(testRouterConfig())

	route, ok := router.Match("/api/admin/users")
	require.True(t, ok)
	assert.Equal(t, "/api/admin", route.PathPrefix)

	route, ok = router.Match("/api/chat/ws")
	require.True(t, ok)
	assert.Equal(t, "/api", route.PathPrefix)

	route, ok = router.Match("/missions/m-1/events")
	require.True(t, ok)
	assert.Equal(t, "/missions", route.PathPrefix)
}

func TestRouterDefaultCatchAll(t *testing.T) {
	router := NewRouter(testRouterConfig())

	route, ok := router.Match("/assets/logo.svg")
	require.True(t, ok)
	assert.Equal(t, "dashboard", route.TargetService)
	assert.False(t, route.StripPrefix)
}

func TestRouterNoDefault(t *testing.T) {
	cfg := testRouterConfig()
	cfg.DefaultService = ""
	router := NewRouter(cfg)

	_, ok := router.Match("/nowhere")
	assert.False(t, ok)
}

func TestRewritePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		route RouteConfig
		want  string
	}{
		{
			name:  "no strip keeps the path",
			path:  "/missions/m-1",
			route: RouteConfig{PathPrefix: "/missions"},
			want:  "/missions/m-1",
		},
		{
			name:  "strip removes the prefix",
			path:  "/api/chat/ws",
			route: RouteConfig{PathPrefix: "/api", StripPrefix: true},
			want:  "/chat/ws",
		},
		{
			name:  "strip of the whole path leaves root",
			path:  "/api",
			route: RouteConfig{PathPrefix: "/api", StripPrefix: true},
			want:  "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewritePath(tt.path, tt.route))
		})
	}
}

func TestIsHopByHop(t *testing.T) {
	assert.True(t, isHopByHop("Connection"))
	assert.True(t, isHopByHop("transfer-encoding"))
	assert.False(t, isHopByHop("Content-Type"))
	assert.False(t, isHopByHop("Authorization"))
}

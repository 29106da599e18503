package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pobuilder/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func serveSwagger(cfg SwaggerConfig, remoteAddr string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "swagger"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/swagger/index.html", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	t.Run("disabled answers 404", func(t *testing.T) {
		w := serveSwagger(SwaggerConfig{Enabled: false}, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeNotFound)
	})

	t.Run("enabled without restrictions", func(t *testing.T) {
		w := serveSwagger(SwaggerConfig{Enabled: true}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("whitelisted ip", func(t *testing.T) {
		w := serveSwagger(SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}}, "127.0.0.1:12345")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ip outside whitelist", func(t *testing.T) {
		w := serveSwagger(SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}}, "192.168.1.100:12345")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeForbidden)
	})

	t.Run("cidr whitelist", func(t *testing.T) {
		cfg := SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8", "not-an-ip"}}

		assert.Equal(t, http.StatusOK, serveSwagger(cfg, "10.1.2.3:4000").Code)
		assert.Equal(t, http.StatusForbidden, serveSwagger(cfg, "11.0.0.1:4000").Code)
	})
}

func TestIsIPAllowed(t *testing.T) {
	allowedIPs, allowedNets := parseAllowList([]string{"192.168.1.1", " 10.0.0.0/8 ", "2001:db8::/32", "bogus/99"})

	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"exact match", "192.168.1.1", true},
		{"in cidr", "10.20.30.40", true},
		{"ipv6 in cidr", "2001:db8::1", true},
		{"not listed", "192.168.1.2", false},
		{"ipv6 outside", "2001:db9::1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isIPAllowed(net.ParseIP(tt.ip), allowedIPs, allowedNets))
		})
	}

	t.Run("nil ip", func(t *testing.T) {
		assert.False(t, isIPAllowed(nil, allowedIPs, allowedNets))
	})

	assert.Len(t, allowedIPs, 1)
	assert.Len(t, allowedNets, 2)
}

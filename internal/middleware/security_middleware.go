package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Kit pages embed creator videos, so frames from the video hosts are allowed.
var videoFrameSources = []string{
	"https://www.youtube.com",
	"https://www.youtube-nocookie.com",
	"https://www.tiktok.com",
	"https://player.vimeo.com",
	"https://www.instagram.com",
}

func SecurityHeadersMiddleware() gin.HandlerFunc {
	policy := buildContentSecurityPolicy(videoFrameSources)

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("X-DNS-Prefetch-Control", "off")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")
		c.Header("Cross-Origin-Opener-Policy", "same-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Header("Content-Security-Policy", policy)
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}

func buildContentSecurityPolicy(frameSources []string) string {
	frames := append([]string{"'self'"}, frameSources...)

	directives := []string{
		"default-src 'self'",
		"object-src 'none'",
		"base-uri 'self'",
		"frame-ancestors 'self'",
		// Templates set theme colours through inline style attributes.
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
		"font-src 'self' data: https://fonts.gstatic.com",
		"img-src 'self' data: blob: https:",
		"media-src 'self' data: blob: https:",
		"frame-src " + strings.Join(frames, " "),
	}
	return strings.Join(directives, "; ")
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/metrics"
)

const (
	CSRFCookie = "csrf_token"
	CSRFHeader = "X-CSRF-Token"
)

// CSRFMiddleware enforces the double-submit check on unsafe methods: the
// csrf_token cookie must match the token sent in the form field or header.
func CSRFMiddleware(fieldName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		cookie, err := c.Cookie(CSRFCookie)
		submitted := c.GetHeader(CSRFHeader)
		if submitted == "" {
			submitted = c.PostForm(fieldName)
		}
		if err != nil || cookie == "" || submitted == "" ||
			subtle.ConstantTimeCompare([]byte(cookie), []byte(submitted)) != 1 {
			metrics.RejectedRequests.WithLabelValues("csrf").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token missing or incorrect"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// DeviceIDHeader carries the anonymous device identity. It is the only
	// credential the API knows.
	DeviceIDHeader = "X-Device-Id"

	// DeviceIDKey is where the validated device id lands in the gin
	// context.
	DeviceIDKey = "device_id"
)

// DeviceAuth rejects requests without a device id header and stashes the
// trimmed value for handlers.
func DeviceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if deviceID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"code":    "DEVICE_ID_REQUIRED",
				"message": "X-Device-Id header is required",
			})
			c.Abort()
			return
		}

		c.Set(DeviceIDKey, deviceID)
		c.Next()
	}
}

// DeviceID reads the device id set by DeviceAuth.
func DeviceID(c *gin.Context) string {
	if v, ok := c.Get(DeviceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

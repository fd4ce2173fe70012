package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceIDHeader identifies the customer's browser so carts survive page
// reloads without requiring an account.
const DeviceIDHeader = "X-Device-ID"

const deviceIDKey = "device_id"

// DeviceID reads the device identifier from the request, minting one for
// first-time visitors. The identifier is echoed back on the response so the
// client can store it.
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader(DeviceIDHeader)
		if deviceID == "" {
			deviceID = uuid.New().String()
		}

		c.Set(deviceIDKey, deviceID)
		c.Header(DeviceIDHeader, deviceID)

		c.Next()
	}
}

// GetDeviceID extracts the device identifier from context
func GetDeviceID(c *gin.Context) string {
	return c.GetString(deviceIDKey)
}

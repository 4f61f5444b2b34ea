package coordinator

import (
	"github.com/viant/resilient/deeplink"
	"github.com/viant/resilient/logger"
)

// DefaultDeviceType is reported to the SDK when none is configured
const DefaultDeviceType = "ios"

// Option represents coordinator option
type Option func(c *Coordinator)

// WithLogger sets logger
func WithLogger(log logger.Logger) Option {
	return func(c *Coordinator) {
		c.logger = log
	}
}

// WithParser replaces deep link parser
func WithParser(parser func(raw string) deeplink.Link) Option {
	return func(c *Coordinator) {
		c.parse = parser
	}
}

// WithDeviceType sets device type reported on SDK init
func WithDeviceType(deviceType string) Option {
	return func(c *Coordinator) {
		c.deviceType = deviceType
	}
}

package uos

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Environment variables read by this package.
const (
	EnvAppID         = "UOS_APP_ID"
	EnvServiceSecret = "UOS_APP_SERVICE_SECRET"
	EnvDebug         = "UOS_DEBUG"
)

// IsDebugEnv reports whether UOS_DEBUG is set to true, yes or 1.
func IsDebugEnv() bool {
	switch strings.TrimSpace(os.Getenv(EnvDebug)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// NewLogger returns a named logger at debug level when IsDebugEnv, info otherwise.
func NewLogger(name string) hclog.Logger {
	level := hclog.Info
	if IsDebugEnv() {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: level,
	})
}

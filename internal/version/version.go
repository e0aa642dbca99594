// Package version holds the uos CLI version, set at build time with
// -ldflags "-X github.com/hashicorp-forge/uos/internal/version.Version=...".
package version

var Version = "0.1.0-dev"

// Package version carries the build version, overridden at link time via
// -ldflags "-X ...version.Version=v1.2.3".
package version

var Version = "dev"

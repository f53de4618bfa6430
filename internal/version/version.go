// Package version provides the build version of the tool
package version

// Build is set by the linker
var Build = "0.1.0"

// Current returns the current build version
func Current() string {
	return Build
}

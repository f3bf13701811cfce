package version

// version is set at build time with:
// -ldflags "-X github.com/cbodonnell/spinwheel/pkg/version.version=..."
var version = "dev"

// Get returns the version of the build.
func Get() string {
	return version
}

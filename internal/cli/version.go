package cli

import (
	"fmt"
	"io"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "go-subdemux, %s\n", FormatVersion(appVersion))
}

// FormatVersion renders a raw version string ("1.2.3" or "dev") the way the
// CLI prints it everywhere: a leading "v" for real releases, unchanged for
// "dev" builds.
func FormatVersion(version string) string {
	if version == "" || version == "dev" {
		return "dev"
	}
	if version[0] == 'v' {
		return version
	}
	return "v" + version
}

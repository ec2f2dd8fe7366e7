package version

import (
	"fmt"
	"strings"
	"sync"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/brickchain/brickd/version.appBuild=foo"' if needed.
// It MUST only contain characters from validCharacters.
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the application version as a properly formed string, in
// the form major.minor.patch[-build].
func Version() string {
	versionOnce.Do(func() {
		version = formatVersion(appMajor, appMinor, appPatch, appBuild)
	})
	return version
}

func formatVersion(major, minor, patch uint, build string) string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	// Append build metadata if there is any. The build metadata string is
	// not appended if it contains invalid characters.
	if build = checkAppBuild(build); build != "" {
		v = fmt.Sprintf("%s-%s", v, build)
	}
	return v
}

// UserAgent returns the name and version brickd identifies itself with, in
// the form /brickd:major.minor.patch/.
func UserAgent() string {
	return fmt.Sprintf("/brickd:%s/", Version())
}

// checkAppBuild returns the passed string unless it contains any characters not in validCharacters
// If any invalid characters are encountered - an empty string is returned
func checkAppBuild(str string) string {
	for _, r := range str {
		if !strings.ContainsRune(validCharacters, r) {
			return ""
		}
	}
	return str
}

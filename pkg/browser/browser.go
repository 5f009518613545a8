// Package browser provides cross-platform browser opening functionality.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// startCommand launches the platform opener; tests replace it to capture
// the argv instead of spawning a real browser.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens the given URL in the default browser. It validates the URL
// and restricts the scheme to http/https before anything is executed.
func Open(urlString string) error {
	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q (only http and https allowed)", parsedURL.Scheme)
	}

	name, args := openerFor(runtime.GOOS, urlString)
	if name == "" {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return startCommand(name, args...)
}

func openerFor(goos, urlString string) (string, []string) {
	switch goos {
	case "linux":
		return "xdg-open", []string{urlString}
	case "darwin":
		return "open", []string{urlString}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", urlString}
	default:
		return "", nil
	}
}

package utils

import (
	"fmt"
	"net/url"
)

// OpenBrowser opens an http(s) URL in the default browser. Anything else is
// rejected without running a command.
func OpenBrowser(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("not a web address: %q", rawURL)
	}
	return openCommand(u.String()).Run()
}

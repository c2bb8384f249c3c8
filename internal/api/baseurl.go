package api

import (
	"fmt"
	"strings"
)

// devAPIPort is the backend port used when deriving the base URL from a
// development-host hint.
const devAPIPort = 4000

// localFallback serves simulators and local runs with no other hint.
const localFallback = "http://localhost:4000/api"

// ResolveBaseURL picks the API base URL. Precedence:
//
//  1. explicit configuration value, used verbatim;
//  2. a development-host hint ("host" or "host:port"), unless it points at
//     loopback, rewritten to the fixed API port with the /api suffix;
//  3. the fixed local fallback.
func ResolveBaseURL(explicit, devHost string) string {
	if explicit != "" {
		return explicit
	}

	host := devHost
	if i := strings.IndexByte(devHost, ':'); i >= 0 {
		host = devHost[:i]
	}
	if host != "" && host != "localhost" && host != "127.0.0.1" {
		return fmt.Sprintf("http://%s:%d/api", host, devAPIPort)
	}

	return localFallback
}

package fetch

import (
	"fmt"
	"strings"
)

// ParseURL validates a user-supplied event URL and returns the canonical
// event history URL together with the event name. Accepted shapes:
//
//	https://www.parkrun.org.uk/bushy/
//	https://www.parkrun.org.uk/bushy/results/eventhistory/
//
// with protocol, www. and trailing slashes all optional.
func ParseURL(raw string) (url, name string, err error) {
	u := strings.ToLower(strings.TrimSpace(raw))
	for _, proto := range []string{"http://", "https://"} {
		if strings.HasPrefix(u, proto) {
			u = strings.TrimPrefix(u, proto)
			break
		}
	}
	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimRight(u, "/")

	parts := strings.Split(u, "/")
	if len(parts) != 2 && len(parts) != 4 {
		return "", "", fmt.Errorf("invalid event URL %q", raw)
	}

	domain := parts[0]
	if !strings.HasPrefix(domain, "parkrun") ||
		strings.Contains(domain, "..") ||
		strings.HasSuffix(domain, ".") ||
		!strings.Contains(domain, ".") ||
		!isAlpha(strings.ReplaceAll(domain, ".", "")) {
		return "", "", fmt.Errorf("invalid domain %q", domain)
	}

	name = parts[1]
	if !isAlpha(name) {
		return "", "", fmt.Errorf("invalid event name %q", name)
	}

	if len(parts) == 4 && (parts[2] != "results" || parts[3] != "eventhistory") {
		return "", "", fmt.Errorf("invalid event URL %q", raw)
	}

	return fmt.Sprintf("https://www.%s/%s/results/eventhistory/", domain, name), name, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

package contract

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// BuildURL substitutes :name placeholders in path with url-escaped params.
// It fails when a placeholder has no value.
func BuildURL(path string, params map[string]string) (string, error) {
	segments := strings.Split(path, "/")
	var missing []string
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		v, ok := params[name]
		if !ok || v == "" {
			missing = append(missing, name)
			continue
		}
		segments[i] = url.PathEscape(v)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("missing path params for %s: %s", path, strings.Join(missing, ", "))
	}
	return strings.Join(segments, "/"), nil
}

// ID formats an integer id param map.
func ID(id int) map[string]string {
	return map[string]string{"id": fmt.Sprint(id)}
}

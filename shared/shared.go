package shared

import "strings"

const cacheKeySeparator = ":"

// BuildCacheKey joins a namespace and its parts, e.g. "session:<id>".
func BuildCacheKey(namespace string, parts ...string) string {
	return strings.Join(append([]string{namespace}, parts...), cacheKeySeparator)
}

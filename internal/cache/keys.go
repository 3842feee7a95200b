package cache

import "strings"

const (
	GlobalKeyPrefix = "examgen"
)

// GenerateCacheKey generates a cache key for a given service, object type,
// and identifier. Export artifacts are staged under
// examgen:export:{exam|answers}:<export id>.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited applies to health checks.
var unlimited = Rule{Method: http.MethodGet, Path: "/health"}

// Match returns the first rule for method and path. ok is false when no
// rule applies and the default limit should be used.
func Match(method, path string, rules []Rule) (Rule, bool) {
	if method == http.MethodGet && path == unlimited.Path {
		return unlimited, true
	}
	for _, rule := range rules {
		if rule.Method == method && pathMatches(rule.Path, path) {
			return rule, true
		}
	}
	return Rule{}, false
}

func pathMatches(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i, segment := range want {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if segment != got[i] {
			return false
		}
	}
	return true
}

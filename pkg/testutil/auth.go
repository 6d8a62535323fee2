package testutil

import (
	"os"
	"regexp"
	"testing"
)

func maskSecret(s string) string {
	re := regexp.MustCompile(`\b(\w{4})\w+\b`)
	s = re.ReplaceAllString(s, "$1******")
	return s
}

// IntegrationTestConfigured reports whether <prefix>_API_KEY is set and TEST_<prefix>=1.
// DataMaxi+ authenticates with the api key only.
func IntegrationTestConfigured(t *testing.T, prefix string) (key string, ok bool) {
	var hasKey bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	ok = hasKey && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s", maskSecret(key))
	}

	return key, ok
}

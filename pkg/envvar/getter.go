package envvar

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func String(n string, args ...string) (string, bool) {
	defaultValue := ""
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	return str, true
}

func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	defaultValue := time.Duration(0)
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	du, err := time.ParseDuration(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as time.Duration, incorrect format", str)
		return defaultValue, false
	}

	return du, true
}

func Int(n string, args ...int) (int, bool) {
	defaultValue := 0
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.Atoi(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as int, incorrect format", str)
		return defaultValue, false
	}

	return num, true
}

func Bool(n string, args ...bool) (bool, bool) {
	defaultValue := false
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	b, err := strconv.ParseBool(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as bool, incorrect format", str)
		return defaultValue, false
	}

	return b, true
}

// StringMap parses "key=value,key2=value2" pairs, e.g. "https=http://proxy:3128".
// Malformed pairs are logged and skipped.
func StringMap(n string) (map[string]string, bool) {
	str, ok := os.LookupEnv(n)
	if !ok || len(strings.TrimSpace(str)) == 0 {
		return nil, false
	}

	m := map[string]string{}
	for _, pair := range strings.Split(str, ",") {
		pair = strings.TrimSpace(pair)
		if len(pair) == 0 {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		if !found || len(key) == 0 {
			logrus.Errorf("can not parse %q in env var %s, expecting key=value", pair, n)
			continue
		}

		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return m, len(m) > 0
}

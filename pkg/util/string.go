package util

import "strings"

// MaskKey keeps the first 5 characters of the key, short keys are masked entirely.
func MaskKey(key string) string {
	if len(key) <= 5 {
		return strings.Repeat("*", len(key))
	}

	return key[0:5] + strings.Repeat("*", len(key)-5)
}

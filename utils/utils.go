package utils

import (
	"fmt"
	"strconv"
)

// GenerateRateLimitKey creates a unique key for rate limiting
func GenerateRateLimitKey(userID uint, path string) string {
	return fmt.Sprintf("rl:%d:%s", userID, path)
}

// Pointer returns a pointer to the given value
func Pointer[T any](v T) *T {
	return &v
}

// ParseUint safely parses a string to uint
func ParseUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 32)
	return uint(i)
}

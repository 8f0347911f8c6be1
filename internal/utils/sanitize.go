package utils

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

// Sanitize strips all markup from free text shown on shop and order screens.
func Sanitize(input string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

func SanitizePtr(input *string) *string {
	if input == nil {
		return nil
	}

	clean := Sanitize(*input)
	return &clean
}

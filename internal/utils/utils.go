package utils

import (
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an OpenAI call failed for a transient reason.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500 || reqErr.HTTPStatusCode == 429
	}
	errMsg := strings.ToLower(err.Error())
	for _, transient := range []string{
		"rate limit",
		"500 internal server error",
		"502 bad gateway",
		"503 service unavailable",
		"504 gateway timeout",
		"timeout",
		"connection reset by peer",
	} {
		if strings.Contains(errMsg, transient) {
			return true
		}
	}
	return false
}

// TruncateText shortens s to its first n characters and last four,
// joined by an ellipsis. Strings that already fit are returned as is.
func TruncateText(s string, n int) string {
	const tail = 4
	r := []rune(s)
	if n <= 0 || len(r) <= n+tail+3 {
		return s
	}
	return string(r[:n]) + "..." + string(r[len(r)-tail:])
}

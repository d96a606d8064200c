package assistant

import "strings"

// extractJSONObject returns the substring between the first '{' and the
// last '}' in response, or "" when no such span exists. Greedy on purpose:
// a completion wrapping one object in prose still yields the object.
func extractJSONObject(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}

// extractJSONArray is the list-shaped counterpart, spanning the first '['
// to the last ']'.
func extractJSONArray(response string) string {
	startIdx := strings.Index(response, "[")
	endIdx := strings.LastIndex(response, "]")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}

// ABOUTME: Shared CLI output and lookup helpers.
package main

import (
	"strings"

	"github.com/harperreed/swim/internal/models"
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// resolveID expands an ID prefix to a full entity ID. Exact matches win;
// otherwise the first prefix match in collection order is taken. Unmatched
// input passes through so the caller's lookup reports not-found.
func resolveID[T models.Entity](records []T, idOrPrefix string) string {
	for _, rec := range records {
		if rec.EntityID() == idOrPrefix {
			return idOrPrefix
		}
	}
	for _, rec := range records {
		if strings.HasPrefix(rec.EntityID(), idOrPrefix) {
			return rec.EntityID()
		}
	}
	return idOrPrefix
}

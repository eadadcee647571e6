package models

import "strings"

func normalize(s string) string {
	return strings.TrimSpace(s)
}

package textutil

import "strings"

const sep = ", "

func Join(parts []string) string {
	return strings.Join(parts, sep)
}

func Upper(s string) string {
	return strings.ToUpper(s)
}

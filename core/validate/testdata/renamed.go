package textutil

import "strings"

const sep = ", "

func JoinAll(parts []string) string {
	return strings.Join(parts, sep)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

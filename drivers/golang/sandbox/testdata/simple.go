package simple

import "strings"

func shout(s string) string {
	return strings.ToUpper(s)
}

func Pair() (int, int) {
	return 1, 2
}

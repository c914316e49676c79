package mathlib

import "time"

func add(a, b int) int {
	return a + b
}

func Concat(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}

func Fixed() int {
	time.Sleep(10 * time.Second)
	return 41
}

package mathlib

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
	return 41
}

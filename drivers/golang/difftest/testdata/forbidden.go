package mathlib

import "net/http"

var client = http.DefaultClient

func add(a, b int) int {
	return a + b
}

package aliased

import (
	"fmt"
	rnd "math/rand"
)

type ID = string

var Seed = rnd.Int63()

func Describe(id ID) string {
	return fmt.Sprintf("id=%s", id)
}

func Pick(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	return values[rnd.Intn(len(values))]
}

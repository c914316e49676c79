package difftest

import (
	"reflect"
	"strings"
)

// Equal reports structural equality of two call results. Direct equality
// short-circuits true; a type mismatch short-circuits false; sequences
// compare element-wise, maps by key set then per-key values, strings
// with surrounding whitespace stripped. Anything else is equal only
// directly. A panic during comparison means the values are not
// meaningfully comparable and counts as inequality, never an error.
func Equal(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	if a.Type().Comparable() && a.Interface() == b.Interface() {
		return true
	}

	switch a.Kind() {
	case reflect.String:
		return strings.TrimSpace(a.String()) == strings.TrimSpace(b.String())

	case reflect.Slice, reflect.Array:
		// A nil slice and an empty slice compare equal: length decides.
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		for _, key := range a.MapKeys() {
			bv := b.MapIndex(key)
			if !bv.IsValid() {
				return false
			}
			if !equalValue(a.MapIndex(key), bv) {
				return false
			}
		}
		return true

	case reflect.Interface:
		return equalValue(a.Elem(), b.Elem())

	default:
		return false
	}
}

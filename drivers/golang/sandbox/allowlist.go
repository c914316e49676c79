package sandbox

import (
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// allowedPackages is the capability table: the only standard library
// packages a sandboxed module may import. Everything else fails the load.
var allowedPackages = map[string]bool{
	"bufio":         true,
	"bytes":         true,
	"container/list": true,
	"encoding/json": true,
	"errors":        true,
	"fmt":           true,
	"io":            true,
	"math":          true,
	"math/rand":     true,
	"os":            true,
	"path/filepath": true,
	"regexp":        true,
	"runtime":       true,
	"sort":          true,
	"strconv":       true,
	"strings":       true,
	"sync":          true,
	"time":          true,
	"unicode":       true,
}

// restrictedSymbols filters the interpreter's standard library exports
// down to the allow-list. Symbol keys have the form "<importPath>/<pkg>".
func restrictedSymbols() interp.Exports {
	out := make(interp.Exports, len(allowedPackages))
	for key, symbols := range stdlib.Symbols {
		idx := strings.LastIndex(key, "/")
		if idx < 0 {
			continue
		}
		if allowedPackages[key[:idx]] {
			out[key] = symbols
		}
	}
	return out
}

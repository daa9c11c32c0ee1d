package shell

import (
	"fmt"
	"strings"
)

type fishShell struct{}

// Fish is the Shell implementation for fish.
var Fish Shell = &fishShell{}

func (f *fishShell) Name() string {
	return "fish"
}

func (f *fishShell) Export(e Exports) string {
	var sb strings.Builder
	for _, key := range e.Keys() {
		if !ValidName(key) {
			fmt.Fprintf(&sb, "# skipped %q: not a valid shell name\n", key)
			continue
		}
		value := e[key]
		if value == nil {
			fmt.Fprintf(&sb, "set -e %s;\n", key)
		} else {
			fmt.Fprintf(&sb, "set -gx %s '%s';\n", key, FishEscape(*value))
		}
	}
	return sb.String()
}

func (f *fishShell) Dump(env map[string]string) string {
	return f.Export(dumpExports(env))
}

package env

import (
	"os"

	"github.com/unrss/shenv/internal/value"
)

// DefaultName is the variable LookupOne reads when given an empty name.
const DefaultName = "USER"

// LookupOne reads and classifies a single variable of the process
// environment without building a snapshot. An unset or empty variable
// yields an Absent value. An empty name reads DefaultName.
func LookupOne(name string) value.Value {
	if name == "" {
		name = DefaultName
	}
	return value.ClassifyForKey(name, os.Getenv(name))
}

// LookupOneIn is LookupOne over an explicit environment.
func LookupOneIn(e Env, name string) value.Value {
	if name == "" {
		name = DefaultName
	}
	return value.ClassifyForKey(name, e[name])
}

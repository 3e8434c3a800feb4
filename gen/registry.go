package gen

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

var registeredTargets = sync.Map{}

// RegisterTarget makes a target constructor available under its name.
// Target packages call this from init; registering the same name twice
// panics.
func RegisterTarget(name string, cb func() Target) {
	_, loaded := registeredTargets.LoadOrStore(name, cb)
	if loaded {
		panic("target " + name + " already registered")
	}
}

// LookupTarget returns a fresh target instance by name.
func LookupTarget(name string) (Target, error) {
	cb, ok := registeredTargets.Load(name)
	if !ok {
		return nil, errors.Newf("unknown target %q (known: %v)", name, TargetNames())
	}
	return cb.(func() Target)(), nil
}

// TargetNames lists the registered target names, sorted.
func TargetNames() []string {
	var names []string
	registeredTargets.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	sort.Strings(names)
	return names
}

package domain

import (
	"iter"
	"strings"
)

// Target is a named unit of work declared inside a buildfile.
type Target struct {
	// DisplayName is what the host shows. It carries DefaultTargetSuffix for the default target.
	DisplayName string `json:"displayName"`
	// InvocationName is the bare name passed to the build tool.
	InvocationName string `json:"invocationName"`
}

// Targets is an insertion-ordered mapping from display name to invocation name.
// Setting an existing display name replaces its invocation name in place.
type Targets struct {
	entries []Target
	index   map[string]int
}

// NewTargets creates an empty mapping.
func NewTargets() *Targets {
	return &Targets{index: make(map[string]int)}
}

// Set records a target. The last write for a display name wins but keeps the first position.
func (t *Targets) Set(displayName, invocationName string) {
	if i, ok := t.index[displayName]; ok {
		t.entries[i].InvocationName = invocationName
		return
	}
	t.index[displayName] = len(t.entries)
	t.entries = append(t.entries, Target{DisplayName: displayName, InvocationName: invocationName})
}

// Add records name, suffixing the display name when it matches defaultTarget.
func (t *Targets) Add(name, defaultTarget string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	display := name
	if defaultTarget != "" && name == defaultTarget {
		display = name + DefaultTargetSuffix
	}
	t.Set(display, name)
}

// Get returns the invocation name for a display name.
func (t *Targets) Get(displayName string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.index[displayName]
	if !ok {
		return "", false
	}
	return t.entries[i].InvocationName, true
}

// Len returns the number of targets.
func (t *Targets) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// All yields targets in insertion order.
func (t *Targets) All() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// DisplayNames returns the keys in insertion order.
func (t *Targets) DisplayNames() []string {
	names := make([]string, 0, t.Len())
	for target := range t.All() {
		names = append(names, target.DisplayName)
	}
	return names
}

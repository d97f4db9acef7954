// Package taxonomy holds the tag and category migration tables and the
// rename/merge/drop logic applied to front matter sequences.
package taxonomy

import (
	"fmt"
	"sort"
	domainerr "tagkit/internal/domain/errors"
)

// Rule is either a rename to a target value or a removal.
type Rule struct {
	target string
	remove bool
}

func Rename(target string) Rule { return Rule{target: target} }

func Remove() Rule { return Rule{remove: true} }

// Target returns the replacement value; ok is false for a removal.
func (r Rule) Target() (target string, ok bool) {
	if r.remove {
		return "", false
	}
	return r.target, true
}

func (r Rule) String() string {
	if r.remove {
		return "<remove>"
	}
	return r.target
}

type Table map[string]Rule

// Counts accumulates what Migrate did across calls.
type Counts struct {
	Consolidated int
	Removed      int
}

// Migrate maps values through the table. The result holds each surviving
// value once, at the position where it first appears after mapping.
func (t Table) Migrate(values []string, c *Counts) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		next := v
		if rule, ok := t[v]; ok {
			target, keep := rule.Target()
			if !keep {
				if c != nil {
					c.Removed++
				}
				continue
			}
			next = target
		}
		if _, dup := seen[next]; dup {
			continue
		}
		seen[next] = struct{}{}
		out = append(out, next)
		if next != v && c != nil {
			c.Consolidated++
		}
	}
	return out
}

// Merge returns a copy of t with the entries of other applied on top.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for k, r := range t {
		out[k] = r
	}
	for k, r := range other {
		out[k] = r
	}
	return out
}

// Validate checks that a second pass over migrated values is a no-op: every
// rename target must be either unmapped or mapped to itself.
func (t Table) Validate() error {
	var ve domainerr.ValidationError
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		target, ok := t[k].Target()
		if !ok {
			continue
		}
		if target == "" {
			ve.Add(k, "rename target must not be empty")
			continue
		}
		next, mapped := t[target]
		if !mapped {
			continue
		}
		if nt, ok := next.Target(); ok && nt == target {
			continue
		}
		ve.Add(k, fmt.Sprintf("target %q is itself mapped to %s", target, next))
	}
	if ve.HasAny() {
		return ve
	}
	return nil
}

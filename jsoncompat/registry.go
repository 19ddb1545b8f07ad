package jsoncompat

import (
	"sort"
	"strings"
)

// Constructor builds a domain object from a decoded mapping. The mapping
// never contains ClassKey and is owned by the constructor.
type Constructor func(fields map[string]any) (any, error)

// Resolver resolves a full class name inside a family of related types.
type Resolver func(class string) (Constructor, bool)

type family struct {
	prefix  string
	resolve Resolver
}

// Registry maps json_claz values to constructors. It is immutable once
// NewRegistry returns, so one Registry may serve concurrent decodes.
type Registry struct {
	exact    map[string]Constructor
	families []family
}

// RegistryOption configures a Registry during NewRegistry.
type RegistryOption func(*Registry)

// WithType registers c for the exact class name.
func WithType(class string, c Constructor) RegistryOption {
	return func(r *Registry) {
		r.exact[class] = c
	}
}

// WithFamily delegates every class starting with prefix, and not matched
// exactly, to resolve.
func WithFamily(prefix string, resolve Resolver) RegistryOption {
	return func(r *Registry) {
		r.families = append(r.families, family{prefix: prefix, resolve: resolve})
	}
}

// NewRegistry builds a Registry from opts.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{exact: make(map[string]Constructor)}
	for _, opt := range opts {
		opt(r)
	}
	// Longest prefix wins when families overlap.
	sort.SliceStable(r.families, func(i, j int) bool {
		return len(r.families[i].prefix) > len(r.families[j].prefix)
	})
	return r
}

// Lookup resolves class, trying exact names before families.
func (r *Registry) Lookup(class string) (Constructor, error) {
	if r != nil {
		if c, ok := r.exact[class]; ok {
			return c, nil
		}
		for _, f := range r.families {
			if !strings.HasPrefix(class, f.prefix) {
				continue
			}
			if c, ok := f.resolve(class); ok && c != nil {
				return c, nil
			}
			break
		}
	}
	return nil, &UnsupportedTypeError{Class: class}
}

// Classes lists the exact class names, sorted.
func (r *Registry) Classes() []string {
	out := make([]string, 0, len(r.exact))
	for k := range r.exact {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FamilyTable returns a Resolver that strips prefix and an optional "::"
// separator from the class name and looks the remainder up in members.
func FamilyTable(prefix string, members map[string]Constructor) Resolver {
	table := make(map[string]Constructor, len(members))
	for k, v := range members {
		table[k] = v
	}
	return func(class string) (Constructor, bool) {
		rest, ok := strings.CutPrefix(class, prefix)
		if !ok {
			return nil, false
		}
		c, ok := table[strings.TrimPrefix(rest, "::")]
		return c, ok
	}
}

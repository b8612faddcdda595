// Package qname maps version independent faces-config element names to the
// qualified names used by each schema revision.
package qname

import (
	"sort"

	"github.com/jacoelho/facesconfig/pkg/version"
)

// QName is a namespace qualified element name.
type QName struct {
	Space string
	Local string
}

// String returns the Clark notation {namespace}local, or local when unqualified.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}
	return "{" + q.Space + "}" + q.Local
}

// Registry resolves names for one schema version.
type Registry struct {
	version version.Version
	allowed map[QName]struct{}
}

var registries = buildRegistries()

func buildRegistries() map[version.Version]*Registry {
	out := make(map[version.Version]*Registry, len(version.All()))
	for _, v := range version.All() {
		r := &Registry{version: v, allowed: make(map[QName]struct{}, len(spans))}
		for name, s := range spans {
			if s.allows(v) {
				r.allowed[QName{Space: v.Namespace(), Local: string(name)}] = struct{}{}
			}
		}
		out[v] = r
	}
	return out
}

// For returns the shared registry for v, or nil for an invalid version.
// Registries are immutable and safe for concurrent readers.
func For(v version.Version) *Registry {
	return registries[v]
}

// Version returns the registry version.
func (r *Registry) Version() version.Version {
	return r.version
}

// Resolve returns the qualified name of n in the registry version.
func (r *Registry) Resolve(n Name) QName {
	return Resolve(n, r.version)
}

// IsAllowed reports whether q is an element of the registry version.
func (r *Registry) IsAllowed(q QName) bool {
	_, ok := r.allowed[q]
	return ok
}

// Allows reports whether n is an element of the registry version.
func (r *Registry) Allows(n Name) bool {
	return r.IsAllowed(r.Resolve(n))
}

// AllowedElements returns the registry elements sorted by local name.
func (r *Registry) AllowedElements() []QName {
	out := make([]QName, 0, len(r.allowed))
	for q := range r.allowed {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Local < out[j].Local })
	return out
}

// Resolve returns the qualified name of n in v. The mapping is total: names
// not allowed in v still resolve, callers check IsAllowed.
func Resolve(n Name, v version.Version) QName {
	return QName{Space: v.Namespace(), Local: string(n)}
}

// Allowed returns a copy of the element set of v.
func Allowed(v version.Version) map[QName]struct{} {
	r := For(v)
	if r == nil {
		return nil
	}
	out := make(map[QName]struct{}, len(r.allowed))
	for q := range r.allowed {
		out[q] = struct{}{}
	}
	return out
}

// Matches reports whether an element with the given namespace and local name
// is n. Elements without a namespace are compared by local name only; a
// namespaced element must use a faces namespace in which n exists in at least
// one of the versions sharing it.
func Matches(n Name, namespace, local string) bool {
	if string(n) != local {
		return false
	}
	if namespace == "" {
		return true
	}
	s, ok := spans[n]
	if !ok {
		return false
	}
	for _, v := range version.Candidates(namespace) {
		if s.allows(v) {
			return true
		}
	}
	return false
}

// Known reports whether n is a faces-config element in any version.
func Known(n Name) bool {
	_, ok := spans[n]
	return ok
}

// Since returns the first version n appears in.
func Since(n Name) (version.Version, bool) {
	s, ok := spans[n]
	return s.since, ok
}

// Until returns the first version n no longer appears in; zero means never removed.
func Until(n Name) (version.Version, bool) {
	s, ok := spans[n]
	return s.until, ok
}

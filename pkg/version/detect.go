package version

import "strings"

// Signals are the root element facts that identify a schema version.
type Signals struct {
	// Namespace is the root element namespace URI.
	Namespace string
	// VersionAttr is the value of the root "version" attribute.
	VersionAttr string
	// SchemaLocation is the raw xsi:schemaLocation value.
	SchemaLocation string
	// Doctype is the DOCTYPE directive body, if any.
	Doctype string
}

// Detect resolves signals to a version.
//
// The namespace selects the candidates. A declared version attribute naming a
// candidate wins; otherwise schemaLocation (or DOCTYPE for the DTD revisions)
// is matched newest to oldest; otherwise the oldest candidate is used.
// An unknown namespace yields Oldest.
func Detect(s Signals) Version {
	candidates := Candidates(s.Namespace)
	if len(candidates) == 0 {
		return Oldest
	}

	if declared, err := Parse(s.VersionAttr); err == nil {
		for _, v := range candidates {
			if v == declared {
				return v
			}
		}
	}

	tokens := strings.Fields(s.SchemaLocation)
	for _, v := range candidates {
		if v.UsesDTD() {
			if matchesDoctype(v, s.Doctype) {
				return v
			}
			continue
		}
		if matchesSchemaFile(v, tokens) {
			return v
		}
	}

	return candidates[len(candidates)-1]
}

func matchesSchemaFile(v Version, tokens []string) bool {
	file := v.SchemaFile()
	for _, tok := range tokens {
		if tok == file || strings.HasSuffix(tok, "/"+file) {
			return true
		}
	}
	return false
}

func matchesDoctype(v Version, doctype string) bool {
	if doctype == "" {
		return false
	}
	in := infos[v]
	return strings.Contains(doctype, in.publicID) || strings.Contains(doctype, in.systemID)
}

// Package version enumerates the faces-config schema revisions and detects
// which one a document declares.
package version

import (
	"fmt"
	"strings"
)

// Version identifies one faces-config schema revision.
// The zero value is not a valid version.
type Version uint8

const (
	// JSF10 is the DTD based JavaServer Faces 1.0 descriptor.
	JSF10 Version = iota + 1
	// JSF11 is the DTD based JavaServer Faces 1.1 descriptor.
	JSF11
	// JSF12 is the first XSD based descriptor (Java EE namespace).
	JSF12
	// JSF20 shares the Java EE namespace with 1.2 and 2.1.
	JSF20
	// JSF21 shares the Java EE namespace with 1.2 and 2.0.
	JSF21
	// JSF22 introduces the jcp.org namespace.
	JSF22
	// JSF23 shares the jcp.org namespace with 2.2.
	JSF23
	// Faces30 introduces the Jakarta EE namespace.
	Faces30
	// Faces40 shares the Jakarta EE namespace with 3.0.
	Faces40
)

// Namespaces used by the XSD based revisions. The DTD revisions have no namespace.
const (
	NamespaceJavaEE  = "http://java.sun.com/xml/ns/javaee"
	NamespaceJCP     = "http://xmlns.jcp.org/xml/ns/javaee"
	NamespaceJakarta = "https://jakarta.ee/xml/ns/jakartaee"

	// XSINamespace carries the schemaLocation attribute.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// Oldest and Latest bound the supported range.
const (
	Oldest = JSF10
	Latest = Faces40
)

type info struct {
	name      string
	namespace string
	// schemaFile is the XSD file name for schema based revisions.
	schemaFile string
	// publicID and systemID identify the DTD for legacy revisions.
	publicID string
	systemID string
}

var infos = [...]info{
	JSF10: {
		name:     "1.0",
		publicID: "-//Sun Microsystems, Inc.//DTD JavaServer Faces Config 1.0//EN",
		systemID: "http://java.sun.com/dtd/web-facesconfig_1_0.dtd",
	},
	JSF11: {
		name:     "1.1",
		publicID: "-//Sun Microsystems, Inc.//DTD JavaServer Faces Config 1.1//EN",
		systemID: "http://java.sun.com/dtd/web-facesconfig_1_1.dtd",
	},
	JSF12:   {name: "1.2", namespace: NamespaceJavaEE, schemaFile: "web-facesconfig_1_2.xsd"},
	JSF20:   {name: "2.0", namespace: NamespaceJavaEE, schemaFile: "web-facesconfig_2_0.xsd"},
	JSF21:   {name: "2.1", namespace: NamespaceJavaEE, schemaFile: "web-facesconfig_2_1.xsd"},
	JSF22:   {name: "2.2", namespace: NamespaceJCP, schemaFile: "web-facesconfig_2_2.xsd"},
	JSF23:   {name: "2.3", namespace: NamespaceJCP, schemaFile: "web-facesconfig_2_3.xsd"},
	Faces30: {name: "3.0", namespace: NamespaceJakarta, schemaFile: "web-facesconfig_3_0.xsd"},
	Faces40: {name: "4.0", namespace: NamespaceJakarta, schemaFile: "web-facesconfig_4_0.xsd"},
}

// All returns every supported version, oldest first.
func All() []Version {
	out := make([]Version, 0, int(Latest))
	for v := Oldest; v <= Latest; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is one of the supported versions.
func (v Version) Valid() bool {
	return v >= Oldest && v <= Latest
}

// String returns the version number, e.g. "2.2".
func (v Version) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
	return infos[v].name
}

// Namespace returns the element namespace, empty for the DTD revisions.
func (v Version) Namespace() string {
	if !v.Valid() {
		return ""
	}
	return infos[v].namespace
}

// SchemaFile returns the XSD file name, empty for the DTD revisions.
func (v Version) SchemaFile() string {
	if !v.Valid() {
		return ""
	}
	return infos[v].schemaFile
}

// SchemaLocation returns the xsi:schemaLocation value written for new documents.
func (v Version) SchemaLocation() string {
	if !v.Valid() || infos[v].schemaFile == "" {
		return ""
	}
	return infos[v].namespace + " " + infos[v].namespace + "/" + infos[v].schemaFile
}

// Doctype returns the DOCTYPE directive body for the DTD revisions.
func (v Version) Doctype() string {
	if !v.Valid() || infos[v].publicID == "" {
		return ""
	}
	return fmt.Sprintf("DOCTYPE faces-config PUBLIC %q %q", infos[v].publicID, infos[v].systemID)
}

// UsesDTD reports whether the revision is DTD based.
func (v Version) UsesDTD() bool {
	return v.Valid() && infos[v].namespace == ""
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v >= other
}

// Parse accepts "2.2" style names.
func Parse(s string) (Version, error) {
	name := strings.TrimSpace(s)
	for v := Oldest; v <= Latest; v++ {
		if infos[v].name == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown faces-config version %q", s)
}

// Candidates returns the versions declaring namespace, newest first.
// The empty namespace selects the DTD revisions.
func Candidates(namespace string) []Version {
	var out []Version
	for v := Latest; v >= Oldest; v-- {
		if infos[v].namespace == namespace {
			out = append(out, v)
		}
	}
	return out
}

// IsFacesNamespace reports whether ns belongs to any schema based revision.
func IsFacesNamespace(ns string) bool {
	return ns == NamespaceJavaEE || ns == NamespaceJCP || ns == NamespaceJakarta
}

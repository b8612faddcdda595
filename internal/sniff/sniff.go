// Package sniff reads the version signals of a faces-config document from a
// stream without building a DOM.
package sniff

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jacoelho/facesconfig/pkg/version"
)

// ErrNoRoot is returned when the input ends before a root element.
var ErrNoRoot = errors.New("no root element")

// Root holds the root element facts.
type Root struct {
	Namespace string
	Local     string
	Signals   version.Signals
}

// Read consumes r up to the root start element.
func Read(r io.Reader) (Root, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = true

	var doctype string
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return Root{}, ErrNoRoot
		}
		if err != nil {
			return Root{}, fmt.Errorf("xml read: %w", err)
		}

		switch t := tok.(type) {
		case xml.Directive:
			text := strings.TrimSpace(string(t))
			if strings.HasPrefix(text, "DOCTYPE") {
				doctype = text
			}
		case xml.CharData:
			if !isIgnorableOutsideRoot(string(t)) {
				return Root{}, fmt.Errorf("unexpected character data outside root element")
			}
		case xml.StartElement:
			root := Root{Namespace: t.Name.Space, Local: t.Name.Local}
			root.Signals = version.Signals{
				Namespace: t.Name.Space,
				Doctype:   doctype,
			}
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == "" && a.Name.Local == "version":
					root.Signals.VersionAttr = a.Value
				case a.Name.Space == version.XSINamespace && a.Name.Local == "schemaLocation":
					root.Signals.SchemaLocation = a.Value
				}
			}
			return root, nil
		}
	}
}

// Version reads the root of r and resolves its version.
func Version(r io.Reader) (version.Version, error) {
	root, err := Read(r)
	if err != nil {
		return 0, err
	}
	return version.Detect(root.Signals), nil
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

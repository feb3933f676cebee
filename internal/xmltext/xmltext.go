// Package xmltext extracts element text from small XML documents.
package xmltext

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrMalformed = errors.New("malformed XML")
	ErrNotFound  = errors.New("element not found")
)

// ChildText returns all character data inside the first direct child of
// the root element whose local name is name. Text of nested elements is
// included in document order, so <name>Al<b>i</b>ce</name> yields "Alice".
//
// The whole document is read even after a match, so a document that is
// broken anywhere returns ErrMalformed rather than a partial answer.
func ChildText(doc, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("element name cannot be empty")
	}

	decoder := xml.NewDecoder(strings.NewReader(doc))

	var (
		depth    int
		sawRoot  bool
		inTarget bool
		found    bool
		text     strings.Builder
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				if sawRoot {
					return "", fmt.Errorf("%w: multiple root elements", ErrMalformed)
				}
				sawRoot = true
			}
			if depth == 2 && !found && t.Name.Local == name {
				inTarget = true
			}
		case xml.EndElement:
			if depth == 2 && inTarget {
				inTarget = false
				found = true
			}
			depth--
		case xml.CharData:
			if inTarget {
				text.Write(t)
			}
		}
	}

	if !sawRoot {
		return "", fmt.Errorf("%w: no root element", ErrMalformed)
	}
	if depth != 0 {
		return "", fmt.Errorf("%w: unclosed element", ErrMalformed)
	}
	if !found {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return text.String(), nil
}

package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
)

// ExtensionRef identifies an extension on the marketplace. Both fields are
// non-empty once constructed; values are never mutated after parsing.
type ExtensionRef struct {
	Publisher string
	Name      string
}

func (x *ExtensionRef) String() string {
	return x.Publisher + "." + x.Name
}

// ParseExtensionID parses user input into an ExtensionRef. Two shapes are
// accepted: a dotted identifier ("ms-python.python") or a marketplace item
// URL carrying an itemName query parameter. The split is always on the first
// dot, so "p.e.f" yields publisher "p" and name "e.f". Pure parsing, no
// network access.
func ParseExtensionID(raw string) (*ExtensionRef, error) {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid marketplace URL",
				goerr.T(types.ErrTagBadIdentifier),
				goerr.V("input", raw),
			)
		}

		item := u.Query().Get("itemName")
		if item == "" {
			return nil, goerr.New("marketplace URL has no itemName query parameter",
				goerr.T(types.ErrTagBadIdentifier),
				goerr.V("input", raw),
			)
		}
		return splitIdentifier(item, raw)
	}

	return splitIdentifier(raw, raw)
}

func splitIdentifier(id, input string) (*ExtensionRef, error) {
	publisher, name, found := strings.Cut(id, ".")
	if !found || publisher == "" || name == "" {
		return nil, goerr.New("identifier must be in publisher.extension format",
			goerr.T(types.ErrTagBadIdentifier),
			goerr.V("input", input),
		)
	}

	return &ExtensionRef{Publisher: publisher, Name: name}, nil
}

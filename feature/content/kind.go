package content

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for a content kind other than post, taxonomy or user.
var ErrUnknownKind = errors.New("unknown content kind")

// Kind names a validated content type.
type Kind string

const (
	KindPost     Kind = "post"
	KindTaxonomy Kind = "taxonomy"
	KindUser     Kind = "user"
)

// Kinds lists every kind in a fixed order.
func Kinds() []Kind {
	return []Kind{KindPost, KindTaxonomy, KindUser}
}

// ParseKind validates s.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPost, KindTaxonomy, KindUser:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// IDField is the record field carrying the identifier for the kind.
func (k Kind) IDField() string {
	if k == KindTaxonomy {
		return "term_id"
	}
	return "ID"
}

// LabelField is the record field used as a human readable label.
func (k Kind) LabelField() string {
	switch k {
	case KindTaxonomy:
		return "name"
	case KindUser:
		return "user_login"
	default:
		return "title"
	}
}

// ErrInvalidID is returned when a requested identifier is not numeric.
var ErrInvalidID = errors.New("invalid content identifier")

// Noun names a single record of the kind in messages.
func (k Kind) Noun() string {
	if k == KindTaxonomy {
		return "term"
	}
	return string(k)
}

package remote

import (
	"fmt"
	"net/url"
)

// SampleType selects which representation a sample resource returns.
type SampleType string

const (
	TypePosts SampleType = "posts"
	TypeTerms SampleType = "terms"
	TypeUsers SampleType = "users"
)

// ParseSampleType validates s against the fixed enumeration.
func ParseSampleType(s string) (SampleType, error) {
	switch t := SampleType(s); t {
	case TypePosts, TypeTerms, TypeUsers:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSampleType, s)
	}
}

// Params are the query parameters of a remote resource request.
// Count resources take none; sample resources need Type and IDs.
type Params struct {
	Type SampleType
	IDs  []string
}

// Values encodes the params PHP style (ids[]=1&ids[]=2).
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Type != "" {
		v.Set("type", string(p.Type))
	}
	for _, id := range p.IDs {
		v.Add("ids[]", id)
	}
	return v
}

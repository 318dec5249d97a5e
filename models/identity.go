package models

import (
	"fmt"
	"strings"
)

// Actor is the identity capability a host user type must provide to appear
// in the journal
type Actor interface {
	fmt.Stringer
	// IdentityID returns the stable identifier of the identity
	IdentityID() string
}

// SubjectType describes the kind of object an action targeted
type SubjectType struct {
	Domain string `json:"domain"`
	Kind   string `json:"kind"`
}

// NewSubjectType builds a SubjectType, normalising the kind to lower case
func NewSubjectType(domain, kind string) SubjectType {
	return SubjectType{Domain: domain, Kind: strings.ToLower(kind)}
}

// ParseSubjectType parses a "domain.kind" label
func ParseSubjectType(label string) (SubjectType, error) {
	idx := strings.LastIndex(label, ".")
	if idx <= 0 || idx == len(label)-1 {
		return SubjectType{}, fmt.Errorf("invalid subject type label %q", label)
	}
	return NewSubjectType(label[:idx], label[idx+1:]), nil
}

// IsZero reports whether no type is set
func (t SubjectType) IsZero() bool {
	return t.Domain == "" && t.Kind == ""
}

// String returns the dotted "domain.kind" label
func (t SubjectType) String() string {
	return t.Domain + "." + t.Kind
}

// Subject is a concrete object the journal can reference
type Subject interface {
	SubjectType() SubjectType
	PrimaryKey() string
}

package sdk

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

var revisionPrefix = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*`)

// Revision is the version number of a package. The zero value is the null revision.
type Revision struct {
	v *version.Version
}

// ParseRevision parses the leading dot-separated numeric part of s. Trailing text
// such as " rc1" is ignored; input without a leading digit gives the null revision.
func ParseRevision(s string) Revision {
	prefix := revisionPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return Revision{}
	}
	v, err := version.NewVersion(prefix)
	if err != nil {
		return Revision{}
	}
	return Revision{v: v}
}

// IsNull reports whether no version could be parsed.
func (r Revision) IsNull() bool {
	return r.v == nil
}

// Equal compares two revisions. Two null revisions are equal.
func (r Revision) Equal(other Revision) bool {
	if r.v == nil || other.v == nil {
		return r.v == nil && other.v == nil
	}
	return r.v.Equal(other.v)
}

// Compare returns -1, 0 or 1. The null revision sorts first.
func (r Revision) Compare(other Revision) int {
	switch {
	case r.v == nil && other.v == nil:
		return 0
	case r.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return r.v.Compare(other.v)
}

// Segments returns the numeric segments, padded to at least three.
func (r Revision) Segments() []int {
	if r.v == nil {
		return nil
	}
	return r.v.Segments()
}

func (r Revision) String() string {
	if r.v == nil {
		return ""
	}
	return r.v.Original()
}

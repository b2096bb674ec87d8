package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

var ErrInvalidSelector = errors.New("invalid selector")

// Selector matches template elements by tag name and/or id, written as
// "name#id". Either part may be left out but not both, and the id is
// everything after the first '#'. Foreground targets may add "@fill" or
// "@stroke" to restrict which color attribute is rewritten.
type Selector struct {
	Name string
	ID   string
	Attr string
}

func ParseSelector(spec string) (Selector, error) {
	s := Selector{}
	rest := spec
	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		s.Attr = rest[i+1:]
		rest = rest[:i]
		if s.Attr != "fill" && s.Attr != "stroke" {
			return Selector{}, fmt.Errorf("%w: \"%s\", attribute must be fill or stroke", ErrInvalidSelector, spec)
		}
	}
	s.Name, s.ID, _ = strings.Cut(rest, "#")
	if s.Name == "" && s.ID == "" {
		return Selector{}, fmt.Errorf("%w: \"%s\", expected format: \"<name>#<id>\"", ErrInvalidSelector, spec)
	}
	if strings.ContainsAny(s.Name, "#'[]/@ ") || strings.ContainsAny(s.ID, "'[]") {
		return Selector{}, fmt.Errorf("%w: \"%s\" contains reserved characters", ErrInvalidSelector, spec)
	}
	return s, nil
}

func MustParseSelector(spec string) Selector {
	s, err := ParseSelector(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Selector) UnmarshalText(text []byte) error {
	parsed, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Selector) String() string {
	str := s.Name
	if s.ID != "" {
		str += "#" + s.ID
	}
	if s.Attr != "" {
		str += "@" + s.Attr
	}
	return str
}

// Path returns the etree path selecting every matching element in a document.
func (s Selector) Path() string {
	name := s.Name
	if name == "" {
		name = "*"
	}
	if s.ID == "" {
		return "//" + name
	}
	return fmt.Sprintf("//%s[@id='%s']", name, s.ID)
}

func (s Selector) Find(doc *etree.Document) []*etree.Element {
	return doc.FindElements(s.Path())
}

package inspect

import (
	"strings"

	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// normalizeName folds case and drops separators, so "flex-data",
// "Flex Data" and "flexdata" compare equal.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// ResolveFamily finds a family by name (case and separator insensitive).
func ResolveFamily(name string) (ump.Family, bool) {
	n := normalizeName(name)
	for _, f := range ump.Families() {
		if normalizeName(f.Name) == n {
			return f, true
		}
	}
	return ump.Family{}, false
}

// ResolveShape finds a shape within a family by name.
func ResolveShape(family ump.Family, name string) (*wire.Shape, bool) {
	n := normalizeName(name)
	for _, s := range family.Shapes {
		if normalizeName(s.Name) == n {
			return s, true
		}
	}
	return nil, false
}

// ShapeInfo summarises one shape for listings.
type ShapeInfo struct {
	Family string   `yaml:"family"`
	Name   string   `yaml:"name"`
	Words  int      `yaml:"words,omitempty"`
	Bytes  int      `yaml:"bytes,omitempty"`
	Prefix bool     `yaml:"prefix,omitempty"`
	Fields []string `yaml:"fields,omitempty"`
}

// ListShapes describes every shape of the named family, or of all families
// when name is empty.
func ListShapes(name string) ([]ShapeInfo, bool) {
	families := ump.Families()
	if name != "" {
		f, ok := ResolveFamily(name)
		if !ok {
			return nil, false
		}
		families = []ump.Family{f}
	}
	var out []ShapeInfo
	for _, f := range families {
		for _, s := range f.Shapes {
			info := ShapeInfo{
				Family: f.Name,
				Name:   s.Name,
				Words:  s.MinWords,
				Bytes:  s.MinBytes,
				Prefix: s.Prefix != nil,
			}
			for _, field := range s.Fields {
				info.Fields = append(info.Fields, field.FieldName())
			}
			out = append(out, info)
		}
	}
	return out, true
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RawFamilyDef is one message family loaded from messages.yaml.
type RawFamilyDef struct {
	Package     string          `yaml:"package"`
	Description string          `yaml:"description"`
	Imports     []string        `yaml:"imports"`
	Prefix      *RawPrefixDef   `yaml:"prefix"`
	Enums       []RawEnumDef    `yaml:"enums"`
	Messages    []RawMessageDef `yaml:"messages"`
}

// RawPrefixDef names the field and type of the jitter-reduction prefix used
// by messages with prefix: true.
type RawPrefixDef struct {
	Field string `yaml:"field"` // e.g. utility.JitterReductionField
	Type  string `yaml:"type"`  // e.g. utility.JitterReduction
}

// RawEnumDef is a closed enum whose constants are their wire codes.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"` // "uint8"
	Label       string         `yaml:"label"`
	Description string         `yaml:"description"`
	Values      []RawEnumValue `yaml:"values"`
}

// RawEnumValue is one enum constant.
type RawEnumValue struct {
	Name        string `yaml:"name"`
	Value       int    `yaml:"value"`
	Description string `yaml:"description"`
}

// RawMessageDef is one concrete message shape.
type RawMessageDef struct {
	Name          string               `yaml:"name"`
	Description   string               `yaml:"description"`
	PacketType    string               `yaml:"packetType"`
	MinWords      int                  `yaml:"minWords"`
	MinBytes      int                  `yaml:"minBytes"`
	Prefix        bool                 `yaml:"prefix"`
	Discriminants []RawDiscriminantDef `yaml:"discriminants"`
	Fields        []RawFieldDef        `yaml:"fields"`
}

// RawDiscriminantDef is a constant field, either a reference to a shared
// package variable or an inline declaration.
type RawDiscriminantDef struct {
	Ref          string `yaml:"ref"`
	Name         string `yaml:"name"`
	RawSchemaDef `yaml:",inline"`
	Value        string `yaml:"value"`
}

// RawFieldDef is a typed field. Ref points at a shared package variable
// instead of declaring a new one.
type RawFieldDef struct {
	Name         string `yaml:"name"` // Go accessor name
	Label        string `yaml:"label"`
	Ref          string `yaml:"ref"`
	Type         string `yaml:"type"`
	Codec        string `yaml:"codec"`
	Description  string `yaml:"description"`
	RawSchemaDef `yaml:",inline"`
}

// RawSchemaDef locates a field. Words and Bytes give one mask per unit
// index; the *Parts forms give explicit ordered parts, most significant first.
type RawSchemaDef struct {
	Words     []string     `yaml:"words"`
	WordParts []RawPartDef `yaml:"wordParts"`
	Bytes     []string     `yaml:"bytes"`
	ByteParts []RawPartDef `yaml:"byteParts"`
}

// RawPartDef is one explicit schema part.
type RawPartDef struct {
	Index int    `yaml:"index"`
	Mask  string `yaml:"mask"`
}

// ParseFamilyDef parses and validates a family definition from YAML bytes.
func ParseFamilyDef(data []byte) (*RawFamilyDef, error) {
	var def RawFamilyDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing family def: %w", err)
	}
	if def.Package == "" {
		return nil, fmt.Errorf("family definition missing package")
	}
	if err := validateFamily(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFamilyDef loads and parses a family definition from a file.
func LoadFamilyDef(path string) (*RawFamilyDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseFamilyDef(data)
}

func validateFamily(def *RawFamilyDef) error {
	seen := make(map[string]bool)
	for _, m := range def.Messages {
		if m.Name == "" {
			return fmt.Errorf("%s: message missing name", def.Package)
		}
		if seen[m.Name] {
			return fmt.Errorf("%s: duplicate message %s", def.Package, m.Name)
		}
		seen[m.Name] = true
		if m.MinWords <= 0 && m.MinBytes <= 0 {
			return fmt.Errorf("%s: no size for either unit kind", m.Name)
		}
		if m.Prefix && def.Prefix == nil {
			return fmt.Errorf("%s: prefix requested but family declares no prefix field", m.Name)
		}
		if _, err := parseMask(m.PacketType, 0xF); err != nil {
			return fmt.Errorf("%s: packet type: %w", m.Name, err)
		}
		for _, d := range m.Discriminants {
			if d.Ref != "" {
				continue
			}
			if d.Name == "" {
				return fmt.Errorf("%s: discriminant missing name", m.Name)
			}
			if err := d.validate(); err != nil {
				return fmt.Errorf("%s.%s: %w", m.Name, d.Name, err)
			}
		}
		for _, f := range m.Fields {
			if f.Name == "" || f.Type == "" {
				return fmt.Errorf("%s: field needs name and type", m.Name)
			}
			if f.Ref != "" {
				continue
			}
			if f.Codec == "" {
				return fmt.Errorf("%s.%s: missing codec", m.Name, f.Name)
			}
			if err := f.validate(); err != nil {
				return fmt.Errorf("%s.%s: %w", m.Name, f.Name, err)
			}
		}
	}
	return nil
}

func (s RawSchemaDef) validate() error {
	if len(s.Words) == 0 && len(s.WordParts) == 0 {
		return fmt.Errorf("schema has no word form")
	}
	if len(s.Words) > 0 && len(s.WordParts) > 0 {
		return fmt.Errorf("words and wordParts are exclusive")
	}
	if len(s.Bytes) > 0 && len(s.ByteParts) > 0 {
		return fmt.Errorf("bytes and byteParts are exclusive")
	}
	for _, m := range s.Words {
		if _, err := parseMask(m, 0xFFFF_FFFF); err != nil {
			return err
		}
	}
	for _, m := range s.Bytes {
		if _, err := parseMask(m, 0xFF); err != nil {
			return err
		}
	}
	for _, p := range s.WordParts {
		if _, err := parseMask(p.Mask, 0xFFFF_FFFF); err != nil {
			return err
		}
	}
	for _, p := range s.ByteParts {
		if _, err := parseMask(p.Mask, 0xFF); err != nil {
			return err
		}
	}
	return nil
}

func (d RawDiscriminantDef) validate() error {
	if err := d.RawSchemaDef.validate(); err != nil {
		return err
	}
	if _, err := strconv.ParseUint(d.Value, 0, 64); err != nil {
		return fmt.Errorf("value %q: %w", d.Value, err)
	}
	return nil
}

// parseMask accepts Go integer literal syntax, underscores included.
func parseMask(s string, limit uint64) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("mask %q: %w", s, err)
	}
	if v > limit {
		return 0, fmt.Errorf("mask %q exceeds %#x", s, limit)
	}
	return v, nil
}

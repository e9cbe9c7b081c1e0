// Package vectors loads YAML test vectors for message families and checks
// them against a family's dispatcher.
package vectors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ump-protocol/ump-go/pkg/log"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Absent is how a nil optional field is written in a vector.
const Absent = log.Absent

// File is one vector file.
type File struct {
	// Family names the dispatcher the vectors are meant for.
	Family string `yaml:"family"`

	Vectors []Vector `yaml:"vectors"`
}

// Vector is a single encoded message and what decoding it must yield.
type Vector struct {
	Name string `yaml:"name"`

	// Words or Bytes hold the encoded form. Exactly one is set.
	Words []Word `yaml:"words,omitempty"`
	Bytes []Byte `yaml:"bytes,omitempty"`

	// Message is the expected shape name on success.
	Message string `yaml:"message,omitempty"`

	// Fields maps field labels to their expected printed values. Fields not
	// listed are not checked.
	Fields map[string]string `yaml:"fields,omitempty"`

	// Prefix is the expected printed prefix value, empty to skip the check.
	Prefix string `yaml:"prefix,omitempty"`

	// Error is the expected error kind: BufferTooShort, InvalidDiscriminant,
	// InvalidFieldValue or UnknownVariant.
	Error string `yaml:"error,omitempty"`

	// Lossy marks inputs with reserved bits set, which do not re-encode to
	// the same units.
	Lossy bool `yaml:"lossy,omitempty"`
}

// Word is a 32-bit unit written as a hex string such as "0x2FD6_0900".
type Word uint32

// UnmarshalYAML accepts any integer literal strconv understands.
func (w *Word) UnmarshalYAML(node *yaml.Node) error {
	v, err := strconv.ParseUint(node.Value, 0, 32)
	if err != nil {
		return fmt.Errorf("line %d: invalid word %q: %w", node.Line, node.Value, err)
	}
	*w = Word(v)
	return nil
}

// Byte is an 8-bit unit written as a hex string such as "0xC7".
type Byte uint8

// UnmarshalYAML accepts any integer literal strconv understands.
func (b *Byte) UnmarshalYAML(node *yaml.Node) error {
	v, err := strconv.ParseUint(node.Value, 0, 8)
	if err != nil {
		return fmt.Errorf("line %d: invalid byte %q: %w", node.Line, node.Value, err)
	}
	*b = Byte(v)
	return nil
}

// View returns the vector's units as a fresh buffer.
func (v Vector) View() wire.View {
	if len(v.Bytes) > 0 {
		out := make(wire.Bytes, len(v.Bytes))
		for i, b := range v.Bytes {
			out[i] = byte(b)
		}
		return out
	}
	out := make(wire.Words, len(v.Words))
	for i, w := range v.Words {
		out[i] = uint32(w)
	}
	return out
}

var errorKinds = map[string]error{
	"BufferTooShort":      wire.ErrBufferTooShort,
	"InvalidDiscriminant": wire.ErrInvalidDiscriminant,
	"InvalidFieldValue":   wire.ErrInvalidFieldValue,
	"UnknownVariant":      wire.ErrUnknownVariant,
}

// ExpectedError returns the sentinel named by Error, or nil.
func (v Vector) ExpectedError() error {
	return errorKinds[v.Error]
}

// LoadError provides details about a vector file that failed to load.
type LoadError struct {
	File    string
	Line    int
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Message
	}
	return e.File + ": " + e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes a vector file from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if len(f.Vectors) == 0 {
		return nil, &LoadError{Message: "vector file must have at least one vector"}
	}
	for i, v := range f.Vectors {
		if v.Name == "" {
			return nil, &LoadError{Message: fmt.Sprintf("vector %d has no name", i)}
		}
		if (len(v.Words) == 0) == (len(v.Bytes) == 0) {
			return nil, &LoadError{Message: fmt.Sprintf("vector %q must set exactly one of words and bytes", v.Name)}
		}
		if v.Error != "" {
			if _, ok := errorKinds[v.Error]; !ok {
				return nil, &LoadError{Message: fmt.Sprintf("vector %q: unknown error kind %q", v.Name, v.Error)}
			}
			if v.Message != "" {
				return nil, &LoadError{Message: fmt.Sprintf("vector %q sets both message and error", v.Name)}
			}
		} else if v.Message == "" {
			return nil, &LoadError{Message: fmt.Sprintf("vector %q sets neither message nor error", v.Name)}
		}
	}
	return &f, nil
}

// Load reads a vector file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}
	f, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return f, nil
}

// LoadDirectory loads every .yaml or .yml file in dir.
func LoadDirectory(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{File: dir, Message: "failed to read directory", Cause: err}
	}
	var files []*File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		f, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// FormatFields prints decoded field values the way vectors spell them.
func FormatFields(fields []wire.FieldValue) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = FormatValue(f.Value)
	}
	return out
}

// FormatValue prints a single decoded value, nil as Absent.
func FormatValue(v any) string {
	return log.FormatValue(v)
}

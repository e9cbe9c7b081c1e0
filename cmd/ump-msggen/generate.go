package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// GenerateFamily renders the messages_gen.go source for one family. The
// output is not yet formatted; writeFormatted runs goimports over it.
func GenerateFamily(def *RawFamilyDef) (string, error) {
	data, err := buildFamilyData(def)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	renderTemplate(&b, "header", data)
	renderTemplate(&b, "enums", data)
	for _, m := range data.Messages {
		renderTemplate(&b, "message", m)
	}
	renderTemplate(&b, "shapes", data)
	return b.String(), nil
}

func buildFamilyData(def *RawFamilyDef) (*familyData, error) {
	data := &familyData{Package: def.Package, Imports: def.Imports}
	for _, e := range def.Enums {
		ed := enumData{Name: e.Name, Type: e.Type, Label: e.Label, Description: e.Description}
		if ed.Type == "" {
			ed.Type = "uint8"
		}
		if ed.Label == "" {
			ed.Label = strings.ToLower(splitCamelCase(e.Name))
		}
		for _, v := range e.Values {
			ed.Values = append(ed.Values, enumValueData{
				Const:       e.Name + v.Name,
				Name:        v.Name,
				Value:       v.Value,
				Description: v.Description,
			})
		}
		data.Enums = append(data.Enums, ed)
	}
	for _, m := range def.Messages {
		md, err := buildMessageData(def, m)
		if err != nil {
			return nil, err
		}
		data.Messages = append(data.Messages, md)
	}
	return data, nil
}

func buildMessageData(def *RawFamilyDef, m RawMessageDef) (messageData, error) {
	md := messageData{
		Name:        m.Name,
		Description: m.Description,
		PacketType:  m.PacketType,
		MinWords:    m.MinWords,
		MinBytes:    m.MinBytes,
	}
	if m.Prefix {
		md.PrefixField = def.Prefix.Field
		md.PrefixType = def.Prefix.Type
	}
	for _, d := range m.Discriminants {
		if d.Ref != "" {
			md.Discriminants = append(md.Discriminants, d.Ref)
			continue
		}
		md.Discriminants = append(md.Discriminants, fmt.Sprintf("{Name: %q, Schema: %s, Value: %s}", d.Name, schemaExpr(d.RawSchemaDef), d.Value))
	}
	for _, f := range m.Fields {
		fd := fieldData{
			Name:        f.Name,
			Type:        f.Type,
			Description: f.Description,
		}
		if fd.Description == "" {
			fd.Description = "the " + strings.ToLower(splitCamelCase(f.Name))
		}
		if f.Ref != "" {
			fd.Var = f.Ref
			fd.Shared = true
		} else {
			fd.Var = firstLower(m.Name) + f.Name
			fd.Label = f.Label
			if fd.Label == "" {
				fd.Label = strings.ToLower(splitCamelCase(f.Name))
			}
			fd.Codec = f.Codec
			fd.Schema = schemaExpr(f.RawSchemaDef)
		}
		md.Fields = append(md.Fields, fd)
		md.FieldVars = append(md.FieldVars, fd.Var)
	}
	return md, nil
}

// schemaExpr renders the wire constructor call for a schema.
func schemaExpr(s RawSchemaDef) string {
	var b strings.Builder
	if len(s.WordParts) > 0 {
		b.WriteString("wire.WordParts(" + partsExpr(s.WordParts) + ")")
	} else {
		b.WriteString("wire.Ump(" + strings.Join(s.Words, ", ") + ")")
	}
	switch {
	case len(s.ByteParts) > 0:
		b.WriteString(".WithByteParts(" + partsExpr(s.ByteParts) + ")")
	case len(s.Bytes) > 0:
		b.WriteString(".WithBytes(" + strings.Join(s.Bytes, ", ") + ")")
	}
	return b.String()
}

func partsExpr(parts []RawPartDef) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = "wire.Part{Index: " + strconv.Itoa(p.Index) + ", Mask: " + p.Mask + "}"
	}
	return strings.Join(out, ", ")
}

// firstLower lowercases the first letter, or a leading initialism as a
// whole ("JRClock" -> "jrClock", "NoOp" -> "noOp").
func firstLower(s string) string {
	r := []rune(s)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) {
		n-- // keep the start of the next word capitalised
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// splitCamelCase turns "TonicSharpsFlats" into "Tonic Sharps Flats". Digits
// stay attached to the preceding word ("Major7th" -> "Major7th").
func splitCamelCase(s string) string {
	var b strings.Builder
	r := []rune(s)
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prevLower := unicode.IsLower(r[i-1]) || unicode.IsDigit(r[i-1])
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if prevLower || (unicode.IsUpper(r[i-1]) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(c)
	}
	return b.String()
}

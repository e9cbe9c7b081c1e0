package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":     func(a, b string) string { return a + b },
	"firstLower": firstLower,
	"join":       strings.Join,
	"hexByte":    func(v int) string { return fmt.Sprintf("0x%02X", v) },
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		enumsTmpl +
		messageTmpl +
		shapesTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

type familyData struct {
	Package  string
	Imports  []string
	Enums    []enumData
	Messages []messageData
}

type enumData struct {
	Name        string
	Type        string
	Label       string
	Description string
	Values      []enumValueData
}

type enumValueData struct {
	Const       string
	Name        string
	Value       int
	Description string
}

type messageData struct {
	Name          string
	Description   string
	PacketType    string
	MinWords      int
	MinBytes      int
	PrefixField   string
	PrefixType    string
	Discriminants []string
	Fields        []fieldData
	FieldVars     []string
}

type fieldData struct {
	Name        string
	Var         string
	Label       string
	Type        string
	Codec       string
	Schema      string
	Description string
	Shared      bool
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by ump-msggen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
{{quote .}}
{{- end}}
"github.com/ump-protocol/ump-go/pkg/wire"
)
{{end}}`

const enumsTmpl = `{{define "enums"}}
{{- range .Enums}}
{{- $typeName := .Name}}
// {{$typeName}} {{.Description}}.
type {{$typeName}} {{.Type}}

const (
{{- range .Values}}
{{- if .Description}}
// {{.Const}} {{.Description}}.
{{- end}}
{{.Const}} {{$typeName}} = {{hexByte .Value}}
{{- end}}
)

// String returns the {{.Label}} name.
func (v {{$typeName}}) String() string {
switch v {
{{- range .Values}}
case {{.Const}}:
return {{quote .Name}}
{{- end}}
default:
return "UNKNOWN"
}
}

var {{firstLower $typeName}}Codec = wire.Enum({{quote .Label}},
{{- range .Values}}
wire.Code({{.Const}}, {{hexByte .Value}}),
{{- end}}
)
{{end}}
{{- end}}`

const messageTmpl = `{{define "message"}}
{{- $name := .Name}}
{{- $lower := firstLower .Name}}
// {{.Name}} {{.Description}}.
type {{.Name}} struct{ wire.Message }

var {{$lower}}Shape = &wire.Shape{
Name: {{quote .Name}},
PacketType: {{.PacketType}},
{{- if .MinWords}}
MinWords: {{.MinWords}},
{{- end}}
{{- if .MinBytes}}
MinBytes: {{.MinBytes}},
{{- end}}
{{- if .PrefixField}}
Prefix: {{.PrefixField}},
{{- end}}
Discriminants: []wire.Discriminant{
{{- range .Discriminants}}
{{.}},
{{- end}}
},
Fields: []wire.FieldSpec{ {{- join .FieldVars ", " -}} },
}
{{- $own := false}}
{{- range .Fields}}{{if not .Shared}}{{$own = true}}{{end}}{{end}}
{{- if $own}}

var (
{{- range .Fields}}
{{- if not .Shared}}
{{.Var}} = wire.Field[{{.Type}}]{Name: {{quote .Label}}, Schema: {{.Schema}}, Codec: {{.Codec}}}
{{- end}}
{{- end}}
)
{{- end}}

// Parse{{.Name}} validates v as a {{.Name}} message.
func Parse{{.Name}}(v wire.View) ({{.Name}}, error) {
m, err := {{$lower}}Shape.Parse(v)
if err != nil {
return {{.Name}}{}, err
}
return {{.Name}}{m}, nil
}
{{- if .PrefixField}}

// JitterReduction returns the prefix value, or nil if there is none.
func (m {{.Name}}) JitterReduction() *{{.PrefixType}} { return {{.PrefixField}}.Get(m.Message) }
{{- end}}
{{- range .Fields}}

// {{.Name}} returns {{.Description}}.
func (m {{$name}}) {{.Name}}() {{.Type}} { return {{.Var}}.Get(m.Message) }
{{- end}}

// {{.Name}}Builder writes a {{.Name}} message.
type {{.Name}}Builder struct{ b *wire.Builder }

// New{{.Name}}Builder starts a {{.Name}} message in buf.
func New{{.Name}}Builder(buf wire.MutableView, opts ...wire.BuildOption) *{{.Name}}Builder {
return &{{.Name}}Builder{b: wire.NewBuilder({{$lower}}Shape, buf, opts...)}
}
{{- if .PrefixField}}

func (b *{{.Name}}Builder) JitterReduction(v *{{.PrefixType}}) *{{.Name}}Builder {
{{.PrefixField}}.Set(b.b, v)
return b
}
{{- end}}
{{- range .Fields}}

func (b *{{$name}}Builder) {{.Name}}(v {{.Type}}) *{{$name}}Builder {
{{.Var}}.Set(b.b, v)
return b
}
{{- end}}

// Finish returns the message, or the first error recorded while building.
func (b *{{.Name}}Builder) Finish() ({{.Name}}, error) {
m, err := b.b.Finish()
if err != nil {
return {{.Name}}{}, err
}
return {{.Name}}{m}, nil
}
{{end}}`

const shapesTmpl = `{{define "shapes"}}
var shapes = []*wire.Shape{
{{- range .Messages}}
{{firstLower .Name}}Shape,
{{- end}}
}
{{end}}`

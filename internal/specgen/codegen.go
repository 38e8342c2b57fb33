package specgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"
)

const docWidth = 72

type fileData struct {
	PackageName string
	Packages    []packageData
}

type packageData struct {
	Name    string
	Field   string
	Type    string
	Methods []methodData
}

type methodData struct {
	ServiceType string
	Name        string
	GoName      string
	HTTP        string
	Auth        bool
	Doc         []string
	Args        string
	OptionsType string
	Required    []paramData
	Optional    []paramData
}

type paramData struct {
	Key      string
	Ident    string
	Type     string
	Multiple bool
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by specgen. DO NOT EDIT.

package {{.PackageName}}

import "context"

// Services groups the API packages of a client. T is the call result:
// json.RawMessage for Client and *Future for AsyncClient.
type Services[T any] struct {
{{- range .Packages}}
	{{.Field}} *{{.Type}}[T]
{{- end}}
}

func newServices[T any](d dispatcher[T]) Services[T] {
	return Services[T]{
{{- range .Packages}}
		{{.Field}}: &{{.Type}}[T]{pkg[T]{d: d, name: "{{.Name}}"}},
{{- end}}
	}
}
{{range .Packages}}
// {{.Type}} provides the {{.Name}}.* API methods.
type {{.Type}}[T any] struct {
	pkg[T]
}
{{range .Methods}}{{if .Optional}}
// {{.OptionsType}} holds the optional parameters of {{.ServiceType}}.{{.GoName}}.
type {{.OptionsType}} struct {
{{- range .Optional}}
	{{.Ident}} {{.Type}}
{{- end}}
}
{{end}}
{{range .Doc}}//{{if .}} {{.}}{{end}}
{{end -}}
func (s *{{.ServiceType}}[T]) {{.GoName}}(ctx context.Context{{.Args}}) (T, error) {
	p := Params{}
{{- range .Required}}
{{- if .Multiple}}
	setEach(p, "{{.Key}}", {{.Ident}})
{{- else}}
	p["{{.Key}}"] = {{.Ident}}
{{- end}}
{{- end}}
{{- if .Optional}}
	if opts != nil {
{{- range .Optional}}
{{- if .Multiple}}
		setEach(p, "{{.Key}}", opts.{{.Ident}})
{{- else}}
		p.setOpt("{{.Key}}", opts.{{.Ident}})
{{- end}}
{{- end}}
	}
{{- end}}
	return s.call(ctx, "{{.HTTP}}", "{{.Name}}", {{.Auth}}, p)
}
{{end}}{{end}}`))

// Generate renders gofmt'd Go source for the method surface described by
// spec into package pkgName.
func Generate(spec *Spec, pkgName string, w io.Writer) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	data := fileData{PackageName: pkgName}
	for _, name := range spec.PackageNames() {
		data.Packages = append(data.Packages, buildPackage(name, spec.Packages[name]))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render code: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated code: %w", err)
	}

	_, err = w.Write(src)
	return err
}

func buildPackage(name string, methods map[string]MethodSpec) packageData {
	pd := packageData{
		Name:  name,
		Field: ExportName(name),
		Type:  ExportName(name) + "Service",
	}

	names := make([]string, 0, len(methods))
	for m := range methods {
		names = append(names, m)
	}
	sort.Strings(names)

	for _, m := range names {
		pd.Methods = append(pd.Methods, buildMethod(pd, m, methods[m]))
	}
	return pd
}

func buildMethod(pd packageData, name string, spec MethodSpec) methodData {
	md := methodData{
		ServiceType: pd.Type,
		Name:        name,
		GoName:      ExportName(name),
		HTTP:        spec.HTTP,
		Auth:        spec.Auth,
		OptionsType: pd.Field + ExportName(name) + "Options",
	}

	var required, optional []string
	for p, ps := range spec.Params {
		if ps.Required {
			required = append(required, p)
		} else {
			optional = append(optional, p)
		}
	}
	sort.Strings(required)
	sort.Strings(optional)

	for _, p := range required {
		md.Required = append(md.Required, paramData{
			Key:      p,
			Ident:    ArgName(p),
			Type:     GoType(p, spec.Params[p]),
			Multiple: spec.Params[p].Multiple,
		})
	}
	for _, p := range optional {
		md.Optional = append(md.Optional, paramData{
			Key:      p,
			Ident:    ExportName(p),
			Type:     GoType(p, spec.Params[p]),
			Multiple: spec.Params[p].Multiple,
		})
	}

	md.Args = argList(md.Required)
	if len(md.Optional) > 0 {
		md.Args += ", opts *" + md.OptionsType
	}
	md.Doc = methodDoc(pd.Name, md, spec)
	return md
}

// argList renders required params, merging runs of the same type:
// ", album, artist string, limit int".
func argList(params []paramData) string {
	var groups []string
	for i := 0; i < len(params); {
		j := i
		var idents []string
		for j < len(params) && params[j].Type == params[i].Type {
			idents = append(idents, params[j].Ident)
			j++
		}
		groups = append(groups, strings.Join(idents, ", ")+" "+params[i].Type)
		i = j
	}
	if len(groups) == 0 {
		return ""
	}
	return ", " + strings.Join(groups, ", ")
}

// sentence terminates text so gofmt does not read a lone line as a heading.
func sentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text[len(text)-1:], ".!?:") {
		return text
	}
	return text + "."
}

func methodDoc(pkgName string, md methodData, spec MethodSpec) []string {
	doc := []string{fmt.Sprintf("%s calls %s.%s.", md.GoName, pkgName, md.Name)}
	if desc := wrap(sentence(spec.Description), docWidth); len(desc) > 0 {
		doc = append(doc, "")
		doc = append(doc, desc...)
	}

	doc = append(doc, "")
	if spec.Auth {
		doc = append(doc, "Authorization required.")
	} else {
		doc = append(doc, "Authorization not required.")
	}
	if spec.Documentation != "" {
		doc = append(doc, "", spec.Documentation)
	}

	params := append(append([]paramData{}, md.Required...), md.Optional...)
	if len(params) > 0 {
		doc = append(doc, "")
	}
	for _, p := range params {
		ps := spec.Params[p.Key]
		flags := []string{"optional"}
		if ps.Required {
			flags[0] = "required"
		}
		if ps.Multiple {
			flags = append(flags, "multiple")
		}
		if ps.Boolean {
			flags = append(flags, "boolean")
		}
		lines := wrap(p.Ident+": "+strings.Join(flags, ", ")+". "+ps.Description, docWidth-4)
		for i, l := range lines {
			if i == 0 {
				doc = append(doc, "  - "+l)
			} else {
				doc = append(doc, "    "+l)
			}
		}
	}
	return doc
}

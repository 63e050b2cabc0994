package rules

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/pathinfo"
)

// TemplateData is what a rename template executes against.
type TemplateData struct {
	// Path parts of the original.
	Full      string
	Directory string
	Name      string
	Stem      string
	Ext       string
	// Seq is the sequence number for this pair.
	Seq int
}

var templateFuncs = template.FuncMap{
	"lower":      strings.ToLower,
	"upper":      strings.ToUpper,
	"title":      strings.Title, //nolint:staticcheck // path segments, not prose
	"trimPrefix": func(prefix, s string) string { return strings.TrimPrefix(s, prefix) },
	"trimSuffix": func(suffix, s string) string { return strings.TrimSuffix(s, suffix) },
	"replace":    func(old, new, s string) string { return strings.ReplaceAll(s, old, new) },
	"reReplace": func(expr, repl, s string) (string, error) {
		re, err := regexp.Compile(expr)
		if err != nil {
			return "", err
		}
		return re.ReplaceAllString(s, repl), nil
	},
	"pad": func(width, n int) string {
		return fmt.Sprintf("%0*d", width, n)
	},
}

// templateComputer renders a Go text/template per pair.
type templateComputer struct {
	tmpl *template.Template
}

// NewTemplate compiles a rename template. The template executes against
// TemplateData and its output, whitespace-trimmed, becomes the new
// path. Example: "{{.Directory}}/{{.Stem | upper}}{{.Ext}}".
func NewTemplate(src string) (NewPathComputer, error) {
	tmpl, err := template.New("rename").Funcs(templateFuncs).Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleParse, "invalid rename template %q", src)
	}
	return &templateComputer{tmpl: tmpl}, nil
}

func (t *templateComputer) Kind() Kind { return KindTemplate }

func (t *templateComputer) Compute(orig pathinfo.PathInfo, seq int) (string, error) {
	var sb strings.Builder
	data := TemplateData{
		Full:      orig.Full,
		Directory: orig.Directory,
		Name:      orig.Name,
		Stem:      orig.Stem,
		Ext:       orig.Extension,
		Seq:       seq,
	}
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

// NewPatternFilter compiles a regular-expression filter. When keep is
// true, paths matching the pattern stay in the plan; otherwise matching
// paths are filtered out.
func NewPatternFilter(expr string, keep bool) (Filter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleParse, "invalid filter pattern %q", expr)
	}
	return FilterFunc(func(orig pathinfo.PathInfo, seq int) (bool, error) {
		return re.MatchString(orig.Full) == keep, nil
	}), nil
}

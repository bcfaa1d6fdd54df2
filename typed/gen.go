//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

// maxArity is the largest bag generated.
const maxArity = 8

var params = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

type slot struct {
	Index int
	Param string
	Nav   string
	Field string
}

type bag struct {
	Arity  int
	Name   string
	Params string // "[A, B any]", or empty
	Args   string // "[A, B]", or empty
	Spine  string
	Words  string
	Slots  []slot

	// Only set if the bag can grow.
	Next       string
	NextParam  string
	NextParams string
	NextArgs   string
	NextNav    string
	NextValue  string
}

var words = []string{"no", "one", "two", "three", "four", "five", "six", "seven", "eight"}

func navFor(k int) string {
	return strings.Repeat("nav.Skip[", k) + "nav.Take" + strings.Repeat("]", k)
}

func fieldFor(k int) string {
	return "b.v" + strings.Repeat(".tail", k) + ".head"
}

func spineFor(ps []string) string {
	var sb strings.Builder
	for _, p := range ps {
		fmt.Fprintf(&sb, "node[%s, ", p)
	}
	sb.WriteString("end")
	sb.WriteString(strings.Repeat("]", len(ps)))
	return sb.String()
}

func typeArgs(ps []string) string {
	if len(ps) == 0 {
		return ""
	}
	return "[" + strings.Join(ps, ", ") + "]"
}

func typeParams(ps []string) string {
	if len(ps) == 0 {
		return ""
	}
	return "[" + strings.Join(ps, ", ") + " any]"
}

func newBag(n int) bag {
	ps := params[:n]
	b := bag{
		Arity:  n,
		Name:   fmt.Sprintf("Bag%d", n),
		Params: typeParams(ps),
		Args:   typeArgs(ps),
		Spine:  spineFor(ps),
		Words:  words[n],
	}
	for i, p := range ps {
		b.Slots = append(b.Slots, slot{Index: i, Param: p, Nav: navFor(i), Field: fieldFor(i)})
	}
	if n < maxArity {
		next := params[:n+1]
		b.Next = fmt.Sprintf("Bag%d", n+1)
		b.NextParam = params[n]
		b.NextParams = typeParams(next)
		b.NextArgs = typeArgs(next)
		b.NextNav = navFor(n)
		// Rebuild the spine with v at the end.
		var sb strings.Builder
		for i := 0; i < n; i++ {
			fmt.Fprintf(&sb, "cons(%s, ", fieldFor(i))
		}
		sb.WriteString("cons(v, end{})")
		sb.WriteString(strings.Repeat(")", n))
		b.NextValue = sb.String()
	}
	return b
}

var tmpl = template.Must(template.New("bags").Parse(`// Code generated by gen.go; DO NOT EDIT.

package typed

import (
	"github.com/mre/borrow-bag/nav"
)
{{range $b := .}}
// {{.Name}} holds {{.Words}} value{{if ne .Arity 1}}s{{end}}.
type {{.Name}}{{.Params}} struct {
	v {{.Spine}}
}

// Len returns {{.Arity}}.
func ({{.Name}}{{.Args}}) Len() int { return {{.Arity}} }
{{range .Slots}}
// Borrow{{.Index}} returns a pointer to the value at position {{.Index}}.
func (b *{{$b.Name}}{{$b.Args}}) Borrow{{.Index}}(Handle[{{.Param}}, {{.Nav}}]) *{{.Param}} {
	return &{{.Field}}
}
{{end}}{{if .Next}}
// AddTo{{.Arity}} returns a bag holding the values of b followed by v, and a
// handle to v.
func AddTo{{.Arity}}{{.NextParams}}(b {{.Name}}{{.Args}}, v {{.NextParam}}) ({{.Next}}{{.NextArgs}}, Handle[{{.NextParam}}, {{.NextNav}}]) {
	return {{.Next}}{{.NextArgs}}{v: {{.NextValue}}}, Handle[{{.NextParam}}, {{.NextNav}}]{}
}
{{end}}{{end}}`))

func main() {
	var bags []bag
	for n := 0; n <= maxArity; n++ {
		bags = append(bags, newBag(n))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, bags); err != nil {
		fmt.Fprintf(os.Stderr, "- %s\n", err)
		os.Exit(1)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "- %s\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("bags_gen.go", src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "- %s\n", err)
		os.Exit(1)
	}
}

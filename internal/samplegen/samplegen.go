// Package samplegen turns a sample bank into Go source so samples can be
// compiled into a binary instead of loaded from disk.
//
// The generated file declares the sample rate, the total PCM size, one typed
// sample.ID constant per sample (in bank order, followed by NumSamples), the
// PCM data and a Bank function rebuilding the bank.
package samplegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/llehouerou/audible-altimeter/internal/sample"
)

// FileName is the name of the file WriteFile generates.
const FileName = "samples_gen.go"

const samplePkgPath = "github.com/llehouerou/audible-altimeter/internal/sample"

// valuesPerLine controls how PCM values are wrapped in the output.
const valuesPerLine = 16

var ErrIdentifierClash = errors.New("sample names map to the same identifier")

type entry struct {
	Name  string // original sample name
	Const string // exported ID constant
	Var   string // unexported PCM slice
	Len   int
	Lines []string
}

type fileData struct {
	Package    string
	ImportPath string
	SampleRate int
	TotalBytes int
	Samples    []entry
}

var fileTmpl = template.Must(template.New("samples").Parse(`// Code generated by samplegen. DO NOT EDIT.

package {{.Package}}

import "{{.ImportPath}}"

const (
	SampleRate = {{.SampleRate}}
	TotalBytes = {{.TotalBytes}}
)

const (
{{- range $i, $s := .Samples}}
	{{$s.Const}}{{if eq $i 0}} sample.ID = iota{{end}}
{{- end}}
)

// NumSamples is the number of samples; valid IDs are below it.
const NumSamples = {{len .Samples}}

// Bank returns a bank holding every generated sample.
func Bank() *sample.Bank {
	return sample.MustNewBank(SampleRate,
{{- range .Samples}}
		sample.Sample{Name: {{printf "%q" .Name}}, Data: {{.Var}}},
{{- end}}
	)
}
{{range .Samples}}
// {{.Var}} holds {{.Len}} samples of {{printf "%q" .Name}}.
var {{.Var}} = []int16{
{{- range .Lines}}
	{{.}}
{{- end}}
}
{{end}}`))

// Generate writes formatted Go source for bank in package pkg.
func Generate(w io.Writer, bank *sample.Bank, pkg string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}

	data := fileData{
		Package:    pkg,
		ImportPath: samplePkgPath,
		SampleRate: bank.SampleRate(),
		TotalBytes: bank.TotalBytes(),
	}

	seen := map[string]string{
		"SampleRate": "",
		"TotalBytes": "",
		"NumSamples": "",
		"Bank":       "",
	}
	for _, s := range bank.Samples() {
		ident := Identifier(s.Name)
		if prev, ok := seen[ident]; ok {
			if prev == "" {
				return fmt.Errorf("%w: %q -> reserved %s", ErrIdentifierClash, s.Name, ident)
			}
			return fmt.Errorf("%w: %q and %q -> %s", ErrIdentifierClash, prev, s.Name, ident)
		}
		seen[ident] = s.Name
		data.Samples = append(data.Samples, entry{
			Name:  s.Name,
			Const: ident,
			Var:   lowerFirst(ident) + "PCM",
			Len:   len(s.Data),
			Lines: wrapValues(s.Data),
		})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render samples: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format samples: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// WriteFile generates FileName inside dir, creating dir if needed.
// It returns the path of the written file.
func WriteFile(dir, pkg string, bank *sample.Bank) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Generate(&buf, bank, pkg); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Identifier converts a sample name into an exported Go identifier:
// "climb-warning" -> "ClimbWarning", "500ft" -> "Sample500ft".
func Identifier(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, p := range parts {
		runes := []rune(p)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	ident := b.String()
	if ident == "" || !unicode.IsLetter([]rune(ident)[0]) {
		ident = "Sample" + ident
	}
	return ident
}

func lowerFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func wrapValues(data []int16) []string {
	var lines []string
	for start := 0; start < len(data); start += valuesPerLine {
		end := min(start+valuesPerLine, len(data))
		var b strings.Builder
		for i, v := range data[start:end] {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(v)))
			b.WriteByte(',')
		}
		lines = append(lines, b.String())
	}
	return lines
}

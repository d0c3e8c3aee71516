package samplegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/audible-altimeter/internal/sample"
)

func testBank(t *testing.T) *sample.Bank {
	t.Helper()
	data := make([]int16, 20)
	for i := range data {
		data[i] = int16(i*100 - 1000)
	}
	b, err := sample.NewBank(sample.SampleRate,
		sample.Sample{Name: "one_thousand", Data: data},
		sample.Sample{Name: "pull-up", Data: []int16{-32768, 32767}},
	)
	require.NoError(t, err)
	return b
}

// constNames returns the constant names declared in src, in order.
func constNames(t *testing.T, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), FileName, src, parser.ParseComments)
	require.NoError(t, err)

	var names []string
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			for _, name := range spec.(*ast.ValueSpec).Names {
				names = append(names, name.Name)
			}
		}
	}
	return names
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, testBank(t), "sounds"))
	src := buf.Bytes()
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// Code generated by samplegen. DO NOT EDIT."))
	assert.Contains(t, out, "package sounds")
	assert.Contains(t, out, `"github.com/llehouerou/audible-altimeter/internal/sample"`)
	assert.Contains(t, out, "SampleRate = 11025")
	assert.Contains(t, out, "TotalBytes = 44")
	assert.Contains(t, out, "OneThousand sample.ID = iota")
	assert.Contains(t, out, "const NumSamples = 2")
	assert.Contains(t, out, `sample.Sample{Name: "pull-up", Data: pullUpPCM}`)
	assert.Contains(t, out, "-32768, 32767,")
	assert.Contains(t, out, "-1000, -900,")

	assert.Equal(t,
		[]string{"SampleRate", "TotalBytes", "OneThousand", "PullUp", "NumSamples"},
		constNames(t, src))
}

func TestGenerate_WrapsLongSamples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, testBank(t), "sounds"))

	// 20 values wrap onto two lines of at most valuesPerLine values.
	lines := strings.Split(buf.String(), "\n")
	var dataLines []string
	inside := false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "var oneThousandPCM"):
			inside = true
		case inside && line == "}":
			inside = false
		case inside:
			dataLines = append(dataLines, line)
		}
	}
	require.Len(t, dataLines, 2)
	assert.Equal(t, valuesPerLine, strings.Count(dataLines[0], ","))
	assert.Equal(t, 4, strings.Count(dataLines[1], ","))
}

func TestGenerate_EmptyBank(t *testing.T) {
	bank, err := sample.NewBank(sample.SampleRate)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, bank, "sounds"))
	assert.Contains(t, buf.String(), "const NumSamples = 0")
	assert.Equal(t, []string{"SampleRate", "TotalBytes", "NumSamples"}, constNames(t, buf.Bytes()))
}

func TestGenerate_InvalidPackage(t *testing.T) {
	var buf bytes.Buffer
	for _, pkg := range []string{"", "my-sounds", "func", "1sounds"} {
		assert.Error(t, Generate(&buf, testBank(t), pkg), "package %q", pkg)
	}
	assert.Zero(t, buf.Len())
}

func TestGenerate_IdentifierClash(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"separator variants", []string{"pull_up", "pull-up"}},
		{"reserved name", []string{"bank"}},
		{"reserved constant", []string{"num_samples"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, _ := sample.NewBank(sample.SampleRate)
			for _, n := range tt.names {
				_, err := bank.Add(n, []int16{1})
				require.NoError(t, err)
			}

			var buf bytes.Buffer
			err := Generate(&buf, bank, "sounds")
			assert.ErrorIs(t, err, ErrIdentifierClash)
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "internal", "sounds")

	path, err := WriteFile(dir, "sounds", testBank(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, constNames(t, src), "PullUp")
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"climb", "Climb"},
		{"climb_warning", "ClimbWarning"},
		{"climb-warning", "ClimbWarning"},
		{"one thousand feet", "OneThousandFeet"},
		{"500ft", "Sample500ft"},
		{"_", "Sample"},
		{"already_CamelCase", "AlreadyCamelCase"},
		{"été", "Été"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.in))
		})
	}
}

package codegen

import (
	"go/parser"
	"go/token"
	"math"
	"testing"

	"github.com/erraggy/rory/registry"
	"github.com/erraggy/rory/roryerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	reg := registry.New()
	_, err := reg.Define("origami_delivery_man/under_where/skippy")
	require.NoError(t, err)
	_, err = reg.Register("controllers/home", map[string]any{"action": "index", "retries": float64(3), "tags": []any{"a", true}})
	require.NoError(t, err)
	_, err = reg.Register("controllers", "root controller")
	require.NoError(t, err)

	src, err := Generate(reg, WithPackage("app"), WithSource("config/namespaces"))
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by rory generate; DO NOT EDIT.")
	assert.Contains(t, out, "// Source: config/namespaces")
	assert.Contains(t, out, "package app")
	assert.Contains(t, out, `registry.MustRegister("Controllers", "root controller")`)
	assert.Contains(t, out, `registry.MustRegister("Controllers::Home", map[string]any{"action": "index", "retries": float64(3), "tags": []any{"a", true}})`)
	assert.Contains(t, out, `registry.MustRegister("OrigamiDeliveryMan::UnderWhere::Skippy", nil)`)
	assert.NotContains(t, out, `"OrigamiDeliveryMan::UnderWhere"`, "intermediate namespaces are implied")

	_, err = parser.ParseFile(token.NewFileSet(), "registry_gen.go", src, parser.AllErrors)
	assert.NoError(t, err, "generated source must parse:\n%s", out)
}

func TestGenerate_Empty(t *testing.T) {
	src, err := Generate(registry.New(), WithPackage("app"))
	require.NoError(t, err)
	assert.NotContains(t, string(src), "MustRegister")
	assert.NotContains(t, string(src), "// Source:")
}

func TestGenerate_Options(t *testing.T) {
	t.Run("package required", func(t *testing.T) {
		_, err := Generate(registry.New())
		assert.ErrorIs(t, err, roryerrors.ErrConfig)
	})

	t.Run("invalid package", func(t *testing.T) {
		_, err := Generate(registry.New(), WithPackage("not-valid"))
		assert.ErrorIs(t, err, roryerrors.ErrConfig)
	})
}

func TestGenerate_UnrenderableValue(t *testing.T) {
	reg := registry.New()
	_, err := reg.Register("widget", struct{ X int }{1})
	require.NoError(t, err)

	_, err = Generate(reg, WithPackage("app"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Widget")
}

func TestGoLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "nil"},
		{"string", "say \"hi\"", `"say \"hi\""`},
		{"bool", false, "false"},
		{"int", 7, "7"},
		{"int64", int64(7), "int64(7)"},
		{"uint64", uint64(7), "uint64(7)"},
		{"float", 2.5, "float64(2.5)"},
		{"slice", []any{1, "a"}, `[]any{1, "a"}`},
		{"empty slice", []any{}, "[]any{}"},
		{"map sorted", map[string]any{"b": 1, "a": nil}, `map[string]any{"a": nil, "b": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := goLiteral(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := goLiteral(math.Inf(1))
	assert.Error(t, err)
}

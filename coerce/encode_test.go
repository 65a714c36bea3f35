package coerce

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/erraggy/rory/roryerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAsJSON_MatchesEncoderOfCoercedValue(t *testing.T) {
	inputs := map[string]any{
		"scalar":   "foo",
		"nil":      nil,
		"hashable": h(map[string]any{"april": "friday"}),
		"deep": []any{
			map[string]any{"perf": h("smurf"), "kerf": []any{h("plurf"), "yurf"}},
			h("nerf"),
		},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			coerced, err := TryToHash(input)
			require.NoError(t, err)
			want, err := json.Marshal(coerced)
			require.NoError(t, err)

			got, err := EncodeAsJSON(input)
			require.NoError(t, err)
			assert.Equal(t, string(want), got)
		})
	}
}

func TestEncodeAsJSON(t *testing.T) {
	got, err := EncodeAsJSON([]any{
		map[string]any{"perf": h("smurf"), "kerf": []any{h("plurf"), "yurf"}},
		h("nerf"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"perf":"smurf","kerf":["plurf","yurf"]},"nerf"]`, got)
}

func TestEncodeAsYAML(t *testing.T) {
	got, err := EncodeAsYAML(map[string]any{"perf": h("smurf"), "kerf": []any{"yurf"}})
	require.NoError(t, err)
	assert.YAMLEq(t, "perf: smurf\nkerf:\n  - yurf\n", got)
}

func TestEncode_Indent(t *testing.T) {
	got, err := Encode(map[string]any{"a": h(1)}, WithIndent(2))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
}

func TestEncode_Errors(t *testing.T) {
	t.Run("ToHash error is unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := EncodeAsJSON([]any{failing{err: boom}})
		//nolint:errorlint // the error must be returned without wrapping
		assert.True(t, err == boom)
	})

	t.Run("encoder error is wrapped", func(t *testing.T) {
		_, err := EncodeAsJSON(map[any]any{1: "one"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coerce: encoding json")
	})

	t.Run("yaml accepts non-string keys", func(t *testing.T) {
		got, err := EncodeAsYAML(map[any]any{1: h("one")})
		require.NoError(t, err)
		assert.YAMLEq(t, "1: one\n", got)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := Encode("x", WithFormat("xml"))
		assert.ErrorIs(t, err, roryerrors.ErrConfig)
	})

	t.Run("negative indent", func(t *testing.T) {
		_, err := Encode("x", WithIndent(-1))
		assert.ErrorIs(t, err, roryerrors.ErrConfig)
	})

	t.Run("depth limit", func(t *testing.T) {
		_, err := Encode([]any{[]any{}}, WithMaxDepth(1))
		assert.ErrorIs(t, err, roryerrors.ErrResourceLimit)
	})
}

package coerce

import (
	"errors"
	"testing"

	"github.com/erraggy/rory/roryerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stub is a Hashable that returns a fixed value and counts its calls.
type stub struct {
	value any
	calls *int
}

func h(value any) stub {
	return stub{value: value, calls: new(int)}
}

func (s stub) ToHash() (any, error) {
	*s.calls++
	return s.value, nil
}

type failing struct{ err error }

func (f failing) ToHash() (any, error) { return nil, f.err }

type opaque struct{ Name string }

func TestTryToHash_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"int", 42},
		{"string", "yurf"},
		{"bool", true},
		{"struct without capability", opaque{Name: "double"}},
		{"typed slice is not walked", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TryToHash(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestTryToHash_Hashable(t *testing.T) {
	got, err := TryToHash(h(map[string]any{"april": "friday"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"april": "friday"}, got)
}

func TestTryToHash_Slice(t *testing.T) {
	got, err := TryToHash([]any{h("smurf"), h("nerf")})
	require.NoError(t, err)
	assert.Equal(t, []any{"smurf", "nerf"}, got)
}

func TestTryToHash_Deep(t *testing.T) {
	input := []any{
		map[string]any{
			"perf": h("smurf"),
			"kerf": []any{h("plurf"), "yurf"},
			"erf":  map[string]any{"burf": h("wurf")},
		},
		h("nerf"),
	}

	got, err := TryToHash(input)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{
			"perf": "smurf",
			"kerf": []any{"plurf", "yurf"},
			"erf":  map[string]any{"burf": "wurf"},
		},
		"nerf",
	}, got)
}

func TestTryToHash_OneShot(t *testing.T) {
	inner := h("never")
	outer := h([]any{inner, map[string]any{"k": inner}})

	got, err := TryToHash([]any{outer})
	require.NoError(t, err)

	assert.Equal(t, []any{[]any{inner, map[string]any{"k": inner}}}, got,
		"the result of ToHash must not be coerced again")
	assert.Equal(t, 1, *outer.calls)
	assert.Equal(t, 0, *inner.calls)
}

func TestTryToHash_DoesNotMutateInput(t *testing.T) {
	elem := h("smurf")
	input := []any{elem, map[string]any{"k": elem}}

	_, err := TryToHash(input)
	require.NoError(t, err)

	assert.Equal(t, elem, input[0])
	assert.Equal(t, map[string]any{"k": elem}, input[1])
}

func TestTryToHash_KeysUntouched(t *testing.T) {
	key := h("transformed-key")
	input := map[any]any{key: h("value"), 7: "seven"}

	got, err := TryToHash(input)
	require.NoError(t, err)
	assert.Equal(t, map[any]any{key: "value", 7: "seven"}, got)
	assert.Equal(t, 0, *key.calls)
}

func TestTryToHash_EmptyContainers(t *testing.T) {
	got, err := TryToHash([]any{[]any{}, map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{}, map[string]any{}}, got)
}

func TestTryToHash_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	got, err := TryToHash([]any{"ok", map[string]any{"bad": failing{err: boom}}})
	assert.Nil(t, got)
	//nolint:errorlint // the error must be returned without wrapping
	assert.True(t, err == boom, "expected the ToHash error unchanged, got %v", err)
}

func TestHashFunc(t *testing.T) {
	got, err := TryToHash(HashFunc(func() (any, error) {
		return map[string]any{"id": 1}, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 1}, got)
}

func TestTryToHash_Cycle(t *testing.T) {
	cyclic := make([]any, 1)
	cyclic[0] = cyclic

	_, err := TryToHash(cyclic)
	require.Error(t, err)
	assert.ErrorIs(t, err, roryerrors.ErrResourceLimit)

	var limitErr *roryerrors.ResourceLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(DefaultMaxDepth), limitErr.Limit)
}

func TestTryToHashWithOptions(t *testing.T) {
	nested := []any{[]any{[]any{h("x")}}}

	t.Run("within limit", func(t *testing.T) {
		got, err := TryToHashWithOptions(nested, WithMaxDepth(3))
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{[]any{"x"}}}, got)
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := TryToHashWithOptions(nested, WithMaxDepth(2))
		assert.ErrorIs(t, err, roryerrors.ErrResourceLimit)
	})

	t.Run("zero means default", func(t *testing.T) {
		_, err := TryToHashWithOptions(nested, WithMaxDepth(0))
		assert.NoError(t, err)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := TryToHashWithOptions(nested, WithMaxDepth(-1))
		assert.ErrorIs(t, err, roryerrors.ErrConfig)
	})
}

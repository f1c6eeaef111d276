package value

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAMLKinds(t *testing.T) {
	tests := []struct {
		literal string
		kind    Kind
	}{
		{"42", NUMBER_VAL},
		{"-1.5", NUMBER_VAL},
		{".nan", NUMBER_VAL},
		{"-.inf", NUMBER_VAL},
		{"true", BOOLEAN_VAL},
		{"hello", STRING_VAL},
		{`"123"`, STRING_VAL},
		{"~", NULL_VAL},
		{"!null ~", NULL_VAL},
		{"!undefined ~", UNDEFINED_VAL},
		{"", UNDEFINED_VAL},
		{"[1, 2]", ARRAY_VAL},
		{"{a: 1}", OBJECT_VAL},
		{"!map {a: 1}", MAP_VAL},
		{"!set [1, 2]", SET_VAL},
		{"2024-01-02", DATE_VAL},
		{"!date 2024-01-02T10:00:00Z", DATE_VAL},
		{"!regexp /a+/gi", REGEXP_VAL},
		{"!bigint 0x10", BIG_INT_VAL},
		{"!symbol tag", SYMBOL_VAL},
		{"!function f", FUNCTION_VAL},
		{"!promise ~", PROMISE_VAL},
		{"!promise {state: fulfilled, value: 1}", PROMISE_VAL},
		{`!boxed "12"`, BOXED_STRING_VAL},
		{"!boxed 12", BOXED_NUMBER_VAL},
		{"!boxed false", BOXED_BOOLEAN_VAL},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			v, err := FromYAML([]byte(tt.literal))
			require.NoError(t, err)
			assert.Equal(t, Kind(tt.kind), v.Kind())
		})
	}
}

func TestFromYAMLScalars(t *testing.T) {
	v, err := FromYAML([]byte(".nan"))
	require.NoError(t, err)
	assert.True(t, v.(*Number).IsNaN())

	v, err = FromYAML([]byte(".inf"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.(*Number).Value, 1))

	v, err = FromYAML([]byte("!bigint 9007199254740993"))
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", v.(*BigInt).Value.String())

	v, err = FromYAML([]byte(`!boxed "true"`))
	require.NoError(t, err)
	assert.Equal(t, "true", v.(*BoxedString).Value)

	v, err = FromYAML([]byte("!date 2024-02-29"))
	require.NoError(t, err)
	assert.True(t, v.(*Date).Time.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
}

func TestFromYAMLContainers(t *testing.T) {
	v, err := FromYAML([]byte("[1, [a, ~], {k: !undefined ~}]"))
	require.NoError(t, err)
	arr := v.(*Array)
	require.Equal(t, 3, arr.Len())
	assert.Equal(t, `[1, ["a", null], { k: undefined }]`, arr.Inspect())

	v, err = FromYAML([]byte("!map {1: one, two: 2}"))
	require.NoError(t, err)
	m := v.(*Map)
	got, ok := m.Get(NewNumber(1))
	require.True(t, ok)
	assert.Equal(t, "one", got.(*String).Value)
	_, ok = m.Get(NewString("1"))
	assert.False(t, ok, "map keys are not coerced")

	v, err = FromYAML([]byte("!set [1, 1, .nan, .nan, a]"))
	require.NoError(t, err)
	assert.Equal(t, 3, v.(*Set).Len())

	v, err = FromYAML([]byte("!promise {state: rejected, value: boom}"))
	require.NoError(t, err)
	p := v.(*Promise)
	assert.Equal(t, PromiseRejected, p.State)
	assert.Equal(t, `Promise { <rejected> "boom" }`, p.Inspect())
}

func TestFromYAMLAlias(t *testing.T) {
	v, err := FromYAML([]byte("[&x {a: 1}, *x]"))
	require.NoError(t, err)
	arr := v.(*Array)
	assert.Equal(t, OBJECT_VAL, string(arr.Elements[1].Kind()))
}

func TestFromYAMLErrors(t *testing.T) {
	_, err := FromYAML([]byte("!bogus 1"))
	assert.ErrorIs(t, err, ErrUnknownTag)

	_, err = FromYAML([]byte("!bogus [1]"))
	assert.ErrorIs(t, err, ErrUnknownTag)

	_, err = FromYAML([]byte("!bogus {a: 1}"))
	assert.ErrorIs(t, err, ErrUnknownTag)

	for _, literal := range []string{
		"!regexp /a/q",
		"!regexp abc",
		"!bigint 1.5",
		"!date yesterday",
		"!boxed ~",
		"!promise {state: lost}",
		"{[1]: 2}",
		"[1, 2",
	} {
		_, err := FromYAML([]byte(literal))
		assert.Error(t, err, literal)
	}
}

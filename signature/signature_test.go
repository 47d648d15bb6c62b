package signature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		sig  string
		want Element
	}{
		{"y", Element{Length: 1, Fixed: true, Alignment: 1}},
		{"b", Element{Length: 1, Fixed: true, Alignment: 1}},
		{"n", Element{Length: 1, Fixed: true, Alignment: 2}},
		{"q", Element{Length: 1, Fixed: true, Alignment: 2}},
		{"i", Element{Length: 1, Fixed: true, Alignment: 4}},
		{"u", Element{Length: 1, Fixed: true, Alignment: 4}},
		{"h", Element{Length: 1, Fixed: true, Alignment: 4}},
		{"x", Element{Length: 1, Fixed: true, Alignment: 8}},
		{"t", Element{Length: 1, Fixed: true, Alignment: 8}},
		{"d", Element{Length: 1, Fixed: true, Alignment: 8}},
		{"s", Element{Length: 1, Fixed: false, Alignment: 1}},
		{"o", Element{Length: 1, Fixed: false, Alignment: 1}},
		{"g", Element{Length: 1, Fixed: false, Alignment: 1}},
		{"v", Element{Length: 1, Fixed: false, Alignment: 8}},
		{"uy", Element{Length: 1, Fixed: true, Alignment: 4}},
		{"ay", Element{Length: 2, Fixed: false, Alignment: 1}},
		{"at", Element{Length: 2, Fixed: false, Alignment: 8}},
		{"aas", Element{Length: 3, Fixed: false, Alignment: 1}},
		{"()", Element{Length: 2, Fixed: true, Alignment: 1}},
		{"(yq)", Element{Length: 4, Fixed: true, Alignment: 2}},
		{"(ys)", Element{Length: 4, Fixed: false, Alignment: 1}},
		{"(y(ix))", Element{Length: 7, Fixed: true, Alignment: 8}},
		{"a{sv}", Element{Length: 5, Fixed: false, Alignment: 8}},
		{"a{yu}", Element{Length: 5, Fixed: false, Alignment: 4}},
		{"(a{yu}q)i", Element{Length: 8, Fixed: false, Alignment: 4}},
		{"{yu}", Element{Length: 4, Fixed: true, Alignment: 4}},
		{"{sv}", Element{Length: 4, Fixed: false, Alignment: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			got, err := Classify(tt.sig)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name   string
		sig    string
		offset int
	}{
		{"Empty", "", 0},
		{"UnknownCode", "z", 0},
		{"StrayStructEnd", ")", 0},
		{"ArrayWithoutElement", "a", 1},
		{"UnterminatedStruct", "(yu", 3},
		{"ArrayInsideStructMissingElement", "(a)", 2},
		{"DictEntryInsideStruct", "({sv})", 1},
		{"DictEntryAfterDictEntryKey", "a{s{sv}}", 3},
		{"DictEntryVariantKey", "a{vs}", 2},
		{"DictEntryContainerKey", "a{(y)s}", 2},
		{"DictEntryNoValue", "a{s}", 1},
		{"DictEntryTwoValues", "a{syy}", 1},
		{"UnterminatedDictEntry", "a{sy", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.sig)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)

			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.offset, se.Offset)
			assert.Equal(t, tt.sig, se.Signature)
		})
	}
}

func TestNestingLimits(t *testing.T) {
	t.Run("ArrayDepth", func(t *testing.T) {
		ok := strings.Repeat("a", MaxDepth) + "y"
		_, err := Classify(ok)
		assert.NoError(t, err)

		_, err = Classify("a" + ok)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("StructDepth", func(t *testing.T) {
		ok := strings.Repeat("(", MaxDepth) + "y" + strings.Repeat(")", MaxDepth)
		_, err := Classify(ok)
		assert.NoError(t, err)

		_, err = Classify("(" + ok + ")")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("a{sv}(yu)s"))
	assert.ErrorIs(t, Validate("yuz"), ErrInvalid)
	assert.ErrorIs(t, Validate("{sv}"), ErrInvalid)
	assert.ErrorIs(t, Validate(strings.Repeat("y", MaxLength+1)), ErrInvalid)
	assert.NoError(t, Validate(strings.Repeat("y", MaxLength)))

	var se *SyntaxError
	require.ErrorAs(t, Validate("yu(s"), &se)
	assert.Equal(t, 4, se.Offset)
}

func TestIsSingle(t *testing.T) {
	assert.True(t, IsSingle("a{sv}"))
	assert.True(t, IsSingle("()"))
	assert.False(t, IsSingle(""))
	assert.False(t, IsSingle("yy"))
	assert.False(t, IsSingle("(y"))
}

func TestSplit(t *testing.T) {
	parts, err := Split("ya{sv}(ii)s")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "a{sv}", "(ii)", "s"}, parts)

	parts, err = Split("")
	require.NoError(t, err)
	assert.Empty(t, parts)

	_, err = Split("yy(")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "yy(", se.Signature)
	assert.Equal(t, 3, se.Offset)
}

func TestBasicPredicates(t *testing.T) {
	for _, c := range []byte("ybnqiuxtdhsog") {
		assert.True(t, IsBasic(c), string(c))
	}
	for _, c := range []byte("va(){}z") {
		assert.False(t, IsBasic(c), string(c))
	}
	assert.True(t, IsFixedBasic(TypeUnixFD))
	assert.False(t, IsFixedBasic(TypeString))
	assert.False(t, IsFixedBasic(TypeVariant))
}

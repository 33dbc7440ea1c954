package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttributeName(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		want string
	}{
		{name: "plain", attr: Attribute{Type: "int", Index: 0}, want: "attr0"},
		{name: "getter", attr: Attribute{Type: "int", Getter: true, Index: 4}, want: "attr4_g"},
		{name: "setter", attr: Attribute{Type: "int", Setter: true, Index: 11}, want: "attr11_s"},
		{name: "both", attr: Attribute{Type: "string", Getter: true, Setter: true, Index: 2}, want: "attr2_g_s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.attr.Name())
			require.Equal(t, "get_"+tt.want, tt.attr.GetterName())
			require.Equal(t, "set_"+tt.want, tt.attr.SetterName())
			require.Equal(t, "new"+tt.want, tt.attr.ParamName())
		})
	}
}

func TestInheritanceFromSymbol(t *testing.T) {
	for sym, want := range map[rune]Inheritance{
		'+': InheritancePublic,
		'=': InheritanceProtected,
		'-': InheritancePrivate,
	} {
		got, ok := InheritanceFromSymbol(sym)
		require.True(t, ok, "symbol %q", sym)
		require.Equal(t, want, got)
	}
	_, ok := InheritanceFromSymbol('*')
	require.False(t, ok)

	require.Equal(t, "public", InheritancePublic.Keyword())
	require.Equal(t, "protected", InheritanceProtected.String())
	require.Equal(t, "private", InheritancePrivate.String())
	require.Equal(t, "Inheritance(7)", Inheritance(7).String())
}

func TestClassQueries(t *testing.T) {
	spec := "Foo"
	c := &Class{Name: "Box", Template: true, Specialisation: &spec}
	require.True(t, c.IsSpecialisation())
	require.False(t, c.HasSource())
	require.False(t, c.RequiresStdInclude())
	require.Equal(t, "Box.hpp", c.HeaderFile())
	require.Equal(t, "Box.cpp", c.SourceFile())

	c = &Class{Name: "Animal", Attributes: []Attribute{{Type: "int"}, {Type: "std::vector", Index: 1}}}
	require.False(t, c.IsSpecialisation())
	require.True(t, c.HasSource())
	require.True(t, c.RequiresStdInclude())
}

package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/exprdocs/internal/metadata"
	"github.com/zclconf/go-cty/cty"
)

func TestSignatureEqual_IgnoresParamNames(t *testing.T) {
	a := metadata.Signature{
		Params: []metadata.Param{{Name: "x", Type: cty.String}},
		Return: cty.Bool,
	}
	b := metadata.Signature{
		Params: []metadata.Param{{Name: "y", Type: cty.String}},
		Return: cty.Bool,
	}

	require.True(t, a.Equal(b))
}

func TestSignatureEqual_Distinguishes(t *testing.T) {
	base := metadata.Signature{
		Params: []metadata.Param{{Type: cty.String}},
		Return: cty.Bool,
	}

	cases := []struct {
		name  string
		other metadata.Signature
	}{
		{"different arity", metadata.Signature{Return: cty.Bool}},
		{"different param type", metadata.Signature{
			Params: []metadata.Param{{Type: cty.Number}},
			Return: cty.Bool,
		}},
		{"different return", metadata.Signature{
			Params: []metadata.Param{{Type: cty.String}},
			Return: cty.String,
		}},
		{"missing return", metadata.Signature{
			Params: []metadata.Param{{Type: cty.String}},
		}},
		{"variadic", metadata.Signature{
			Params:   []metadata.Param{{Type: cty.String}},
			Return:   cty.Bool,
			Variadic: true,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, base.Equal(tc.other))
		})
	}
}

func TestRegistryError_Message(t *testing.T) {
	err := &metadata.RegistryError{Module: "std.math", Reason: "function registered without a name"}
	require.Contains(t, err.Error(), `"std.math"`)
	require.Contains(t, err.Error(), "without a name")

	bare := &metadata.RegistryError{Reason: "no modules"}
	require.Equal(t, "registry introspection failed: no modules", bare.Error())
}

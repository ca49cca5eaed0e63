package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestRegisterReportsFailure(t *testing.T) {
	err := register(validator.New(), map[string]validator.Func{
		"": func(validator.FieldLevel) bool { return true },
	})
	require.ErrorContains(t, err, `register "" validation`)
}

func TestCustomValidationsRegister(t *testing.T) {
	v, err := newValidate()
	require.NoError(t, err)
	require.NoError(t, v.Var("graph", "goident"))
	require.Error(t, v.Var("_", "goident"))
	require.NoError(t, v.Var("User.name", "fieldref"))
	require.Error(t, v.Var("name", "fieldref"))
}

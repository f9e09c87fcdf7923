package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func mustRule(t *testing.T, decl validator.Declaration) *validator.Rule {
	t.Helper()
	r, err := validator.NewRule("field", decl)
	require.NoError(t, err)
	return r
}

func evaluate(t *testing.T, decl validator.Declaration, value any) validator.Outcome {
	t.Helper()
	return validator.New().Evaluate(mustRule(t, decl), value, nil)
}

func requirePass(t *testing.T, out validator.Outcome, want any) {
	t.Helper()
	require.Nil(t, out.Err, "unexpected error: %v", out.Err)
	assert.Equal(t, want, out.Value)
}

func requireCode(t *testing.T, out validator.Outcome, kind validator.ErrorKind) {
	t.Helper()
	require.NotNil(t, out.Err, "expected %s error", kind)
	assert.Equal(t, kind, out.Err.Code)
}

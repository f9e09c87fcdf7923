package validator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestEvaluate_Apply(t *testing.T) {
	t.Run("string transform", func(t *testing.T) {
		decl := validator.Declaration{"type": "string", "apply": strings.TrimSpace, "maxlen": 3}
		requirePass(t, evaluate(t, decl, "  abc  "), "abc")
	})

	t.Run("transform may change the kind", func(t *testing.T) {
		decl := validator.Declaration{"type": "array", "apply": func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v
			}
			parts := []any{}
			for _, p := range strings.Split(s, ",") {
				parts = append(parts, p)
			}
			return parts
		}}
		requirePass(t, evaluate(t, decl, "a,b"), []any{"a", "b"})
	})

	t.Run("named transforms", func(t *testing.T) {
		decl := validator.Declaration{"type": "string", "apply": "trim|collapse|lower"}
		requirePass(t, evaluate(t, decl, "  Hello   WORLD "), "hello world")
	})

	t.Run("list of transforms", func(t *testing.T) {
		decl := validator.Declaration{"type": "string", "apply": []any{"trim", func(s string) string { return s + "!" }}}
		requirePass(t, evaluate(t, decl, " hi "), "hi!")
	})

	t.Run("string transform skips other kinds", func(t *testing.T) {
		requirePass(t, evaluate(t, validator.Declaration{"type": "int", "apply": "trim"}, 5), 5)
	})

	t.Run("unknown transform name", func(t *testing.T) {
		_, err := validator.NewRule("field", validator.Declaration{"type": "string", "apply": "shout"})
		requireConfigError(t, err, validator.OptApply)
	})

	t.Run("transform runs before blank check", func(t *testing.T) {
		decl := validator.Declaration{"type": "string", "apply": strings.TrimSpace, "required": true}
		requireCode(t, evaluate(t, decl, "   "), validator.KindRequired)
	})
}

func TestEvaluate_Drop(t *testing.T) {
	tests := []struct {
		name    string
		drop    any
		value   any
		dropped bool
	}{
		{"always", true, "x", true},
		{"never", false, "", false},
		{"truthy string", "yes", "x", true},
		{"empty drops empty string", "empty", "", true},
		{"empty drops zero", "empty", 0, true},
		{"empty drops zero string", "empty", "0", true},
		{"empty drops false", "empty", false, true},
		{"empty drops empty list", "empty", []any{}, true},
		{"empty keeps value", "empty", "x", false},
		{"empty string policy", "", "", true},
		{"empty string policy keeps nil", "", nil, false},
		{"null policy", "null", nil, true},
		{"null policy keeps empty string", "null", "", false},
		{"predicate", func(v any) bool { return v == "skip" }, "skip", true},
		{"predicate keeps others", func(v any) bool { return v == "skip" }, "keep", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluate(t, validator.Declaration{"type": "any", "drop": tt.drop}, tt.value)
			assert.Equal(t, tt.dropped, out.Dropped)
			assert.Nil(t, out.Err)
		})
	}

	t.Run("positional drop flag", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "int", 0: "drop"}, "abc")
		assert.True(t, out.Dropped)
	})

	t.Run("drop suppresses required error", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "email", "drop": "empty", "required": true}, "")
		assert.True(t, out.Dropped)
		assert.Nil(t, out.Err)
		assert.True(t, out.Passed())
	})

	t.Run("drop suppresses type error", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "int", "drop": "empty"}, "0")
		assert.True(t, out.Dropped)
		assert.Nil(t, out.Err)
	})
}

func TestEvaluate_Blank(t *testing.T) {
	t.Run("optional blank is accepted as nil", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "email", "required": false}, "")
		requirePass(t, out, nil)

		accepted, ok := out.Returned()
		assert.True(t, ok)
		assert.True(t, accepted)
	})

	t.Run("optional nil is accepted", func(t *testing.T) {
		requirePass(t, evaluate(t, validator.Declaration{"type": "int"}, nil), nil)
	})

	t.Run("required blank fails", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "email", "required": true, "label": "Email"}, "")
		requireCode(t, out, validator.KindRequired)
		assert.Equal(t, "Email is required", out.Err.Message)

		accepted, ok := out.Returned()
		assert.True(t, ok)
		assert.False(t, accepted)
	})

	t.Run("type check does not set returned", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "int"}, "5")
		_, ok := out.Returned()
		assert.False(t, ok)
	})

	t.Run("default replaces blank", func(t *testing.T) {
		requirePass(t, evaluate(t, validator.Declaration{"type": "int", "default": "10"}, ""), 10)
		requirePass(t, evaluate(t, validator.Declaration{"type": "int", "default": 10, "required": true}, nil), 10)
	})

	t.Run("default is still validated", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "int", "default": "ten"}, "")
		requireCode(t, out, validator.KindType)
	})

	t.Run("nullable turns empty string into nil", func(t *testing.T) {
		out := evaluate(t, validator.Declaration{"type": "string", "nullable": true}, "")
		requirePass(t, out, nil)
	})

	t.Run("zero is not blank", func(t *testing.T) {
		requirePass(t, evaluate(t, validator.Declaration{"type": "int", "required": true}, 0), 0)
		requirePass(t, evaluate(t, validator.Declaration{"type": "bool", "required": true}, false), false)
	})
}

func TestEvaluate_Messages(t *testing.T) {
	v := validator.New(validator.WithMessages(validator.Messages{
		validator.MsgRequired: "{label} cannot be empty",
	}))
	r := mustRule(t, validator.Declaration{"type": "string", "required": true, "label": "Name"})

	out := v.Evaluate(r, "", nil)
	require.NotNil(t, out.Err)
	assert.Equal(t, "Name cannot be empty", out.Err.Message)
	assert.Equal(t, validator.MsgRequired, out.Err.TranslationKey)
	assert.Equal(t, "Name", out.Err.TranslationValues["label"])
	assert.Equal(t, "field", out.Err.TranslationValues["field"])
	assert.Equal(t, "field", out.Err.Field)

	t.Run("defaults are not affected", func(t *testing.T) {
		assert.Equal(t, "{label} is required", validator.DefaultMessages()[validator.MsgRequired])
	})
}

func TestEvaluate_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
	v := validator.New(validator.WithLogger(log))

	v.Evaluate(mustRule(t, validator.Declaration{"type": "int"}), "abc", nil)
	out := buf.String()
	assert.Contains(t, out, "field failed validation")
	assert.Contains(t, out, "field=field")
	assert.Contains(t, out, "code=TYPE")
	assert.Contains(t, out, "rule_type=int")
	assert.Contains(t, out, "component=validator")
}

func TestField(t *testing.T) {
	v := validator.New()

	t.Run("writes sanitized value back", func(t *testing.T) {
		data := map[string]any{"age": "42"}
		out := v.Field(validator.MustRule("age", validator.Declaration{"type": "int"}), data)
		assert.True(t, out.Passed())
		assert.Equal(t, 42, data["age"])
	})

	t.Run("removes dropped field", func(t *testing.T) {
		data := map[string]any{"note": ""}
		v.Field(validator.MustRule("note", validator.Declaration{"type": "string", "drop": "empty"}), data)
		assert.NotContains(t, data, "note")
	})

	t.Run("keeps failed value", func(t *testing.T) {
		data := map[string]any{"age": "old"}
		out := v.Field(validator.MustRule("age", validator.Declaration{"type": "int"}), data)
		assert.False(t, out.Passed())
		assert.Equal(t, "old", data["age"])
	})

	t.Run("follows dotted paths", func(t *testing.T) {
		data := map[string]any{"user": map[string]any{"age": "7"}}
		v.Field(validator.MustRule("user.age", validator.Declaration{"type": "int"}), data)
		assert.Equal(t, 7, data["user"].(map[string]any)["age"])
	})

	t.Run("exact key wins over path", func(t *testing.T) {
		data := map[string]any{"user.age": "1", "user": map[string]any{"age": "2"}}
		v.Field(validator.MustRule("user.age", validator.Declaration{"type": "int"}), data)
		assert.Equal(t, 1, data["user.age"])
		assert.Equal(t, "2", data["user"].(map[string]any)["age"])
	})

	t.Run("writes nil for missing optional field", func(t *testing.T) {
		data := map[string]any{}
		v.Field(validator.MustRule("nick", validator.Declaration{"type": "string"}), data)
		require.Contains(t, data, "nick")
		assert.Nil(t, data["nick"])
	})

	t.Run("writes default for missing nested field", func(t *testing.T) {
		data := map[string]any{}
		v.Field(validator.MustRule("prefs.lang", validator.Declaration{"type": "string", "default": "en"}), data)
		assert.Equal(t, map[string]any{"prefs": map[string]any{"lang": "en"}}, data)
	})

	t.Run("indexes into lists", func(t *testing.T) {
		data := map[string]any{"tags": []any{"a", " b "}}
		v.Field(validator.MustRule("tags.1", validator.Declaration{"type": "string", "apply": strings.TrimSpace}), data)
		assert.Equal(t, []any{"a", "b"}, data["tags"])
	})
}

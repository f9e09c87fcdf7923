package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestDateTime_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		decl  validator.Declaration
		value string
		valid bool
	}{
		{"valid date", validator.Declaration{"type": "date"}, "2023-02-28", true},
		{"overflowing day", validator.Declaration{"type": "date"}, "2023-02-30", false},
		{"leap day", validator.Declaration{"type": "date"}, "2024-02-29", true},
		{"leap day in common year", validator.Declaration{"type": "date"}, "2023-02-29", false},
		{"unpadded month", validator.Declaration{"type": "date"}, "2023-2-28", false},
		{"wrong separator", validator.Declaration{"type": "date"}, "2023/02/28", false},
		{"trailing text", validator.Declaration{"type": "date"}, "2023-02-28x", false},
		{"valid time", validator.Declaration{"type": "time"}, "13:45:00", true},
		{"hour out of range", validator.Declaration{"type": "time"}, "25:00:00", false},
		{"valid datetime", validator.Declaration{"type": "datetime"}, "2023-01-02 03:04:05", true},
		{"datetime missing seconds", validator.Declaration{"type": "datetime"}, "2023-01-02 03:04", false},
		{"custom format", validator.Declaration{"type": "date", "spec": "d/m/Y"}, "31/12/2023", true},
		{"custom format invalid day", validator.Declaration{"type": "date", "spec": "d/m/Y"}, "31/11/2023", false},
		{"unpadded tokens", validator.Declaration{"type": "date", "spec": "j.n.Y"}, "5.1.2024", true},
		{"unpadded tokens reject padding", validator.Declaration{"type": "date", "spec": "j.n.Y"}, "05.01.2024", false},
		{"textual month", validator.Declaration{"type": "date", "spec": "d M Y"}, "01 Mar 2024", true},
		{"fractional seconds", validator.Declaration{"type": "time", "spec": "H:i:s.v"}, "10:20:30.123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluate(t, tt.decl, tt.value)
			if tt.valid {
				requirePass(t, out, tt.value)
				return
			}
			requireCode(t, out, validator.KindNotValid)
			assert.Equal(t, tt.value, out.Value)
		})
	}
}

func TestDateTime_Message(t *testing.T) {
	out := evaluate(t, validator.Declaration{"type": "date", "label": "Birthday"}, "2023-02-30")
	requireCode(t, out, validator.KindNotValid)
	assert.Equal(t, "Birthday must be a valid date in format Y-m-d", out.Err.Message)
	assert.Equal(t, validator.MsgDate, out.Err.TranslationKey)
}

func TestDateTime_Kinds(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	requirePass(t, evaluate(t, validator.Declaration{"type": "datetime"}, now), now)
	requirePass(t, evaluate(t, validator.Declaration{"type": "date"}, &now), &now)
	requireCode(t, evaluate(t, validator.Declaration{"type": "date"}, 20240501), validator.KindType)
}

func TestDateTime_Regexp(t *testing.T) {
	decl := validator.Declaration{"type": "date", "spec": `~^\d{4}$~`}
	requirePass(t, evaluate(t, decl, "2023"), "2023")
	requireCode(t, evaluate(t, decl, "23"), validator.KindNotValid)
}

func TestTimestamp(t *testing.T) {
	clock := func() time.Time { return time.Unix(1_700_000_000, 0) }
	v := validator.New(validator.WithClock(clock))
	check := func(t *testing.T, decl validator.Declaration, value any) validator.Outcome {
		t.Helper()
		return v.Evaluate(mustRule(t, decl), value, nil)
	}

	decl := validator.Declaration{"type": "unixtime"}

	t.Run("current era values pass and become int", func(t *testing.T) {
		requirePass(t, check(t, decl, 1_700_000_001), 1_700_000_001)
		requirePass(t, check(t, decl, "1699999999"), 1_699_999_999)
		requirePass(t, check(t, decl, float64(1_700_000_000)), 1_700_000_000)
		requirePass(t, check(t, validator.Declaration{"type": "epoch"}, int64(1_000_000_000)), 1_000_000_000)
	})

	t.Run("digit length must match now", func(t *testing.T) {
		requireCode(t, check(t, decl, 123), validator.KindNotValid)
		requireCode(t, check(t, decl, "17000000000"), validator.KindNotValid)
		requireCode(t, check(t, decl, -1_700_000_000), validator.KindNotValid)
		requireCode(t, check(t, decl, 1_700_000_000.5), validator.KindNotValid)
	})

	t.Run("non numeric kinds", func(t *testing.T) {
		requireCode(t, check(t, decl, "soon"), validator.KindType)
		requireCode(t, check(t, decl, true), validator.KindType)
	})

	t.Run("accept list bypasses the check", func(t *testing.T) {
		accept := validator.Declaration{"type": "unixtime", "accept": []any{0, -1}}
		requirePass(t, check(t, accept, 0), 0)
		requirePass(t, check(t, accept, "-1"), -1)
		requirePass(t, check(t, accept, float64(0)), 0)
	})

	t.Run("strict accept compares kind", func(t *testing.T) {
		accept := validator.Declaration{"type": "unixtime", "accept": 0, "strict": true}
		requirePass(t, check(t, accept, 0), 0)
		requireCode(t, check(t, accept, float64(0)), validator.KindNotValid)
		requireCode(t, check(t, accept, "0"), validator.KindNotValid)
	})

	t.Run("uses the clock", func(t *testing.T) {
		past := validator.New(validator.WithClock(func() time.Time { return time.Unix(999_999_999, 0) }))
		out := past.Evaluate(mustRule(t, decl), 1_700_000_000, nil)
		require.NotNil(t, out.Err)
		assert.Equal(t, validator.KindNotValid, out.Err.Code)
	})
}

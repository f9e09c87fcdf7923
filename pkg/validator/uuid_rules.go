package validator

import (
	"regexp"

	"github.com/google/uuid"
)

// uuidPatterns is indexed by [dashed mode][cased]. Dashed mode 0 accepts
// either form, 1 dashed only, 2 undashed only.
var uuidPatterns = [3][2]*regexp.Regexp{
	{
		regexp.MustCompile(`(?i)^([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}|[0-9a-f]{32})$`),
		regexp.MustCompile(`^([0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}|[0-9A-F]{32})$`),
	},
	{
		regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`),
		regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`),
	},
	{
		regexp.MustCompile(`(?i)^[0-9a-f]{32}$`),
		regexp.MustCompile(`^[0-9A-F]{32}$`),
	},
}

type uuidValidator struct{}

func (uuidValidator) Name() string { return "uuid" }

func (uuidValidator) validate(s *scope, value any) (any, *ValidationError) {
	str, ok := value.(string)
	if !ok {
		return value, s.typeError("uuid")
	}

	r := s.rule
	if r.specType == SpecRegexp && r.pattern != nil {
		if !r.pattern.MatchString(str) {
			return value, s.notValid()
		}
		return str, nil
	}

	opts := r.uuid
	if !opts.AllowNil && isNilUUID(str) {
		return value, s.notValid()
	}

	mode := 0
	if opts.Dashed != nil {
		if *opts.Dashed {
			mode = 1
		} else {
			mode = 2
		}
	}
	cased := 0
	if opts.Cased {
		cased = 1
	}

	if !uuidPatterns[mode][cased].MatchString(str) {
		return value, s.notValid()
	}
	return str, nil
}

// isNilUUID reports whether s is the all-zero UUID in dashed or undashed form.
func isNilUUID(s string) bool {
	if len(s) != 32 && len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	return err == nil && id == uuid.Nil
}

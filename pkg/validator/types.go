package validator

import (
	"fmt"
	"strings"
)

// Type is the declared type of a field. The set is closed: every Type has a
// validator bound by the dispatcher.
type Type uint8

const (
	typeInvalid Type = iota
	TypeInt
	TypeFloat
	TypeNumber
	TypeNumeric
	TypeString
	TypeBool
	TypeEnum
	TypeEmail
	TypeDate
	TypeTime
	TypeDateTime
	TypeUnixtime
	TypeURL
	TypeUUID
	TypeJSON
	TypeArray
	TypeAny
)

var typeNames = [...]string{
	typeInvalid:  "invalid",
	TypeInt:      "int",
	TypeFloat:    "float",
	TypeNumber:   "number",
	TypeNumeric:  "numeric",
	TypeString:   "string",
	TypeBool:     "bool",
	TypeEnum:     "enum",
	TypeEmail:    "email",
	TypeDate:     "date",
	TypeTime:     "time",
	TypeDateTime: "datetime",
	TypeUnixtime: "unixtime",
	TypeURL:      "url",
	TypeUUID:     "uuid",
	TypeJSON:     "json",
	TypeArray:    "array",
	TypeAny:      "any",
}

var typeAliases = map[string]Type{
	"integer": TypeInt,
	"double":  TypeFloat,
	"boolean": TypeBool,
	"epoch":   TypeUnixtime,
}

// Types returns every supported type in declaration order.
func Types() []Type {
	out := make([]Type, 0, len(typeNames)-1)
	for t := TypeInt; t <= TypeAny; t++ {
		out = append(out, t)
	}
	return out
}

// ParseType resolves a type name or alias, ignoring case and surrounding space.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	for t := TypeInt; t <= TypeAny; t++ {
		if typeNames[t] == name {
			return t, nil
		}
	}
	return typeInvalid, fmt.Errorf("unknown type %q", name)
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	return t >= TypeInt && t <= TypeAny
}

// IsNumeric reports whether t is validated by the number validator.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeInt, TypeFloat, TypeNumber, TypeNumeric:
		return true
	}
	return false
}

// IsTemporal reports whether t is a date, time or datetime.
func (t Type) IsTemporal() bool {
	return t == TypeDate || t == TypeTime || t == TypeDateTime
}

// SpecType classifies the shape of a rule's spec.
type SpecType uint8

const (
	SpecNone SpecType = iota
	SpecRegexp
	SpecArray
	SpecCallback
	SpecString
	SpecObject
)

var specTypeNames = [...]string{
	SpecNone:     "none",
	SpecRegexp:   "regexp",
	SpecArray:    "array",
	SpecCallback: "callback",
	SpecString:   "string",
	SpecObject:   "object",
}

func (s SpecType) String() string {
	if int(s) < len(specTypeNames) {
		return specTypeNames[s]
	}
	return fmt.Sprintf("SpecType(%d)", s)
}

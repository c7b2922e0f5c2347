package model

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Gender is the recipient gender sent to the suggestion service.
type Gender string

const (
	GenderMan   Gender = "man"
	GenderWoman Gender = "woman"
)

// Genders lists the accepted gender values in display order.
var Genders = []Gender{GenderMan, GenderWoman}

// ParseGender normalizes s to a known Gender.
// Returns false for anything other than "man" or "woman".
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Genders, g) {
		return "", false
	}
	return g, true
}

// Field identifies an editable form field.
type Field string

const (
	FieldGender   Field = "gender"
	FieldAge      Field = "age"
	FieldPriceMin Field = "priceMin"
	FieldPriceMax Field = "priceMax"
	FieldHobbies  Field = "hobbies"
)

// Fields lists all editable fields in form order.
var Fields = []Field{FieldGender, FieldAge, FieldPriceMin, FieldPriceMax, FieldHobbies}

// IsNumeric reports whether the field holds a coerced integer.
func (f Field) IsNumeric() bool {
	return f == FieldAge || f == FieldPriceMin || f == FieldPriceMax
}

// FormInput holds the gift-search criteria entered by the user.
// Field order matches the wire payload of the suggestion service.
type FormInput struct {
	PriceMin int    `json:"priceMin"`
	PriceMax int    `json:"priceMax"`
	Gender   Gender `json:"gender"`
	Age      int    `json:"age"`
	Hobbies  string `json:"hobbies"`
}

// With returns a copy of f with field set from raw user text.
// Numeric fields go through ParseCount; an unknown gender keeps the old value.
func (f FormInput) With(field Field, raw string) FormInput {
	switch field {
	case FieldGender:
		if g, ok := ParseGender(raw); ok {
			f.Gender = g
		}
	case FieldAge:
		f.Age = ParseCount(raw)
	case FieldPriceMin:
		f.PriceMin = ParseCount(raw)
	case FieldPriceMax:
		f.PriceMax = ParseCount(raw)
	case FieldHobbies:
		f.Hobbies = raw
	}
	return f
}

// ParseCount coerces user text to a non-negative integer.
// It parses the leading integer prefix ("12x" -> 12) after optional whitespace
// and sign. Text without leading digits, negative numbers and values that
// overflow int all yield 0.
func ParseCount(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

package campaign

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidKind  = errors.New("invalid campaign kind")
	ErrInvalidScope = errors.New("invalid campaign scope")
	ErrInvalidCode  = errors.New("invalid campaign code format")
)

// Kind is the discount variant tag. Value is meaningless for KindFreeShipping.
type Kind string

const (
	KindPercentage   Kind = "percentage"
	KindFixed        Kind = "fixed"
	KindFreeShipping Kind = "free_shipping"
)

func NewKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixed, KindFreeShipping:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// Scope selects which eligibility predicate applies and which line items a
// discount can touch.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeCategory Scope = "category"
	ScopeProduct  Scope = "product"
	ScopeCart     Scope = "cart"
)

func NewScope(s string) (Scope, error) {
	sc := Scope(strings.ToLower(strings.TrimSpace(s)))
	if !sc.IsValid() {
		return "", ErrInvalidScope
	}
	return sc, nil
}

func (s Scope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeCategory, ScopeProduct, ScopeCart:
		return true
	default:
		return false
	}
}

func (s Scope) String() string {
	return string(s)
}

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a coupon code. Matching is case-insensitive, so codes are
// normalized to upper case on construction.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Matches reports whether the raw user input refers to this code.
func (c Code) Matches(input string) bool {
	return string(c) == strings.ToUpper(strings.TrimSpace(input))
}

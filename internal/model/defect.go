package model

import "fmt"

// Role classifies how a symbol occurrence relates to its symbol.
type Role string

const (
	RoleDefine Role = "define"
	RoleUse    Role = "use"
	RoleSet    Role = "set"
	RoleClear  Role = "clear"
)

// FlagKind identifies the scope of a script flag.
type FlagKind string

const (
	FlagCountry FlagKind = "country"
	FlagState   FlagKind = "state"
	FlagGlobal  FlagKind = "global"
)

// Validate reports whether the kind is one of the supported flag scopes.
// An unsupported kind is a caller bug, not a data problem.
func (k FlagKind) Validate() error {
	switch k {
	case FlagCountry, FlagState, FlagGlobal:
		return nil
	default:
		return fmt.Errorf("unsupported flag kind %q: expected country, state or global", k)
	}
}

// Defect is one reported cross-reference inconsistency.
type Defect struct {
	Symbol string // symbol in display casing
	File   string // path relative to the scan root, or a bare basename when unresolved
	Line   int    // 1-indexed, 0 when the exact occurrence could not be re-located
}

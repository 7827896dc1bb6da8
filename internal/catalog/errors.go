package catalog

import "errors"

var (
	ErrUnknownUnit = errors.New("catalog: unknown unit")
	ErrDuplicate   = errors.New("catalog: name already defined")
	ErrFrozen      = errors.New("catalog: registry is frozen")
	ErrSyntax      = errors.New("catalog: invalid unit expression")
	ErrDefinition  = errors.New("catalog: invalid definition")
)

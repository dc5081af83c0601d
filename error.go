package enumerate

import "errors"

var (
	ErrDuplicateDescription = errors.New("duplicate description")
	ErrDuplicateName        = errors.New("duplicate name")
	ErrNotValid             = errors.New("invalid")
	ErrSealed               = errors.New("sealed")
)

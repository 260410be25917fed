package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrDuplicateSlug   = errors.New("duplicate project slug")
)

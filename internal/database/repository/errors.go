package repository

import "errors"

var (
	// ErrUnknownStructure is returned when a structure ID is not in the database.
	ErrUnknownStructure = errors.New("unknown structure id")

	// ErrDisulfideNotFound is returned when a disulfide name resolves to nothing.
	ErrDisulfideNotFound = errors.New("disulfide not found")
)

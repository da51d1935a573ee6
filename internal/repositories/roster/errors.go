package roster

import (
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

func errInvalid(msg string) error {
	return dnderr.InvalidArgument(msg)
}

func errNotFound(id string) error {
	return dnderr.NotFoundf("record with ID '%s' not found", id).
		WithMeta("record_id", id)
}

func errExists(id string) error {
	return dnderr.AlreadyExistsf("record with ID '%s' already exists", id).
		WithMeta("record_id", id)
}

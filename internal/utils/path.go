package utils

import (
	"net/http"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/google/uuid"
)

func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, errors.BadRequestError("Invalid " + name + " format").WithError(err)
	}

	return id, nil
}

package services

import (
	"errors"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// persistenceError passes through the domain outcomes a repository reports
// and classifies everything else as a dependency failure.
func persistenceError(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrConflict) {
		return err
	}
	return common.Dependency(op, err)
}

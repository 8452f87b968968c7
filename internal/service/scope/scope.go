// Package scope enforces role visibility inside the access layer, on top of
// the coarse route-level gate.
package scope

import (
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

// Require returns nil when the caller holds one of the given roles. Every
// scoped service operation runs through this, so a handler wired onto the
// wrong route group still cannot widen visibility.
func Require(caller *model.Principal, roles ...string) error {
	if caller == nil {
		return apperrors.NewUnauthenticated()
	}

	for _, role := range roles {
		if caller.Role == role {
			return nil
		}
	}

	return apperrors.NewWrongRole()
}

package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/apperr"
)

// requireOwner is the authorization decision every mutating resource path
// makes after loading the resource: the authenticated actor must be the
// recorded owner. Forbidden is distinct from NotFound — the resource
// exists, the actor just may not touch it.
func requireOwner(ownerID, actorID uuid.UUID) error {
	if ownerID != actorID {
		return fmt.Errorf("%w: you do not own this resource", apperr.ErrForbidden)
	}
	return nil
}

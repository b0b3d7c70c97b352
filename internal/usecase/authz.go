package usecase

import (
	"context"
	"fmt"

	"sea-haven/pkg/utils"
)

// Owned is anything that names the user it belongs to.
type Owned interface {
	OwnerEmail() string
}

// OwnerPolicy decides whether the caller in ctx may act on a resource.
type OwnerPolicy interface {
	Authorize(ctx context.Context, resource Owned) error
}

type ownerPolicy struct{}

// NewOwnerPolicy requires the authenticated email to equal the owner's.
func NewOwnerPolicy() OwnerPolicy {
	return ownerPolicy{}
}

func (ownerPolicy) Authorize(ctx context.Context, resource Owned) error {
	caller, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated identity", ErrUnauthorized)
	}

	if resource == nil || resource.OwnerEmail() != caller {
		return fmt.Errorf("%w: %s cannot act for another user", ErrForbidden, caller)
	}

	return nil
}

// Package policy holds the access-control rules consulted by every
// resource operation. The functions are pure: they decide on the
// (actor, resource) pair alone and never touch storage, so callers
// resolve resources first and ask for a decision second. A missing
// resource therefore surfaces as not-found and an existing resource
// the actor cannot touch surfaces as forbidden.
package policy

import (
	"realty/internal/errors"
	"realty/internal/model"
)

// Actor identifies the authenticated caller of an operation,
// derived from verified token claims.
type Actor struct {
	ID       uint
	Username string
	Role     model.Role
}

// IsAgent reports whether the actor holds the agent role.
func (a Actor) IsAgent() bool {
	return a.Role == model.RoleAgent
}

// CanCreateProperty allows only agents to create listings.
func CanCreateProperty(actor Actor) error {
	if !actor.IsAgent() {
		return errors.ErrForbidden
	}
	return nil
}

// CanModifyProperty allows updates and deletes only by the owning agent.
func CanModifyProperty(actor Actor, property *model.Property) error {
	if property.ListedBy != actor.ID {
		return errors.ErrForbidden
	}
	return nil
}

// PropertyScope describes which properties a list operation may return.
// OwnedBy zero means no owner filter.
type PropertyScope struct {
	OwnedBy uint
}

// ListPropertiesScope scopes listing views: agents see their own
// listings, buyers see everything. Unknown roles are refused outright.
func ListPropertiesScope(actor Actor) (PropertyScope, error) {
	switch actor.Role {
	case model.RoleAgent:
		return PropertyScope{OwnedBy: actor.ID}, nil
	case model.RoleBuyer:
		return PropertyScope{}, nil
	default:
		return PropertyScope{}, errors.ErrForbidden
	}
}

// CanCreateApplication allows only buyers to apply for a property.
func CanCreateApplication(actor Actor) error {
	if actor.Role != model.RoleBuyer {
		return errors.ErrForbidden
	}
	return nil
}

// ApplicationScope describes which applications a list operation may
// return: either the actor's own applications or the applications
// targeting properties the actor listed.
type ApplicationScope struct {
	ApplicantID     uint
	PropertyOwnerID uint
}

// ListApplicationsScope scopes application views: buyers see their own
// applications, agents see applications for properties they listed.
func ListApplicationsScope(actor Actor) (ApplicationScope, error) {
	switch actor.Role {
	case model.RoleBuyer:
		return ApplicationScope{ApplicantID: actor.ID}, nil
	case model.RoleAgent:
		return ApplicationScope{PropertyOwnerID: actor.ID}, nil
	default:
		return ApplicationScope{}, errors.ErrForbidden
	}
}

// CanDecideApplication allows approve/reject only by the agent owning
// the property the application targets.
func CanDecideApplication(actor Actor, property *model.Property) error {
	if !actor.IsAgent() || property.ListedBy != actor.ID {
		return errors.ErrForbidden
	}
	return nil
}

// CanDeleteApplication allows deletion only by the original applicant,
// regardless of status.
func CanDeleteApplication(actor Actor, application *model.Application) error {
	if application.UserID != actor.ID {
		return errors.ErrForbidden
	}
	return nil
}

// CanAccessWishlistItem allows wishlist operations only on the actor's
// own items. All wishlist operations are already scoped to the caller's
// id, so this guards repurposed items loaded by id.
func CanAccessWishlistItem(actor Actor, item *model.WishlistItem) error {
	if item.UserID != actor.ID {
		return errors.ErrForbidden
	}
	return nil
}

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realty/internal/errors"
	"realty/internal/model"
)

var (
	agentA  = Actor{ID: 1, Username: "agent-a", Role: model.RoleAgent}
	agentA2 = Actor{ID: 2, Username: "agent-a2", Role: model.RoleAgent}
	buyerB  = Actor{ID: 3, Username: "buyer-b", Role: model.RoleBuyer}
)

func TestCanCreateProperty(t *testing.T) {
	assert.NoError(t, CanCreateProperty(agentA))
	assert.Equal(t, errors.ErrForbidden, CanCreateProperty(buyerB))
	assert.Equal(t, errors.ErrForbidden, CanCreateProperty(Actor{ID: 9, Role: "admin"}))
}

func TestCanModifyProperty(t *testing.T) {
	property := &model.Property{ID: 10, ListedBy: agentA.ID}

	assert.NoError(t, CanModifyProperty(agentA, property))
	assert.Equal(t, errors.ErrForbidden, CanModifyProperty(agentA2, property))
	assert.Equal(t, errors.ErrForbidden, CanModifyProperty(buyerB, property))
}

func TestListPropertiesScope(t *testing.T) {
	tests := []struct {
		name      string
		actor     Actor
		wantOwned uint
		wantErr   error
	}{
		{"agent sees own listings", agentA, agentA.ID, nil},
		{"buyer sees all listings", buyerB, 0, nil},
		{"unknown role refused", Actor{ID: 9, Role: "tenant"}, 0, errors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ListPropertiesScope(tt.actor)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwned, scope.OwnedBy)
		})
	}
}

func TestCanCreateApplication(t *testing.T) {
	assert.NoError(t, CanCreateApplication(buyerB))
	assert.Equal(t, errors.ErrForbidden, CanCreateApplication(agentA))
}

func TestListApplicationsScope(t *testing.T) {
	scope, err := ListApplicationsScope(buyerB)
	assert.NoError(t, err)
	assert.Equal(t, buyerB.ID, scope.ApplicantID)
	assert.Zero(t, scope.PropertyOwnerID)

	scope, err = ListApplicationsScope(agentA)
	assert.NoError(t, err)
	assert.Equal(t, agentA.ID, scope.PropertyOwnerID)
	assert.Zero(t, scope.ApplicantID)

	_, err = ListApplicationsScope(Actor{ID: 9, Role: "tenant"})
	assert.Equal(t, errors.ErrForbidden, err)
}

func TestCanDecideApplication(t *testing.T) {
	property := &model.Property{ID: 10, ListedBy: agentA.ID}

	assert.NoError(t, CanDecideApplication(agentA, property))
	// Another agent does not own the property.
	assert.Equal(t, errors.ErrForbidden, CanDecideApplication(agentA2, property))
	// Buyers never decide, even a buyer whose id matches the owner.
	assert.Equal(t, errors.ErrForbidden, CanDecideApplication(Actor{ID: agentA.ID, Role: model.RoleBuyer}, property))
}

func TestCanDeleteApplication(t *testing.T) {
	application := &model.Application{ID: 20, UserID: buyerB.ID, PropertyID: 10}

	assert.NoError(t, CanDeleteApplication(buyerB, application))
	assert.Equal(t, errors.ErrForbidden, CanDeleteApplication(agentA, application))
	assert.Equal(t, errors.ErrForbidden, CanDeleteApplication(Actor{ID: 99, Role: model.RoleBuyer}, application))
}

func TestCanAccessWishlistItem(t *testing.T) {
	item := &model.WishlistItem{UserID: buyerB.ID, PropertyID: 10}

	assert.NoError(t, CanAccessWishlistItem(buyerB, item))
	assert.Equal(t, errors.ErrForbidden, CanAccessWishlistItem(agentA, item))
}

package app

import (
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
)

// ownsOrAdmin is the single authorization predicate for resource mutations:
// the caller must be the resource owner or hold the admin role.
func ownsOrAdmin(actor *user.User, ownerID common.UUID) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID || actor.Role == user.RoleAdmin
}

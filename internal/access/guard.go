package access

import (
	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/enums"
)

// Principal is the authenticated actor performing a request.
type Principal struct {
	ID   uuid.UUID
	Role enums.UserRole
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == enums.UserRoleAdmin
}

// CanAccess decides whether the principal may touch a record owned by the
// given agent. Admins always pass. Agents pass only for their own records;
// a record with no owning agent is admin-only.
func CanAccess(p Principal, ownerAgentID *uuid.UUID) bool {
	if p.IsAdmin() {
		return true
	}
	if ownerAgentID == nil {
		return false
	}
	return *ownerAgentID == p.ID
}

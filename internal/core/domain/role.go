package domain

import "slices"

// Role is a bureau role carried on a user profile.
type Role string

const (
	RolePresident      Role = "president"
	RoleVicePresident  Role = "vice_president"
	RoleTresorier      Role = "tresorier"
	RoleViceTresorier  Role = "vice_tresorier"
	RoleSecretaire     Role = "secretaire"
	RoleViceSecretaire Role = "vice_secretaire"
	RoleMembre         Role = "membre"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RolePresident, RoleVicePresident, RoleTresorier, RoleViceTresorier,
		RoleSecretaire, RoleViceSecretaire, RoleMembre:
		return true
	}
	return false
}

// Operation names a privileged action guarded by the role gate.
type Operation string

const (
	OpManageTransactions    Operation = "manage_transactions"
	OpManageStartingBalance Operation = "manage_starting_balance"
	OpManageDonations       Operation = "manage_donations"
	OpManageEvents          Operation = "manage_events"
	OpManageVolunteers      Operation = "manage_volunteers"
	OpManageBureau          Operation = "manage_bureau"
	OpManageCampaigns       Operation = "manage_campaigns"
	OpManageUsers           Operation = "manage_users"
)

// operationRoles is the hardcoded per-operation allow-list. There is no dynamic
// policy engine; changing permissions is a code change.
var operationRoles = map[Operation][]Role{
	OpManageTransactions:    {RoleTresorier, RoleViceTresorier, RolePresident, RoleVicePresident},
	OpManageStartingBalance: {RoleTresorier, RoleViceTresorier, RolePresident, RoleVicePresident},
	OpManageDonations:       {RoleTresorier, RoleViceTresorier, RolePresident, RoleVicePresident},
	OpManageEvents:          {RolePresident, RoleVicePresident, RoleSecretaire, RoleViceSecretaire},
	OpManageVolunteers:      {RolePresident, RoleVicePresident, RoleSecretaire, RoleViceSecretaire},
	OpManageBureau:          {RolePresident, RoleVicePresident, RoleSecretaire, RoleViceSecretaire},
	OpManageCampaigns:       {RolePresident, RoleVicePresident, RoleSecretaire, RoleViceSecretaire},
	OpManageUsers:           {RolePresident, RoleVicePresident},
}

// IsAuthorized is the role gate: a pure predicate deciding whether the caller
// profile may perform op. The platform admin flag supersedes role checks.
func IsAuthorized(op Operation, user *User) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin {
		return true
	}
	return slices.Contains(operationRoles[op], user.Role)
}

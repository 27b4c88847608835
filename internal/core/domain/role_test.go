package domain_test

import (
	"testing"

	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthorized(t *testing.T) {
	testCases := []struct {
		name     string
		op       domain.Operation
		user     *domain.User
		expected bool
	}{
		{
			name:     "nil user is never authorized",
			op:       domain.OpManageTransactions,
			user:     nil,
			expected: false,
		},
		{
			name:     "admin flag supersedes role",
			op:       domain.OpManageUsers,
			user:     &domain.User{Role: domain.RoleMembre, IsAdmin: true},
			expected: true,
		},
		{
			name:     "tresorier manages transactions",
			op:       domain.OpManageTransactions,
			user:     &domain.User{Role: domain.RoleTresorier},
			expected: true,
		},
		{
			name:     "tresorier does not manage events",
			op:       domain.OpManageEvents,
			user:     &domain.User{Role: domain.RoleTresorier},
			expected: false,
		},
		{
			name:     "secretaire manages events",
			op:       domain.OpManageEvents,
			user:     &domain.User{Role: domain.RoleSecretaire},
			expected: true,
		},
		{
			name:     "secretaire does not manage transactions",
			op:       domain.OpManageTransactions,
			user:     &domain.User{Role: domain.RoleSecretaire},
			expected: false,
		},
		{
			name:     "vice roles inherit their seat's permissions",
			op:       domain.OpManageStartingBalance,
			user:     &domain.User{Role: domain.RoleViceTresorier},
			expected: true,
		},
		{
			name:     "president manages users",
			op:       domain.OpManageUsers,
			user:     &domain.User{Role: domain.RolePresident},
			expected: true,
		},
		{
			name:     "secretaire does not manage users",
			op:       domain.OpManageUsers,
			user:     &domain.User{Role: domain.RoleSecretaire},
			expected: false,
		},
		{
			name:     "membre is denied every privileged operation",
			op:       domain.OpManageDonations,
			user:     &domain.User{Role: domain.RoleMembre},
			expected: false,
		},
		{
			name:     "unknown operation denies everyone but admins",
			op:       domain.Operation("manage_unknown"),
			user:     &domain.User{Role: domain.RolePresident},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.IsAuthorized(tc.op, tc.user))
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, domain.RoleTresorier.IsValid())
	assert.True(t, domain.RoleMembre.IsValid())
	assert.False(t, domain.Role("super_admin").IsValid())
	assert.False(t, domain.Role("").IsValid())
}

package rbac_test

import (
	"testing"

	"go-hrm/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforcerPolicies(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	cases := []struct {
		role, resource, action string
		allowed                bool
	}{
		{"admin", "leave", "review", true},
		{"manager", "leave", "review", true},
		{"employee", "leave", "review", false},
		{"assistant", "leave", "review", false},
		{"assistant", "attendance", "record", true},
		{"employee", "attendance", "record", false},
		{"employee", "leave", "create", true},
		{"manager", "attendance", "record", false},
		{"admin", "department", "manage", true},
		{"unknown", "leave", "read", false},
	}

	for _, tc := range cases {
		allowed, err := e.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}

package permissions_test

import (
	"net/http"
	"testing"

	"lodge/permissions"
	"lodge/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		skip     bool
		hasRoles []string
	}{
		{
			name:   "public booking creation skips auth",
			path:   "/v1/bookings/",
			method: http.MethodPost,
			skip:   true,
		},
		{
			name:   "public lookup skips auth",
			path:   "/v1/bookings/lookup",
			method: http.MethodGet,
			skip:   true,
		},
		{
			name:     "booking list is staff only",
			path:     "/v1/bookings/",
			method:   http.MethodGet,
			hasRoles: []string{constant.RoleAdmin, constant.RoleSuperAdmin},
		},
		{
			name:     "admin management is superadmin only",
			path:     "/v1/superadmin/create-admin",
			method:   http.MethodPost,
			hasRoles: []string{constant.RoleSuperAdmin},
		},
		{
			name:     "dashboard stats are staff only",
			path:     "/v1/admin/stats",
			method:   http.MethodGet,
			hasRoles: []string{constant.RoleAdmin, constant.RoleSuperAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)

			for _, role := range tt.hasRoles {
				assert.Contains(t, permission.Permissions, role)
			}
		})
	}
}

func TestFindPermissions_UnknownRoute(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	permission := data.FindPermissions("/v1/unknown", http.MethodGet)
	assert.False(t, permission.Skip)
	assert.Empty(t, permission.Permissions)
}

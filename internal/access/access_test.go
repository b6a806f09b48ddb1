package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
)

func TestAllowedRuleTable(t *testing.T) {
	business := &auth.Claims{UID: "u1", IsBusiness: true}
	regular := &auth.Claims{UID: "u2"}
	admin := &auth.Claims{UID: "u3", IsAdmin: true}

	cases := []struct {
		name    string
		op      Operation
		claims  *auth.Claims
		ownerID string
		allowed bool
	}{
		{"create card business", CardCreate, business, "", true},
		{"create card regular", CardCreate, regular, "", false},
		{"create card admin but not business", CardCreate, admin, "", false},
		{"create card anonymous", CardCreate, nil, "", false},
		{"read card anonymous", CardRead, nil, "", true},
		{"read own cards signed in", CardReadOwn, regular, "", true},
		{"read own cards anonymous", CardReadOwn, nil, "", false},
		{"edit card owner", CardEdit, regular, "u2", true},
		{"edit card admin not owner", CardEdit, admin, "u2", false},
		{"delete card owner", CardDelete, regular, "u2", true},
		{"delete card admin", CardDelete, admin, "u2", true},
		{"delete card stranger", CardDelete, business, "u2", false},
		{"change biz number admin", CardChangeBizNumber, admin, "", true},
		{"change biz number owner", CardChangeBizNumber, business, "", false},
		{"like signed in", CardLike, regular, "", true},
		{"like anonymous", CardLike, nil, "", false},
		{"list users admin", UserList, admin, "", true},
		{"list users regular", UserList, regular, "", false},
		{"read user self", UserRead, regular, "u2", true},
		{"read user admin", UserRead, admin, "u2", true},
		{"read user stranger", UserRead, business, "u2", false},
		{"edit user self", UserEdit, regular, "u2", true},
		{"edit user admin", UserEdit, admin, "u2", false},
		{"toggle business self", UserToggleBusiness, regular, "u2", true},
		{"toggle business admin", UserToggleBusiness, admin, "u2", true},
		{"toggle business stranger", UserToggleBusiness, business, "u2", false},
		{"delete user self", UserDelete, regular, "u2", true},
		{"delete user admin", UserDelete, admin, "u2", true},
		{"delete user stranger", UserDelete, business, "u2", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Allowed(tc.op, tc.claims, tc.ownerID)
			if tc.allowed {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, apperr.Authorization, apperr.KindOf(err))
			require.NotEmpty(t, err.Error())
		})
	}
}

func TestAllowedUnknownOperationDenied(t *testing.T) {
	err := Allowed(Operation(999), &auth.Claims{UID: "u1", IsAdmin: true}, "")
	require.Error(t, err)
	require.Equal(t, apperr.Authorization, apperr.KindOf(err))
}

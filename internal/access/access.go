package access

import (
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
)

// Operation 枚举所有受控操作
type Operation int

const (
	CardCreate Operation = iota
	CardRead
	CardReadOwn
	CardEdit
	CardDelete
	CardChangeBizNumber
	CardLike
	UserList
	UserRead
	UserEdit
	UserToggleBusiness
	UserDelete
)

type rule struct {
	deny  string // 拒绝时的提示语
	allow func(c *auth.Claims, ownerID string) bool
}

func anyone(*auth.Claims, string) bool        { return true }
func signedIn(c *auth.Claims, _ string) bool  { return c != nil }
func admin(c *auth.Claims, _ string) bool     { return c != nil && c.IsAdmin }
func owner(c *auth.Claims, owner string) bool { return c != nil && c.UID == owner }
func ownerOrAdmin(c *auth.Claims, owner string) bool {
	return c != nil && (c.UID == owner || c.IsAdmin)
}

// 全部授权规则集中在一张表里，取代按操作分散的 if/else
var rules = map[Operation]rule{
	CardCreate: {
		deny:  "only a business user can create a new business card",
		allow: func(c *auth.Claims, _ string) bool { return c != nil && c.IsBusiness },
	},
	CardRead:            {allow: anyone},
	CardReadOwn:         {deny: "only a signed-in user can access own cards", allow: signedIn},
	CardEdit:            {deny: "only the user who created this card can edit it", allow: owner},
	CardDelete:          {deny: "only an admin or the card owner can delete this card", allow: ownerOrAdmin},
	CardChangeBizNumber: {deny: "only an admin user can change a business number", allow: admin},
	CardLike:            {deny: "only a signed-in user can like cards", allow: signedIn},
	UserList:            {deny: "only an admin user can access the user list", allow: admin},
	UserRead:            {deny: "only an admin or the user himself can access this user", allow: ownerOrAdmin},
	UserEdit:            {deny: "only the user himself can update his details", allow: owner},
	UserToggleBusiness:  {deny: "only an admin or the user himself can change the business status", allow: ownerOrAdmin},
	UserDelete:          {deny: "only an admin or the user himself can delete this account", allow: ownerOrAdmin},
}

// Allowed 纯谓词：操作 + 声明 + 资源归属 → 放行或带规则说明的 403。
// 对需要归属判断的操作，ownerID 是目标资源的归属者；其余传空串即可。
func Allowed(op Operation, c *auth.Claims, ownerID string) error {
	r, ok := rules[op]
	if !ok || !r.allow(c, ownerID) {
		msg := r.deny
		if msg == "" {
			msg = "operation not permitted"
		}
		return apperr.New(apperr.Authorization, msg)
	}
	return nil
}

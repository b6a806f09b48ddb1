package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/service"
	mdw "github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/middleware"
	resp "github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

// POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.New(apperr.Validation, "malformed request body: "+err.Error()))
		return
	}
	u, err := h.svc.Register(c.Request.Context(), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	// 与原行为保持一致：注册响应带回摘要（绝不含明文）
	resp.OK(c, gin.H{
		"id":       u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"password": u.Password,
	})
}

// POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.New(apperr.Validation, "malformed request body: "+err.Error()))
		return
	}
	token, err := h.svc.Login(c.Request.Context(), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	c.String(http.StatusOK, token)
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context(), mdw.ClaimsFrom(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /users/:userId
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("userId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, u)
}

// PUT /users/:userId
func (h *UserHandler) Edit(c *gin.Context) {
	var in domain.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.New(apperr.Validation, "malformed request body: "+err.Error()))
		return
	}
	u, err := h.svc.Edit(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("userId"), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, u)
}

// PATCH /users/:userId
func (h *UserHandler) ToggleBusiness(c *gin.Context) {
	u, err := h.svc.ToggleBusiness(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("userId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, u)
}

// DELETE /users/:userId
func (h *UserHandler) Delete(c *gin.Context) {
	u, err := h.svc.Delete(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("userId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, u)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/service"
	mdw "github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/middleware"
	resp "github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/transport/http/response"
)

type CardHandler struct {
	svc *service.CardService
}

func NewCardHandler(svc *service.CardService) *CardHandler { return &CardHandler{svc: svc} }

// POST /cards
func (h *CardHandler) Create(c *gin.Context) {
	var in domain.CardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.New(apperr.Validation, "malformed request body: "+err.Error()))
		return
	}
	card, err := h.svc.Create(c.Request.Context(), mdw.ClaimsFrom(c), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, card)
}

// GET /cards
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, cards)
}

// GET /cards/my-cards
func (h *CardHandler) ListMine(c *gin.Context) {
	cards, err := h.svc.ListMine(c.Request.Context(), mdw.ClaimsFrom(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, cards)
}

// GET /cards/:cardId
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.svc.Get(c.Request.Context(), c.Param("cardId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, card)
}

// PUT /cards/:cardId
func (h *CardHandler) Edit(c *gin.Context) {
	var in domain.CardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.New(apperr.Validation, "malformed request body: "+err.Error()))
		return
	}
	card, err := h.svc.Edit(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("cardId"), &in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, card)
}

// PATCH /cards/:cardId
func (h *CardHandler) ToggleLike(c *gin.Context) {
	card, err := h.svc.ToggleLike(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("cardId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, card)
}

// DELETE /cards/:cardId
func (h *CardHandler) Delete(c *gin.Context) {
	card, err := h.svc.Delete(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("cardId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, card)
}

// PUT /cards/changeBizNumber/:cardId
func (h *CardHandler) ChangeBizNumber(c *gin.Context) {
	var in struct {
		BizNumber int64 `json:"bizNumber"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, apperr.New(apperr.Validation, "malformed request body: "+err.Error()))
		return
	}
	card, err := h.svc.ChangeBizNumber(c.Request.Context(), mdw.ClaimsFrom(c), c.Param("cardId"), in.BizNumber)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, card)
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/access"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/cache"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/normalize"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/validate"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/pkg/utils"
)

const cardCacheTTL = 30 * time.Second

type CardService struct {
	repo  domain.CardRepository
	cache *cache.Cache // 可为空；为空则直连存储
	log   *zap.Logger
}

func NewCardService(r domain.CardRepository, c *cache.Cache, log *zap.Logger) *CardService {
	return &CardService{repo: r, cache: c, log: log}
}

func cardKey(id string) string { return "card:" + id }

func (s *CardService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Del(ctx, cardKey(id))
	}
}

// Create 只有商务用户可建卡；归属取自声明而非载荷
func (s *CardService) Create(ctx context.Context, claims *auth.Claims, in *domain.CardInput) (*domain.Card, error) {
	if err := access.Allowed(access.CardCreate, claims, ""); err != nil {
		return nil, err
	}
	if err := validate.Card(in); err != nil {
		return nil, err
	}
	card := normalize.Card(in, claims.UID)
	card.ID = utils.NewID()
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, storeErr("card already exists", err)
	}
	s.log.Info("card created", zap.String("id", card.ID), zap.String("owner", card.OwnerID))
	return card, nil
}

func (s *CardService) List(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	return cards, nil
}

func (s *CardService) ListMine(ctx context.Context, claims *auth.Claims) ([]domain.Card, error) {
	if err := access.Allowed(access.CardReadOwn, claims, ""); err != nil {
		return nil, err
	}
	cards, err := s.repo.FindByOwner(ctx, claims.UID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	return cards, nil
}

// Get 公开读取，单卡走读透缓存
func (s *CardService) Get(ctx context.Context, cardID string) (*domain.Card, error) {
	load := func(ctx context.Context) (*domain.Card, error) {
		return s.repo.FindByID(ctx, cardID)
	}
	var card *domain.Card
	var err error
	if s.cache != nil {
		card, err = cache.GetOrLoadJSON[domain.Card](s.cache, ctx, cardKey(cardID), cardCacheTTL, load)
	} else {
		card, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if card == nil {
		return nil, apperr.New(apperr.NotFound, "card not found")
	}
	return card, nil
}

// Edit 按存量卡的归属者判定权限，而不是请求体声称的归属。
// bizNumber、likes、归属与创建时间不随编辑改变。
func (s *CardService) Edit(ctx context.Context, claims *auth.Claims, cardID string, in *domain.CardInput) (*domain.Card, error) {
	current, err := s.loadCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.Allowed(access.CardEdit, claims, current.OwnerID); err != nil {
		return nil, err
	}
	if err := validate.Card(in); err != nil {
		return nil, err
	}
	card := normalize.Card(in, current.OwnerID)
	card.ID = current.ID
	card.BizNumber = current.BizNumber
	card.Likes = current.Likes
	card.CreatedAt = current.CreatedAt
	if err := s.repo.Update(ctx, card); err != nil {
		return nil, storeErr("business number already taken", err)
	}
	s.invalidate(ctx, cardID)
	return card, nil
}

// ToggleLike 针对当前加载的快照做一次成员翻转并写回
func (s *CardService) ToggleLike(ctx context.Context, claims *auth.Claims, cardID string) (*domain.Card, error) {
	if err := access.Allowed(access.CardLike, claims, ""); err != nil {
		return nil, err
	}
	card, err := s.loadCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	card.ToggleLike(claims.UID)
	if err := s.repo.Update(ctx, card); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	s.invalidate(ctx, cardID)
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, claims *auth.Claims, cardID string) (*domain.Card, error) {
	card, err := s.loadCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if err := access.Allowed(access.CardDelete, claims, card.OwnerID); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, cardID); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	s.invalidate(ctx, cardID)
	s.log.Info("card deleted", zap.String("id", cardID))
	return card, nil
}

// ChangeBizNumber 管理员专属：预检唯一性给出友好 409，
// 写入时的唯一索引冲突同样收敛为 409。
func (s *CardService) ChangeBizNumber(ctx context.Context, claims *auth.Claims, cardID string, bizNumber int64) (*domain.Card, error) {
	if err := access.Allowed(access.CardChangeBizNumber, claims, ""); err != nil {
		return nil, err
	}
	if err := validate.BizNumber(bizNumber); err != nil {
		return nil, err
	}
	holder, err := s.repo.FindByBizNumber(ctx, bizNumber)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if holder != nil && holder.ID != cardID {
		return nil, apperr.New(apperr.Conflict, "a card with this business number already exists")
	}
	card, err := s.loadCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	card.BizNumber = &bizNumber
	if err := s.repo.Update(ctx, card); err != nil {
		return nil, storeErr("a card with this business number already exists", err)
	}
	s.invalidate(ctx, cardID)
	return card, nil
}

func (s *CardService) loadCard(ctx context.Context, cardID string) (*domain.Card, error) {
	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if card == nil {
		return nil, apperr.New(apperr.NotFound, "card not found")
	}
	return card, nil
}

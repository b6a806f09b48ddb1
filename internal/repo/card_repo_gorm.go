package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
)

type CardRepo struct{ db *gorm.DB }

func NewCardRepo(db *gorm.DB) *CardRepo { return &CardRepo{db: db} }

func (r *CardRepo) Create(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepo) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	var c domain.Card
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CardRepo) FindByOwner(ctx context.Context, ownerID string) ([]domain.Card, error) {
	var cards []domain.Card
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at asc").Find(&cards).Error
	return cards, err
}

func (r *CardRepo) FindByBizNumber(ctx context.Context, n int64) (*domain.Card, error) {
	var c domain.Card
	err := r.db.WithContext(ctx).First(&c, "biz_number = ?", n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CardRepo) List(ctx context.Context) ([]domain.Card, error) {
	var cards []domain.Card
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&cards).Error
	return cards, err
}

func (r *CardRepo) Update(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

func (r *CardRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Card{}).Error
}

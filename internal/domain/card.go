package domain

import (
	"context"
	"time"
)

// IDSet 是按值去重的用户 ID 集合，顺序无关
type IDSet []string

func (s IDSet) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle 幂等翻转成员关系：在则删，不在则加
func (s IDSet) Toggle(id string) IDSet {
	if !s.Has(id) {
		return append(s, id)
	}
	out := make(IDSet, 0, len(s)-1)
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type Card struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string    `gorm:"index;size:36;not null" json:"ownerId"`
	BizNumber   *int64    `gorm:"uniqueIndex" json:"bizNumber,omitempty"` // 管理员分配前为空
	Title       string    `gorm:"size:256;not null" json:"title"`
	Subtitle    string    `gorm:"size:256;not null" json:"subtitle"`
	Description string    `gorm:"size:1024;not null" json:"description"`
	Phone       string    `gorm:"size:32;not null" json:"phone"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Web         string    `gorm:"size:1024" json:"web,omitempty"`
	Image       Image     `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Address     Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Likes       IDSet     `gorm:"serializer:json" json:"likes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Card) TableName() string { return "cards" }

func (c *Card) ToggleLike(userID string) { c.Likes = c.Likes.Toggle(userID) }

type CardRepository interface {
	Create(ctx context.Context, card *Card) error
	FindByID(ctx context.Context, id string) (*Card, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Card, error)
	FindByBizNumber(ctx context.Context, n int64) (*Card, error)
	List(ctx context.Context) ([]Card, error)
	Update(ctx context.Context, card *Card) error
	Delete(ctx context.Context, id string) error
}

package repo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
)

// 内存实现：本地开发与测试用。和数据库一样在写路径强制唯一约束，
// 以便上层把“兜底冲突”当成真实存储行为来对待。

var (
	errDupEmail = errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	errDupBiz   = errors.New(`duplicate key value violates unique constraint "idx_cards_biz_number"`)
)

type MemoryUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]domain.User
	order map[string]int
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: map[string]domain.User{}, order: map[string]int{}}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.users {
		if v.Email == u.Email {
			return errDupEmail
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.seq++
	r.order[u.ID] = r.seq
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out, nil
}

func (r *MemoryUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, v := range r.users {
		if id != u.ID && v.Email == u.Email {
			return errDupEmail
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type MemoryCardRepo struct {
	mu    sync.Mutex
	seq   int
	cards map[string]domain.Card
	order map[string]int
}

func NewMemoryCardRepo() *MemoryCardRepo {
	return &MemoryCardRepo{cards: map[string]domain.Card{}, order: map[string]int{}}
}

func (r *MemoryCardRepo) bizTaken(n int64, exceptID string) bool {
	for id, c := range r.cards {
		if id != exceptID && c.BizNumber != nil && *c.BizNumber == n {
			return true
		}
	}
	return false
}

func (r *MemoryCardRepo) Create(_ context.Context, card *domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if card.BizNumber != nil && r.bizTaken(*card.BizNumber, card.ID) {
		return errDupBiz
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}
	r.seq++
	r.order[card.ID] = r.seq
	r.cards[card.ID] = *card
	return nil
}

func (r *MemoryCardRepo) FindByID(_ context.Context, id string) (*domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryCardRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Card{}
	for _, c := range r.cards {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out, nil
}

func (r *MemoryCardRepo) FindByBizNumber(_ context.Context, n int64) (*domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.cards {
		if c.BizNumber != nil && *c.BizNumber == n {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryCardRepo) List(_ context.Context) ([]domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Card, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out, nil
}

func (r *MemoryCardRepo) Update(_ context.Context, card *domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if card.BizNumber != nil && r.bizTaken(*card.BizNumber, card.ID) {
		return errDupBiz
	}
	r.cards[card.ID] = *card
	return nil
}

func (r *MemoryCardRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cards, id)
	return nil
}

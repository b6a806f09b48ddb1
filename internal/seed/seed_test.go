package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/repo"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/seed"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/service"
)

type plainHasher struct{}

func (plainHasher) Hash(pw string) string        { return "h:" + pw }
func (plainHasher) Check(pw, digest string) bool { return digest == "h:"+pw }

type noTokens struct{}

func (noTokens) Issue(string, bool, bool) (string, error) { return "t", nil }

func newWorld() (*service.UserService, *service.CardService, *repo.MemoryUserRepo, *repo.MemoryCardRepo) {
	ur := repo.NewMemoryUserRepo()
	cr := repo.NewMemoryCardRepo()
	us := service.NewUserService(ur, plainHasher{}, noTokens{}, zap.NewNop())
	cs := service.NewCardService(cr, nil, zap.NewNop())
	return us, cs, ur, cr
}

func TestRunSeedsAllFixtureItems(t *testing.T) {
	us, cs, ur, cr := newWorld()
	ctx := context.Background()

	results := seed.Run(ctx, us, cs, ur, zap.NewNop())
	require.NotEmpty(t, results)
	for _, r := range results {
		require.NoError(t, r.Err, "item %q", r.Item)
	}

	users, err := ur.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	cards, err := cr.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	// 所有名片都归属第一个商务用户
	var ownerID string
	for _, u := range users {
		if u.IsBusiness {
			ownerID = u.ID
			break
		}
	}
	require.NotEmpty(t, ownerID)
	for _, c := range cards {
		require.Equal(t, ownerID, c.OwnerID)
	}
}

// 重跑不会翻倍，也不会把已注册用户算作失败
func TestRunIsRerunSafe(t *testing.T) {
	us, cs, ur, _ := newWorld()
	ctx := context.Background()

	first := seed.Run(ctx, us, cs, ur, zap.NewNop())
	second := seed.Run(ctx, us, cs, ur, zap.NewNop())
	require.Len(t, second, len(first))
	for _, r := range second[:2] {
		require.NoError(t, r.Err, "item %q", r.Item)
	}

	users, err := ur.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

type failingCardRepo struct {
	*repo.MemoryCardRepo
	failFirst bool
}

func (r *failingCardRepo) Create(ctx context.Context, c *domain.Card) error {
	if r.failFirst {
		r.failFirst = false
		return errors.New("connection reset by peer")
	}
	return r.MemoryCardRepo.Create(ctx, c)
}

// 单条写入失败只影响该条，后续条目照常创建
func TestRunSkipsFailedItemAndContinues(t *testing.T) {
	ur := repo.NewMemoryUserRepo()
	cr := &failingCardRepo{MemoryCardRepo: repo.NewMemoryCardRepo(), failFirst: true}
	us := service.NewUserService(ur, plainHasher{}, noTokens{}, zap.NewNop())
	cs := service.NewCardService(cr, nil, zap.NewNop())
	ctx := context.Background()

	results := seed.Run(ctx, us, cs, ur, zap.NewNop())

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	require.Equal(t, 1, failed)

	cards, err := cr.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
}

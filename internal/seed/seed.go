// Package seed 启动期初始数据：逐条、互相独立的创建尝试，
// 单条失败只记录并跳过，不中断其它条目，也不重试。
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/normalize"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/service"
)

//go:embed initialdata.json
var fixture []byte

type Data struct {
	Users []domain.UserInput `json:"users"`
	Cards []domain.CardInput `json:"cards"`
}

// Result 每条目一项；Err 为空表示创建成功
type Result struct {
	Item string
	Err  error
}

// Run 走与线上请求完全相同的管线（校验/规范化/唯一性）。
// 名片归属到第一个商务用户；重跑时已注册用户按冲突跳过并复用其 ID。
func Run(ctx context.Context, users *service.UserService, cards *service.CardService, userRepo domain.UserRepository, log *zap.Logger) []Result {
	var data Data
	if err := json.Unmarshal(fixture, &data); err != nil {
		log.Error("seed fixture unreadable", zap.Error(err))
		return []Result{{Item: "fixture", Err: err}}
	}

	results := make([]Result, 0, len(data.Users)+len(data.Cards))
	ownerID := ""

	for i := range data.Users {
		in := data.Users[i]
		item := fmt.Sprintf("user %s %s", in.Name.First, in.Name.Last)
		u, err := users.Register(ctx, &in)
		if err != nil && apperr.IsKind(err, apperr.Conflict) {
			// 已注册：只为取回 ID，不视为失败
			if existing, lookupErr := userRepo.FindByEmail(ctx, normalize.Email(in.Email)); lookupErr == nil && existing != nil {
				u, err = existing, nil
			}
		}
		if err != nil {
			log.Warn("seed user skipped", zap.String("item", item), zap.Error(err))
			results = append(results, Result{Item: item, Err: err})
			continue
		}
		log.Info("seed user created", zap.String("item", item))
		results = append(results, Result{Item: item})
		if ownerID == "" && u.IsBusiness {
			ownerID = u.ID
		}
	}

	claims := &auth.Claims{UID: ownerID, IsBusiness: true}
	for i := range data.Cards {
		in := data.Cards[i]
		item := fmt.Sprintf("card %s", in.Title)
		if ownerID == "" {
			err := apperr.New(apperr.Authorization, "no business user available to own seed cards")
			log.Warn("seed card skipped", zap.String("item", item), zap.Error(err))
			results = append(results, Result{Item: item, Err: err})
			continue
		}
		if _, err := cards.Create(ctx, claims, &in); err != nil {
			log.Warn("seed card skipped", zap.String("item", item), zap.Error(err))
			results = append(results, Result{Item: item, Err: err})
			continue
		}
		log.Info("seed card created", zap.String("item", item))
		results = append(results, Result{Item: item})
	}
	return results
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/access"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/apperr"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/core/auth"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/domain"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/normalize"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/repo"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/internal/validate"
	"github.com/AdiBenAbu/BCARD-APP-NODE-JS/pkg/utils"
)

// Hasher 是凭证边界：核心只依赖单向散列与比对，不触碰实现
type Hasher interface {
	Hash(plain string) string
	Check(plain, digest string) bool
}

type TokenIssuer interface {
	Issue(uid string, isBusiness, isAdmin bool) (string, error)
}

type UserService struct {
	repo   domain.UserRepository
	hash   Hasher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewUserService(r domain.UserRepository, h Hasher, t TokenIssuer, log *zap.Logger) *UserService {
	return &UserService{repo: r, hash: h, tokens: t, log: log}
}

// storeErr 把写路径错误收敛成两种：唯一约束冲突或被包裹的存储失败
func storeErr(msg string, err error) error {
	if repo.IsDupKey(err) {
		return apperr.New(apperr.Conflict, msg)
	}
	return apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
}

// Register 公开注册：校验 → 规范化 → email 唯一性 → 写入。
// 唯一索引是兜底，预检只为在常见情形下给出友好的 409。
func (s *UserService) Register(ctx context.Context, in *domain.UserInput) (*domain.User, error) {
	if err := validate.User(in); err != nil {
		return nil, err
	}
	u := normalize.User(in, s.hash.Hash)
	u.ID = utils.NewID()

	existing, err := s.repo.FindByEmail(ctx, u.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "user already registered")
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, storeErr("user already registered", err)
	}
	s.log.Info("user registered", zap.String("id", u.ID))
	return u, nil
}

// Login 凭证不匹配与账号不存在共用同一条 403 文案
func (s *UserService) Login(ctx context.Context, in *domain.LoginInput) (string, error) {
	if err := validate.Login(in); err != nil {
		return "", err
	}
	u, err := s.repo.FindByEmail(ctx, normalize.Email(in.Email))
	if err != nil {
		return "", apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if u == nil || !s.hash.Check(in.Password, u.Password) {
		return "", apperr.New(apperr.Authentication, "invalid email or password")
	}
	token, err := s.tokens.Issue(u.ID, u.IsBusiness, u.IsAdmin)
	if err != nil {
		return "", apperr.Wrap(apperr.Persistence, "could not issue token", err)
	}
	return token, nil
}

func (s *UserService) List(ctx context.Context, claims *auth.Claims) ([]domain.User, error) {
	if err := access.Allowed(access.UserList, claims, ""); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, claims *auth.Claims, userID string) (*domain.User, error) {
	if err := access.Allowed(access.UserRead, claims, userID); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return u, nil
}

// Edit 整体替换可编辑字段；ID/createdAt/isAdmin 保持存量值
func (s *UserService) Edit(ctx context.Context, claims *auth.Claims, userID string, in *domain.UserInput) (*domain.User, error) {
	if err := access.Allowed(access.UserEdit, claims, userID); err != nil {
		return nil, err
	}
	if err := validate.User(in); err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if current == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}

	u := normalize.User(in, s.hash.Hash)
	u.ID = current.ID
	u.IsAdmin = current.IsAdmin
	u.CreatedAt = current.CreatedAt

	if u.Email != current.Email {
		holder, err := s.repo.FindByEmail(ctx, u.Email)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
		}
		if holder != nil {
			return nil, apperr.New(apperr.Conflict, "email already in use")
		}
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, storeErr("email already in use", err)
	}
	return u, nil
}

func (s *UserService) ToggleBusiness(ctx context.Context, claims *auth.Claims, userID string) (*domain.User, error) {
	if err := access.Allowed(access.UserToggleBusiness, claims, userID); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	u.IsBusiness = !u.IsBusiness
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, claims *auth.Claims, userID string) (*domain.User, error) {
	if err := access.Allowed(access.UserDelete, claims, userID); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "unexpected storage failure", err)
	}
	s.log.Info("user deleted", zap.String("id", userID))
	return u, nil
}

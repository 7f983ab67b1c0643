package service

import (
	"context"
	"errors"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/user"
	"learning-market/biz/infrastructure/util"
	"learning-market/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IUserService interface {
	SignToken(ctx context.Context, payload map[string]any) (*learning.SignTokenResp, error)
	CreateUser(ctx context.Context, req *learning.CreateUserReq) (*learning.CreateUserResp, error)
	ListUsers(ctx context.Context) ([]*learning.UserInfo, error)
	DeleteUser(ctx context.Context, req *learning.IDReq) (*learning.DeleteResp, error)
	IsAdmin(ctx context.Context, req *learning.EmailReq) (*learning.AdminResp, error)
	IsInstructor(ctx context.Context, req *learning.EmailReq) (*learning.InstructorResp, error)
	MakeAdmin(ctx context.Context, req *learning.IDReq) (*learning.UpdateResp, error)
	MakeInstructor(ctx context.Context, req *learning.IDReq) (*learning.UpdateResp, error)
}

type UserService struct {
	Config     *config.Config
	UserMapper user.IMongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignToken 为提交的用户信息签发令牌
func (s *UserService) SignToken(ctx context.Context, payload map[string]any) (*learning.SignTokenResp, error) {
	token, _, err := adaptor.GenerateJwtToken(s.Config.Auth, payload)
	if err != nil {
		log.CtxError(ctx, "签发令牌失败: %v", err)
		return nil, consts.ErrCall
	}
	return &learning.SignTokenResp{Token: token}, nil
}

// CreateUser 邮箱不存在时创建用户
func (s *UserService) CreateUser(ctx context.Context, req *learning.CreateUserReq) (*learning.CreateUserResp, error) {
	u := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	inserted, err := s.UserMapper.InsertIfAbsent(ctx, u)
	if err != nil {
		log.CtxError(ctx, "创建用户失败: %v", err)
		return nil, consts.ErrCall
	}
	if !inserted {
		return &learning.CreateUserResp{Message: "User Already Exists"}, nil
	}
	return &learning.CreateUserResp{
		Acknowledged: true,
		InsertedID:   u.ID.Hex(),
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*learning.UserInfo, error) {
	users, err := s.UserMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "获取用户列表失败: %v", err)
		return nil, consts.ErrCall
	}
	return lo.Map(users, func(u *user.User, _ int) *learning.UserInfo {
		info := new(learning.UserInfo)
		_ = util.Copy(info, u)
		return info
	}), nil
}

func (s *UserService) DeleteUser(ctx context.Context, req *learning.IDReq) (*learning.DeleteResp, error) {
	n, err := s.UserMapper.Delete(ctx, req.ID)
	if err != nil {
		if errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		log.CtxError(ctx, "删除用户失败: %v", err)
		return nil, consts.ErrCall
	}
	return &learning.DeleteResp{Acknowledged: true, DeletedCount: n}, nil
}

func (s *UserService) IsAdmin(ctx context.Context, req *learning.EmailReq) (*learning.AdminResp, error) {
	role, err := s.roleOf(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	return &learning.AdminResp{Admin: role == consts.RoleAdmin}, nil
}

func (s *UserService) IsInstructor(ctx context.Context, req *learning.EmailReq) (*learning.InstructorResp, error) {
	role, err := s.roleOf(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	return &learning.InstructorResp{Instructor: role == consts.RoleInstructor}, nil
}

func (s *UserService) MakeAdmin(ctx context.Context, req *learning.IDReq) (*learning.UpdateResp, error) {
	return s.setRole(ctx, req.ID, consts.RoleAdmin)
}

func (s *UserService) MakeInstructor(ctx context.Context, req *learning.IDReq) (*learning.UpdateResp, error) {
	return s.setRole(ctx, req.ID, consts.RoleInstructor)
}

// roleOf 只允许查询令牌本人的角色, 不一致时直接拒绝
func (s *UserService) roleOf(ctx context.Context, email string) (string, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetEmail() == "" {
		return "", consts.ErrNotAuthentication
	}
	if meta.GetEmail() != email {
		return "", consts.ErrForbidden
	}

	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	switch {
	case err == nil:
		return u.Role, nil
	case errors.Is(err, consts.ErrNotFound):
		return consts.RoleNone, nil
	default:
		log.CtxError(ctx, "获取用户角色失败: %v", err)
		return "", consts.ErrCall
	}
}

func (s *UserService) setRole(ctx context.Context, id string, role string) (*learning.UpdateResp, error) {
	res, err := s.UserMapper.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		log.CtxError(ctx, "更新用户角色失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return toUpdateResp(res), nil
}

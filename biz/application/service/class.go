package service

import (
	"context"
	"errors"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/biz/infrastructure/cache"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/util"
	"learning-market/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *learning.CreateClassReq) (*learning.InsertResp, error)
	ListAllClasses(ctx context.Context) ([]*learning.ClassInfo, error)
	ListClasses(ctx context.Context, req *learning.ListClassesReq) ([]*learning.ClassInfo, error)
	GetClass(ctx context.Context, req *learning.IDReq) (*learning.ClassInfo, error)
	ListApprovedClasses(ctx context.Context) ([]*learning.ClassInfo, error)
	GetApprovedClass(ctx context.Context, req *learning.IDReq) (*learning.ClassInfo, error)
	ListTopClasses(ctx context.Context) ([]*learning.ClassInfo, error)
	UpdateClassStatus(ctx context.Context, req *learning.UpdateClassStatusReq) (*learning.UpdateResp, error)
	IncClassCounters(ctx context.Context, req *learning.IncClassCountersReq) (*learning.UpdateResp, error)
}

type ClassService struct {
	Config      *config.Config
	ClassMapper class.IMongoMapper
	TopCache    cache.ITopClassesCache
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 新建课程, 状态固定为待审核
func (s *ClassService) CreateClass(ctx context.Context, req *learning.CreateClassReq) (*learning.InsertResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	seats, err := parseSeats(req.AvailableSeats)
	if err != nil {
		return nil, err
	}

	c := &class.Class{
		ClassName:       req.ClassName,
		ClassPhotoURL:   req.ClassPhotoURL,
		InstructorName:  req.InstructorName,
		InstructorEmail: lo.Ternary(req.InstructorEmail != "", req.InstructorEmail, meta.GetEmail()),
		AvailableSeats:  seats,
		Price:           price,
		Status:          consts.StatusPending,
	}
	if err = s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "创建课程失败: %v", err)
		return nil, consts.ErrCreateClass
	}
	return &learning.InsertResp{Acknowledged: true, InsertedID: c.ID.Hex()}, nil
}

func (s *ClassService) ListAllClasses(ctx context.Context) ([]*learning.ClassInfo, error) {
	classes, err := s.ClassMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "获取课程列表失败: %v", err)
		return nil, consts.ErrCall
	}
	return toClassInfos(classes), nil
}

// ListClasses 按讲师邮箱筛选, 邮箱为空时返回全部
func (s *ClassService) ListClasses(ctx context.Context, req *learning.ListClassesReq) ([]*learning.ClassInfo, error) {
	if req.Email == "" {
		return s.ListAllClasses(ctx)
	}
	classes, err := s.ClassMapper.FindByInstructor(ctx, req.Email)
	if err != nil {
		log.CtxError(ctx, "获取讲师课程失败: %v", err)
		return nil, consts.ErrCall
	}
	return toClassInfos(classes), nil
}

func (s *ClassService) GetClass(ctx context.Context, req *learning.IDReq) (*learning.ClassInfo, error) {
	c, err := s.findClass(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toClassInfo(c), nil
}

func (s *ClassService) ListApprovedClasses(ctx context.Context) ([]*learning.ClassInfo, error) {
	classes, err := s.ClassMapper.FindByStatus(ctx, consts.StatusApproved)
	if err != nil {
		log.CtxError(ctx, "获取已审核课程失败: %v", err)
		return nil, consts.ErrCall
	}
	return toClassInfos(classes), nil
}

// GetApprovedClass 未通过审核的课程视为不存在
func (s *ClassService) GetApprovedClass(ctx context.Context, req *learning.IDReq) (*learning.ClassInfo, error) {
	c, err := s.findClass(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if c.Status != consts.StatusApproved {
		return nil, consts.ErrNotFound
	}
	return toClassInfo(c), nil
}

// ListTopClasses 按报名人数倒序, 结果缓存一段时间
func (s *ClassService) ListTopClasses(ctx context.Context) ([]*learning.ClassInfo, error) {
	cached, hit, err := s.TopCache.Get(ctx)
	if err != nil {
		log.CtxError(ctx, "读取热门课程缓存失败: %v", err)
	}
	if hit {
		return toClassInfos(cached), nil
	}

	classes, err := s.ClassMapper.FindTopByEnrollment(ctx, consts.StatusApproved, s.Config.Catalog.TopLimit)
	if err != nil {
		log.CtxError(ctx, "获取热门课程失败: %v", err)
		return nil, consts.ErrCall
	}
	if err = s.TopCache.Set(ctx, classes); err != nil {
		log.CtxError(ctx, "写入热门课程缓存失败: %v", err)
	}
	return toClassInfos(classes), nil
}

// UpdateClassStatus 审核课程
func (s *ClassService) UpdateClassStatus(ctx context.Context, req *learning.UpdateClassStatusReq) (*learning.UpdateResp, error) {
	switch req.Status {
	case consts.StatusPending, consts.StatusApproved, consts.StatusDenied:
	default:
		return nil, consts.ErrInvalidStatus
	}

	res, err := s.ClassMapper.UpdateStatus(ctx, req.ClassID, req.Status, req.Feedback)
	if err != nil {
		if errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		log.CtxError(ctx, "更新课程状态失败: %v", err)
		return nil, consts.ErrUpdate
	}
	s.invalidateTop(ctx)
	return toUpdateResp(res), nil
}

// IncClassCounters 默认报名人数加一、座位减一
func (s *ClassService) IncClassCounters(ctx context.Context, req *learning.IncClassCountersReq) (*learning.UpdateResp, error) {
	enrolled := lo.FromPtrOr(req.EnrolledStudents, 1)
	seats := lo.FromPtrOr(req.AvailableSeats, -1)

	res, err := s.ClassMapper.IncCounters(ctx, req.ClassItemID, enrolled, seats)
	if err != nil {
		if errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		log.CtxError(ctx, "更新课程计数失败: %v", err)
		return nil, consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		// 区分课程不存在和计数不足
		if _, err = s.findClass(ctx, req.ClassItemID); err != nil {
			return nil, err
		}
		return nil, consts.ErrCounterUnderflow
	}
	s.invalidateTop(ctx)
	return toUpdateResp(res), nil
}

func (s *ClassService) findClass(ctx context.Context, id string) (*class.Class, error) {
	c, err := s.ClassMapper.FindOne(ctx, id)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, consts.ErrNotFound), errors.Is(err, consts.ErrInvalidObjectId):
		return nil, err
	default:
		log.CtxError(ctx, "获取课程失败: %v", err)
		return nil, consts.ErrCall
	}
}

func (s *ClassService) invalidateTop(ctx context.Context) {
	if err := s.TopCache.Delete(ctx); err != nil {
		log.CtxError(ctx, "清除热门课程缓存失败: %v", err)
	}
}

func toClassInfo(c *class.Class) *learning.ClassInfo {
	info := new(learning.ClassInfo)
	_ = util.Copy(info, c)
	return info
}

func toClassInfos(classes []*class.Class) []*learning.ClassInfo {
	return lo.Map(classes, func(c *class.Class, _ int) *learning.ClassInfo {
		return toClassInfo(c)
	})
}

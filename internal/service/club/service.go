package club

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"campus_club_server/internal/dao/mysql/repository"
	myredis "campus_club_server/internal/dao/redis"
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/dto/respond"
	"campus_club_server/internal/infrastructure/mq"
	"campus_club_server/internal/model"
	"campus_club_server/pkg/constants"
	"campus_club_server/pkg/enum/activity/activity_status_enum"
	"campus_club_server/pkg/enum/club/club_category_enum"
	"campus_club_server/pkg/enum/club/club_status_enum"
	"campus_club_server/pkg/enum/membership/club_role_enum"
	"campus_club_server/pkg/errorx"
)

// clubService 社团业务逻辑实现
// 通过构造函数注入 Repository、Cache 和事件发布端
type clubService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	publisher mq.EventPublisher
}

// NewClubService 构造函数，注入所有依赖
func NewClubService(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *clubService {
	return &clubService{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
	}
}

// buildClubRespond 将社团实体转换为响应结构
func buildClubRespond(club *model.Club) respond.ClubRespond {
	return respond.ClubRespond{
		Id:              club.ID,
		Name:            club.Name,
		Description:     club.Description,
		Category:        club.Category,
		MeetingLocation: club.MeetingLocation,
		Image:           club.Image,
		Status:          club.Status,
		CreatedAt:       club.CreatedAt.Format(time.RFC3339),
	}
}

// CreateClub 创建社团
// 创建者在同一事务内成为该社团的 ADMIN 成员，保证社团始终有管理员
func (s *clubService) CreateClub(creatorId string, req request.CreateClubRequest) (*respond.ClubRespond, error) {
	if !club_category_enum.Valid(req.Category) {
		return nil, errorx.New(errorx.CodeValidation, "无效的社团类别")
	}

	club := model.Club{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		MeetingLocation: req.MeetingLocation,
		Image:           req.Image,
		Status:          club_status_enum.ACTIVE,
	}

	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Club.Create(&club); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		// 创建者即管理员
		member := model.Membership{
			UserUuid: creatorId,
			ClubId:   club.ID,
			Role:     club_role_enum.ADMIN,
			JoinedAt: time.Now(),
		}
		if err := txRepos.Membership.Create(&member); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 事务提交后发布事件，发布失败不影响创建结果
	s.publisher.Publish(constants.TopicClubCreated, map[string]any{
		"clubId": club.ID,
		"name":   club.Name,
	})

	rsp := buildClubRespond(&club)
	return &rsp, nil
}

// operatorRole 查询操作者在社团内的角色
// 不是成员按权限不足处理，其余存储错误按服务繁忙处理
func (s *clubService) operatorRole(operatorId string, clubId uint) (string, error) {
	operator, err := s.repos.Membership.FindByUserAndClub(operatorId, clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return "", errorx.New(errorx.CodePermission, "没有权限执行此操作")
		}
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}
	return operator.Role, nil
}

// UpdateClub 更新社团信息，nil 字段保持不变
// 操作者须持有该社团 PRESIDENT/ADMIN
func (s *clubService) UpdateClub(operatorId string, clubId uint, req request.UpdateClubRequest) (*respond.ClubRespond, error) {
	if req.Category != nil && !club_category_enum.Valid(*req.Category) {
		return nil, errorx.New(errorx.CodeValidation, "无效的社团类别")
	}

	if _, err := s.repos.Club.FindById(clubId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "社团不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	role, err := s.operatorRole(operatorId, clubId)
	if err != nil {
		return nil, err
	}
	if !club_role_enum.CanAdministrate(role) {
		return nil, errorx.New(errorx.CodePermission, "没有权限修改社团信息")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.MeetingLocation != nil {
		fields["meeting_location"] = *req.MeetingLocation
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	if len(fields) > 0 {
		if err := s.repos.Club.Updates(clubId, fields); err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
	}

	club, err := s.repos.Club.FindById(clubId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	s.publisher.Publish(constants.TopicClubUpdated, map[string]any{
		"clubId": club.ID,
	})

	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), myredis.ClubDetailKey(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
	})

	rsp := buildClubRespond(club)
	return &rsp, nil
}

// UpdateClubStatus 更新社团状态
// 操作者须持有该社团 PRESIDENT/ADMIN
func (s *clubService) UpdateClubStatus(operatorId string, clubId uint, status string) error {
	if !club_status_enum.Valid(status) {
		return errorx.New(errorx.CodeValidation, "无效的社团状态")
	}

	if _, err := s.repos.Club.FindById(clubId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "社团不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	role, err := s.operatorRole(operatorId, clubId)
	if err != nil {
		return err
	}
	if !club_role_enum.CanAdministrate(role) {
		return errorx.New(errorx.CodePermission, "没有权限修改社团状态")
	}

	if err := s.repos.Club.UpdateStatus(clubId, status); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.publisher.Publish(constants.TopicClubStatusUpdated, map[string]any{
		"clubId": clubId,
		"status": status,
	})

	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), myredis.ClubDetailKey(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
	})

	return nil
}

// DeleteClub 删除社团
// 操作者必须持有该社团的 ADMIN 角色；级联删除成员与活动后软删除社团
func (s *clubService) DeleteClub(operatorId string, clubId uint) error {
	if _, err := s.repos.Club.FindById(clubId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "社团不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	role, err := s.operatorRole(operatorId, clubId)
	if err != nil {
		return err
	}
	if role != club_role_enum.ADMIN {
		return errorx.New(errorx.CodePermission, "只有社团管理员可以删除社团")
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Membership.DeleteByClubId(clubId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Activity.DeleteByClubId(clubId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Club.SoftDeleteById(clubId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(constants.TopicClubDeleted, map[string]any{
		"clubId": clubId,
	})

	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), myredis.ClubDetailKey(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
		if err := s.cache.DeleteByPattern(context.Background(), myredis.ClubMembersPattern(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
	})

	return nil
}

// SearchClubs 分页搜索社团
// 名称子串匹配（不区分大小写），状态精确匹配，按创建时间倒序
func (s *clubService) SearchClubs(req request.SearchClubsRequest) (*respond.SearchClubsRespond, error) {
	if req.Status != "" && !club_status_enum.Valid(req.Status) {
		return nil, errorx.New(errorx.CodeValidation, "无效的社团状态")
	}

	page := req.Page
	if page < 1 {
		page = constants.DEFAULT_PAGE
	}
	limit := req.Limit
	if limit < 1 {
		limit = constants.DEFAULT_LIMIT
	}

	clubs, total, err := s.repos.Club.Search(req.Name, req.Status, page, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// make 初始化 len=0，序列化后是 [] 而不是 null
	items := make([]respond.ClubRespond, 0, len(clubs))
	for i := range clubs {
		items = append(items, buildClubRespond(&clubs[i]))
	}

	return &respond.SearchClubsRespond{
		Items:      items,
		Pagination: respond.NewPagination(page, limit, total),
	}, nil
}

// GetClub 获取社团详情，附带成员与活动列表
func (s *clubService) GetClub(clubId uint) (*respond.ClubDetailRespond, error) {
	cacheKey := myredis.ClubDetailKey(clubId)

	// 1. 尝试从缓存获取
	rspString, err := s.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var rsp respond.ClubDetailRespond
		if err := json.Unmarshal([]byte(rspString), &rsp); err == nil {
			return &rsp, nil
		}
		// 缓存数据脏了，降级查库
		zap.L().Warn("Unmarshal club detail cache failed", zap.Uint("clubId", clubId), zap.Error(err))
	} else if err != nil {
		zap.L().Error("Get club detail cache error", zap.Uint("clubId", clubId), zap.Error(err))
	}

	// 2. 查询数据库
	club, err := s.repos.Club.FindByIdWithRelations(clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "社团不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 3. 构建响应
	rsp := &respond.ClubDetailRespond{
		ClubRespond: buildClubRespond(club),
		Memberships: make([]respond.MembershipRespond, 0, len(club.Memberships)),
		Activities:  make([]respond.ActivityRespond, 0, len(club.Activities)),
	}
	for _, m := range club.Memberships {
		rsp.Memberships = append(rsp.Memberships, respond.MembershipRespond{
			Id:       m.ID,
			UserId:   m.UserUuid,
			ClubId:   m.ClubId,
			Role:     m.Role,
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		})
	}
	for _, a := range club.Activities {
		rsp.Activities = append(rsp.Activities, buildActivityRespond(&a))
	}

	// 4. 异步回写缓存
	s.cache.SubmitTask(func() {
		data, err := json.Marshal(rsp)
		if err != nil {
			zap.L().Error("Marshal club detail error", zap.Error(err))
			return
		}
		if err := s.cache.Set(context.Background(), cacheKey, string(data), constants.CLUB_INFO_CACHE_TTL); err != nil {
			zap.L().Error("Set club detail cache error", zap.Error(err))
		}
	})

	return rsp, nil
}

// buildActivityRespond 将活动实体转换为响应结构
func buildActivityRespond(a *model.Activity) respond.ActivityRespond {
	rsp := respond.ActivityRespond{
		Id:          a.ID,
		ClubId:      a.ClubId,
		Title:       a.Title,
		Description: a.Description,
		StartDate:   a.StartDate.Format(time.RFC3339),
		Location:    a.Location,
		Status:      a.Status,
	}
	if a.EndDate != nil {
		endDate := a.EndDate.Format(time.RFC3339)
		rsp.EndDate = &endDate
	}
	// 状态列缺省值兜底
	if rsp.Status == "" {
		rsp.Status = activity_status_enum.PENDING
	}
	return rsp
}

package activity

import (
	"context"
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
	"campus_club_server/pkg/enum/membership/club_role_enum"
	"campus_club_server/pkg/errorx"
)

// activityService 活动业务逻辑实现
type activityService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	publisher mq.EventPublisher
}

// NewActivityService 构造函数，注入所有依赖
func NewActivityService(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *activityService {
	return &activityService{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
	}
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
	return rsp
}

// invalidateClubDetail 活动变更后异步清理所属社团的详情缓存
func (s *activityService) invalidateClubDetail(clubId uint) {
	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), myredis.ClubDetailKey(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

// checkOperatorCanManage 校验操作者在社团内持有活动管理角色（SECRETARY 及以上）
func (s *activityService) checkOperatorCanManage(operatorId string, clubId uint) error {
	operator, err := s.repos.Membership.FindByUserAndClub(operatorId, clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodePermission, "没有权限管理该社团的活动")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !club_role_enum.HasManagementRights(operator.Role) {
		return errorx.New(errorx.CodePermission, "没有权限管理该社团的活动")
	}
	return nil
}

// CreateActivity 创建活动，初始状态 PENDING
// endDate 可以为空，给出时不得早于 startDate
func (s *activityService) CreateActivity(operatorId string, clubId uint, req request.CreateActivityRequest) (*respond.ActivityRespond, error) {
	if _, err := s.repos.Club.FindById(clubId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "社团不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if err := s.checkOperatorCanManage(operatorId, clubId); err != nil {
		return nil, err
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, errorx.New(errorx.CodeValidation, "结束时间不能早于开始时间")
	}

	activity := model.Activity{
		ClubId:      clubId,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Status:      activity_status_enum.PENDING,
	}
	if err := s.repos.Activity.Create(&activity); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	s.publisher.Publish(constants.TopicActivityCreated, map[string]any{
		"activityId": activity.ID,
		"clubId":     clubId,
		"title":      activity.Title,
	})

	s.invalidateClubDetail(clubId)

	rsp := buildActivityRespond(&activity)
	return &rsp, nil
}

// UpdateActivity 更新活动，nil 字段保持不变
// 更新后的时间区间仍需满足结束不早于开始
func (s *activityService) UpdateActivity(operatorId string, activityId uint, req request.UpdateActivityRequest) (*respond.ActivityRespond, error) {
	activity, err := s.repos.Activity.FindById(activityId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "活动不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if err := s.checkOperatorCanManage(operatorId, activity.ClubId); err != nil {
		return nil, err
	}

	startDate := activity.StartDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := activity.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, errorx.New(errorx.CodeValidation, "结束时间不能早于开始时间")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	if len(fields) > 0 {
		if err := s.repos.Activity.Updates(activityId, fields); err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
	}

	activity, err = s.repos.Activity.FindById(activityId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	s.invalidateClubDetail(activity.ClubId)

	rsp := buildActivityRespond(activity)
	return &rsp, nil
}

// UpdateActivityStatus 更新活动状态
// 枚举内任意状态可直接设置，不做状态机限制
func (s *activityService) UpdateActivityStatus(operatorId string, activityId uint, status string) error {
	if !activity_status_enum.Valid(status) {
		return errorx.New(errorx.CodeValidation, "无效的活动状态")
	}

	activity, err := s.repos.Activity.FindById(activityId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "活动不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if err := s.checkOperatorCanManage(operatorId, activity.ClubId); err != nil {
		return err
	}

	if err := s.repos.Activity.UpdateStatus(activityId, status); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.invalidateClubDetail(activity.ClubId)
	return nil
}

// DeleteActivity 删除活动
func (s *activityService) DeleteActivity(operatorId string, activityId uint) error {
	activity, err := s.repos.Activity.FindById(activityId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "活动不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if err := s.checkOperatorCanManage(operatorId, activity.ClubId); err != nil {
		return err
	}

	if err := s.repos.Activity.Delete(activityId); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.invalidateClubDetail(activity.ClubId)
	return nil
}

// GetActivity 获取单个活动
func (s *activityService) GetActivity(activityId uint) (*respond.ActivityRespond, error) {
	activity, err := s.repos.Activity.FindById(activityId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "活动不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	rsp := buildActivityRespond(activity)
	return &rsp, nil
}

// GetClubActivities 分页获取社团活动，按开始时间升序
func (s *activityService) GetClubActivities(clubId uint, req request.PaginationRequest) (*respond.ActivityListRespond, error) {
	page, limit := normalizePage(req)

	activities, total, err := s.repos.Activity.FindByClubPaged(clubId, page, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	return buildActivityList(activities, page, limit, total), nil
}

// GetUpcomingActivities 分页获取即将开始的活动
// 未开始（startDate >= now）且状态 ACTIVE
func (s *activityService) GetUpcomingActivities(req request.PaginationRequest) (*respond.ActivityListRespond, error) {
	page, limit := normalizePage(req)

	activities, total, err := s.repos.Activity.FindUpcoming(time.Now(), page, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	return buildActivityList(activities, page, limit, total), nil
}

// normalizePage 分页参数缺省值
func normalizePage(req request.PaginationRequest) (int, int) {
	page := req.Page
	if page < 1 {
		page = constants.DEFAULT_PAGE
	}
	limit := req.Limit
	if limit < 1 {
		limit = constants.DEFAULT_LIMIT
	}
	return page, limit
}

// buildActivityList 构建活动分页响应
func buildActivityList(activities []model.Activity, page, limit int, total int64) *respond.ActivityListRespond {
	items := make([]respond.ActivityRespond, 0, len(activities))
	for i := range activities {
		items = append(items, buildActivityRespond(&activities[i]))
	}
	return &respond.ActivityListRespond{
		Items:      items,
		Pagination: respond.NewPagination(page, limit, total),
	}
}

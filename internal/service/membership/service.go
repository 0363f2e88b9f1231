package membership

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
	"campus_club_server/pkg/enum/membership/club_role_enum"
	"campus_club_server/pkg/errorx"
)

// membershipService 成员与角色业务逻辑实现
type membershipService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	publisher mq.EventPublisher
}

// NewMembershipService 构造函数，注入所有依赖
func NewMembershipService(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *membershipService {
	return &membershipService{
		repos:     repos,
		cache:     cache,
		publisher: publisher,
	}
}

// buildMembershipRespond 将成员实体转换为响应结构
func buildMembershipRespond(m *model.Membership) respond.MembershipRespond {
	return respond.MembershipRespond{
		Id:       m.ID,
		UserId:   m.UserUuid,
		ClubId:   m.ClubId,
		Role:     m.Role,
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}

// invalidateClubCaches 异步清理社团详情和成员列表缓存
func (s *membershipService) invalidateClubCaches(clubId uint) {
	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), myredis.ClubDetailKey(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
		if err := s.cache.DeleteByPattern(context.Background(), myredis.ClubMembersPattern(clubId)); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

// checkOperatorCanAdministrate 校验操作者在社团内持有 PRESIDENT/ADMIN
func (s *membershipService) checkOperatorCanAdministrate(operatorId string, clubId uint) error {
	operator, err := s.repos.Membership.FindByUserAndClub(operatorId, clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodePermission, "没有权限执行此操作")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !club_role_enum.CanAdministrate(operator.Role) {
		return errorx.New(errorx.CodePermission, "没有权限执行此操作")
	}
	return nil
}

// JoinClub 加入社团
// 重复加入返回冲突错误；并发加入由 (user_uuid, club_id) 唯一约束兜底
func (s *membershipService) JoinClub(userId string, clubId uint) (*respond.MembershipRespond, error) {
	if _, err := s.repos.Club.FindById(clubId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "社团不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if _, err := s.repos.Membership.FindByUserAndClub(userId, clubId); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "已经是该社团成员")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	member := model.Membership{
		UserUuid: userId,
		ClubId:   clubId,
		Role:     club_role_enum.MEMBER,
		JoinedAt: time.Now(),
	}
	if err := s.repos.Membership.Create(&member); err != nil {
		// 并发加入时唯一索引冲突
		if errorx.GetCode(err) == errorx.CodeConflict {
			return nil, errorx.New(errorx.CodeConflict, "已经是该社团成员")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	s.publisher.Publish(constants.TopicMemberJoined, map[string]any{
		"clubId": clubId,
		"userId": userId,
	})

	s.invalidateClubCaches(clubId)

	rsp := buildMembershipRespond(&member)
	return &rsp, nil
}

// LeaveClub 退出社团
// PRESIDENT/ADMIN 不允许直接退出，须先转移角色
func (s *membershipService) LeaveClub(userId string, clubId uint) error {
	member, err := s.repos.Membership.FindByUserAndClub(userId, clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "不是该社团成员")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if club_role_enum.IsLeadership(member.Role) {
		return errorx.New(errorx.CodePermission, "负责人不能直接退出社团，请先转移角色")
	}

	if err := s.repos.Membership.Delete(userId, clubId); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.publisher.Publish(constants.TopicMemberLeft, map[string]any{
		"clubId": clubId,
		"userId": userId,
	})

	s.invalidateClubCaches(clubId)
	return nil
}

// UpdateMemberRole 更新成员角色
// 角色间无状态机限制，授权操作者可直接设置任一合法角色
func (s *membershipService) UpdateMemberRole(operatorId string, clubId uint, userId, role string) (*respond.MembershipRespond, error) {
	if !club_role_enum.Valid(role) {
		return nil, errorx.New(errorx.CodeValidation, "无效的成员角色")
	}

	if err := s.checkOperatorCanAdministrate(operatorId, clubId); err != nil {
		return nil, err
	}

	member, err := s.repos.Membership.FindByUserAndClub(userId, clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "成员记录不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if err := s.repos.Membership.UpdateRole(userId, clubId, role); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	member.Role = role

	s.publisher.Publish(constants.TopicMemberRoleUpdated, map[string]any{
		"clubId": clubId,
		"userId": userId,
		"role":   role,
	})

	s.invalidateClubCaches(clubId)

	rsp := buildMembershipRespond(member)
	return &rsp, nil
}

// RemoveMember 移除成员
// 不阻止管理员移除自己
func (s *membershipService) RemoveMember(operatorId string, clubId uint, userId string) error {
	if err := s.checkOperatorCanAdministrate(operatorId, clubId); err != nil {
		return err
	}

	if _, err := s.repos.Membership.FindByUserAndClub(userId, clubId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "成员记录不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if err := s.repos.Membership.Delete(userId, clubId); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.publisher.Publish(constants.TopicMemberRemoved, map[string]any{
		"clubId":     clubId,
		"userId":     userId,
		"operatorId": operatorId,
	})

	s.invalidateClubCaches(clubId)
	return nil
}

// GetClubMembers 分页获取社团成员，按加入时间倒序
func (s *membershipService) GetClubMembers(clubId uint, req request.PaginationRequest) (*respond.ClubMembersRespond, error) {
	page := req.Page
	if page < 1 {
		page = constants.DEFAULT_PAGE
	}
	limit := req.Limit
	if limit < 1 {
		limit = constants.DEFAULT_LIMIT
	}

	cacheKey := myredis.ClubMembersPageKey(clubId, page, limit)

	// 1. 尝试从缓存获取
	rspString, err := s.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var rsp respond.ClubMembersRespond
		if err := json.Unmarshal([]byte(rspString), &rsp); err == nil {
			return &rsp, nil
		}
		zap.L().Warn("Unmarshal club members cache failed", zap.Uint("clubId", clubId), zap.Error(err))
	} else if err != nil {
		zap.L().Error("Get club members cache error", zap.Uint("clubId", clubId), zap.Error(err))
	}

	// 2. 查询数据库
	members, total, err := s.repos.Membership.FindByClubPaged(clubId, page, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	items := make([]respond.MembershipRespond, 0, len(members))
	for i := range members {
		items = append(items, buildMembershipRespond(&members[i]))
	}

	rsp := &respond.ClubMembersRespond{
		Items:      items,
		Pagination: respond.NewPagination(page, limit, total),
	}

	// 3. 异步回写缓存
	s.cache.SubmitTask(func() {
		data, err := json.Marshal(rsp)
		if err != nil {
			zap.L().Error("Marshal club members error", zap.Error(err))
			return
		}
		if err := s.cache.Set(context.Background(), cacheKey, string(data), constants.REDIS_TIMEOUT); err != nil {
			zap.L().Error("Set club members cache error", zap.Error(err))
		}
	})

	return rsp, nil
}

// GetUserClubs 获取用户加入的全部社团（内嵌社团信息）
func (s *membershipService) GetUserClubs(userId string) ([]respond.UserClubRespond, error) {
	memberships, err := s.repos.Membership.FindByUser(userId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.UserClubRespond, 0, len(memberships))
	for i := range memberships {
		m := &memberships[i]
		item := respond.UserClubRespond{
			MembershipRespond: buildMembershipRespond(m),
		}
		if m.Club != nil {
			item.Club = respond.ClubRespond{
				Id:              m.Club.ID,
				Name:            m.Club.Name,
				Description:     m.Club.Description,
				Category:        m.Club.Category,
				MeetingLocation: m.Club.MeetingLocation,
				Image:           m.Club.Image,
				Status:          m.Club.Status,
				CreatedAt:       m.Club.CreatedAt.Format(time.RFC3339),
			}
		}
		rsp = append(rsp, item)
	}
	return rsp, nil
}

// GetMemberRole 查询用户在社团中的角色
func (s *membershipService) GetMemberRole(clubId uint, userId string) (string, error) {
	member, err := s.repos.Membership.FindByUserAndClub(userId, clubId)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return "", errorx.New(errorx.CodeNotFound, "成员记录不存在")
		}
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}
	return member.Role, nil
}

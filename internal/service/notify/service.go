// Package notify 通知服务
// 消费社团事件主题并将每条事件落为一条通知记录
// 事件投递是 at-most-once，允许重复或缺失，这里不做去重
package notify

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"campus_club_server/internal/dao/mysql/repository"
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/dto/respond"
	"campus_club_server/internal/infrastructure/mq"
	"campus_club_server/internal/model"
	"campus_club_server/pkg/constants"
	"campus_club_server/pkg/errorx"
)

// notificationService 通知业务逻辑实现
type notificationService struct {
	repos *repository.Repositories
}

// NewNotificationService 构造函数
func NewNotificationService(repos *repository.Repositories) *notificationService {
	return &notificationService{repos: repos}
}

// HandleEvent 消费一条事件并落库
// 落库失败只记日志，不中断消费循环
func (n *notificationService) HandleEvent(ctx context.Context, event mq.Event) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		zap.L().Error("marshal event payload error",
			zap.String("topic", event.Topic), zap.Error(err))
		return
	}

	notification := model.Notification{
		EventId: event.EventId,
		Topic:   event.Topic,
		Payload: string(payload),
	}
	if err := n.repos.Notification.Create(&notification); err != nil {
		zap.L().Error("save notification error",
			zap.String("topic", event.Topic),
			zap.String("eventId", event.EventId),
			zap.Error(err))
		return
	}

	zap.L().Info("notification saved",
		zap.String("topic", event.Topic),
		zap.String("eventId", event.EventId))
}

// ListNotifications 分页查询通知记录，按时间倒序
func (n *notificationService) ListNotifications(req request.PaginationRequest) (*respond.NotificationListRespond, error) {
	page := req.Page
	if page < 1 {
		page = constants.DEFAULT_PAGE
	}
	limit := req.Limit
	if limit < 1 {
		limit = constants.DEFAULT_LIMIT
	}

	notifications, total, err := n.repos.Notification.ListPaged(page, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	items := make([]respond.NotificationRespond, 0, len(notifications))
	for _, record := range notifications {
		items = append(items, respond.NotificationRespond{
			Id:        record.ID,
			Topic:     record.Topic,
			Payload:   record.Payload,
			CreatedAt: record.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &respond.NotificationListRespond{
		Items:      items,
		Pagination: respond.NewPagination(page, limit, total),
	}, nil
}

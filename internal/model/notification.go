package model

import "gorm.io/gorm"

// Notification 通知记录表
// 通知服务从事件总线消费到的每条事件落一行，payload 为原始 JSON
// 事件投递是 at-most-once 且无序，允许重复或缺失，消费端不做去重
type Notification struct {
	gorm.Model
	EventId string `gorm:"column:event_id;type:char(36);index;comment:事件ID"`
	Topic   string `gorm:"column:topic;type:varchar(50);index;not null;comment:事件主题"`
	Payload string `gorm:"column:payload;type:varchar(2000);comment:事件内容 JSON"`
}

func (Notification) TableName() string {
	return "notification"
}

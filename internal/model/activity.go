package model

import (
	"time"

	"gorm.io/gorm"
)

// Activity 社团活动表
// 每条活动归属唯一社团，社团删除时级联清理
type Activity struct {
	gorm.Model
	ClubId      uint       `gorm:"column:club_id;index;not null;comment:所属社团ID"`
	Title       string     `gorm:"column:title;type:varchar(100);not null;comment:活动标题"`
	Description string     `gorm:"column:description;type:varchar(500);not null;comment:活动描述"`
	StartDate   time.Time  `gorm:"column:start_date;index;not null;comment:开始时间"`
	EndDate     *time.Time `gorm:"column:end_date;comment:结束时间，可为空，非空时不得早于开始时间"`
	Location    string     `gorm:"column:location;type:varchar(200);comment:活动地点"`
	Status      string     `gorm:"column:status;type:varchar(10);default:PENDING;index;comment:状态 PENDING/ACTIVE/INACTIVE/COMPLETED/CANCELLED"`
}

func (Activity) TableName() string {
	return "activity"
}

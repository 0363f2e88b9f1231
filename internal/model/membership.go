package model

import (
	"time"

	"gorm.io/gorm"
)

// Membership 社团成员关联表
// (user_uuid, club_id) 唯一索引保证同一用户在同一社团至多一条成员记录，
// 并发加入靠该约束在存储层串行化，应用层不加锁
type Membership struct {
	gorm.Model
	UserUuid string    `gorm:"column:user_uuid;type:char(20);uniqueIndex:idx_user_club;not null;comment:用户ID"`
	ClubId   uint      `gorm:"column:club_id;uniqueIndex:idx_user_club;index;not null;comment:社团ID"`
	Role     string    `gorm:"column:role;type:varchar(20);default:MEMBER;not null;comment:角色 MEMBER/TREASURER/SECRETARY/VICE_PRESIDENT/PRESIDENT/ADMIN"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime;comment:加入时间"`

	Club *Club `gorm:"foreignKey:ClubId"`
}

func (Membership) TableName() string {
	return "membership"
}

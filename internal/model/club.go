package model

import (
	"gorm.io/gorm"
)

// Club 社团信息表
// Club 拥有 Memberships 与 Activities，删除社团时两者级联清理
type Club struct {
	gorm.Model
	Name            string `gorm:"column:name;type:varchar(100);not null;comment:社团名称"`
	Description     string `gorm:"column:description;type:varchar(500);not null;comment:社团简介"`
	Category        string `gorm:"column:category;type:varchar(20);not null;comment:类别 ACADEMIC/SPORTS/CULTURAL/TECHNOLOGY/SOCIAL"`
	MeetingLocation string `gorm:"column:meeting_location;type:varchar(200);comment:日常活动地点"`
	Image           string `gorm:"column:image;type:varchar(255);comment:封面图引用，可为空"`
	Status          string `gorm:"column:status;type:varchar(10);default:ACTIVE;index;comment:状态 ACTIVE/INACTIVE/PENDING"`

	Memberships []Membership `gorm:"foreignKey:ClubId"`
	Activities  []Activity   `gorm:"foreignKey:ClubId"`
}

func (Club) TableName() string {
	return "club"
}

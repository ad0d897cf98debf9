package models

import "time"

// Review 商品评价表
type Review struct {
	ID                 uint      `gorm:"column:review_id;primaryKey" json:"review_id"`      // 主键
	UserID             *uint     `gorm:"column:user_id;index" json:"user"`                  // 评价用户
	DiamondID          *uint     `gorm:"column:diamond_id;index" json:"diamond"`            // 评价的钻石
	SettingID          *uint     `gorm:"column:setting_id;index" json:"setting"`            // 评价的戒托
	ConfigID           *uint     `gorm:"column:config_id;index" json:"config"`              // 评价的定制方案
	Rating             int       `gorm:"not null;index" json:"rating"`                      // 评分
	Title              string    `gorm:"type:varchar(200)" json:"title"`                    // 标题
	ReviewText         string    `gorm:"type:text" json:"review_text"`                      // 正文
	IsVerifiedPurchase bool      `gorm:"not null" json:"is_verified_purchase"`              // 是否已购买
	HelpfulCount       int       `gorm:"not null;default:0;index" json:"helpful_count"`     // 有用数（只增不减）
	IsApproved         bool      `gorm:"not null;index" json:"is_approved"`                 // 是否审核通过
	CreatedAt          time.Time `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt          time.Time `json:"-"`                                                 // 更新时间

	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}

package models

import (
	"strings"
	"time"
)

// User 用户表
type User struct {
	ID           uint       `gorm:"column:user_id;primaryKey" json:"user_id"`                  // 主键
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`        // 邮箱
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`                        // 密码哈希（不返回给前端）
	FirstName    string     `gorm:"type:varchar(100)" json:"first_name"`                        // 名
	LastName     string     `gorm:"type:varchar(100)" json:"last_name"`                         // 姓
	Phone        string     `gorm:"type:varchar(20)" json:"phone"`                              // 电话
	IsActive     bool       `gorm:"not null;index" json:"is_active"`                            // 是否启用
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login"`                        // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                                    // 创建时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// FullName 返回去除首尾空白的全名
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to one user. Every cart, access and
// purchase query goes through it.
//
//	db.Scopes(db.OwnedBy(userID)).Find(&items)
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Paginate applies offset/limit for 1-based pages. Non-positive values disable paging.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

package specification

import "gorm.io/gorm"

// WithPosts preloads the generated posts relation
type WithPosts struct{}

func (s WithPosts) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Posts")
}

// ByPlatform filters posts by platform
type ByPlatform struct {
	Platform string
}

func (s ByPlatform) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("platform = ?", s.Platform)
}

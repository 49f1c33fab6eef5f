package database

import (
	"context"

	"tailorspace/internal/core/post"

	"gorm.io/gorm"
)

type ReportRepositoryDatabase struct {
	db *gorm.DB
}

func NewReportRepositoryDatabase(db *gorm.DB) *ReportRepositoryDatabase {
	return &ReportRepositoryDatabase{db: db}
}

func (r *ReportRepositoryDatabase) Create(ctx context.Context, rep *post.Report) (*post.Report, error) {
	if err := r.db.WithContext(ctx).Create(rep).Error; err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *ReportRepositoryDatabase) FindByPostID(ctx context.Context, postID uint) ([]*post.Report, error) {
	var reports []*post.Report
	if err := r.db.WithContext(ctx).Where("idPost = ?", postID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

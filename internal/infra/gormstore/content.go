package gormstore

import (
	"context"
	"errors"

	"vastuguru-api/internal/domain/content"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

func (r *ContentRepo) ListSections(ctx context.Context) ([]content.Section, error) {
	var rows []content.Section
	err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error
	return rows, err
}

func (r *ContentRepo) SaveSections(ctx context.Context, sections []content.Section) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range sections {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"subtitle", "updated_at"}),
			}).Create(&sections[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ContentRepo) GetAbout(ctx context.Context) (content.About, error) {
	a := content.EmptyAbout()
	err := r.db.WithContext(ctx).First(&a, a.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return content.EmptyAbout(), nil
	}
	if err != nil {
		return content.About{}, err
	}
	a.Normalize()
	return a, nil
}

func (r *ContentRepo) SaveAbout(ctx context.Context, a *content.About) error {
	a.Normalize()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "services", "customer_care_number", "contact_email", "updated_at"}),
	}).Create(a).Error
}

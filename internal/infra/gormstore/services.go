package gormstore

import (
	"context"
	"errors"

	"vastuguru-api/internal/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

func filteredServicesQuery(db *gorm.DB, f services.Filter) *gorm.DB {
	q := db.Model(&services.Service{})
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.SubCategory != "" {
		q = q.Where("sub_category = ?", f.SubCategory)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	return q
}

func (r *ServiceRepo) List(ctx context.Context, f services.Filter) ([]services.Service, int64, error) {
	f = f.Normalize()

	var total int64
	if err := filteredServicesQuery(r.db.WithContext(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []services.Service
	err := filteredServicesQuery(r.db.WithContext(ctx), f).
		Order("price ASC, created_at ASC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *ServiceRepo) ListAll(ctx context.Context, f services.Filter) ([]services.Service, error) {
	var out []services.Service
	err := filteredServicesQuery(r.db.WithContext(ctx), f.Normalize()).
		Order("price ASC, created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *ServiceRepo) first(ctx context.Context, query string, arg any) (*services.Service, error) {
	var s services.Service
	if err := r.db.WithContext(ctx).Where(query, arg).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// validID reports whether id can address a row of the uuid primary key.
// Postgres rejects other strings with a syntax error instead of no rows.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *ServiceRepo) Get(ctx context.Context, id string) (*services.Service, error) {
	if !validID(id) {
		return nil, services.ErrNotFound
	}
	return r.first(ctx, "id = ?", id)
}

func (r *ServiceRepo) GetBySlug(ctx context.Context, slug string) (*services.Service, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *ServiceRepo) GetByStripePrice(ctx context.Context, priceID string) (*services.Service, error) {
	return r.first(ctx, "stripe_price_id = ?", priceID)
}

func (r *ServiceRepo) Create(ctx context.Context, s *services.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepo) Update(ctx context.Context, s *services.Service) error {
	if !validID(s.ID) {
		return services.ErrNotFound
	}
	res := r.db.WithContext(ctx).Model(&services.Service{}).
		Where("id = ?", s.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return services.ErrNotFound
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&services.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (r *ServiceRepo) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&services.Service{}).Where("slug = ?", slug)
	if exceptID != "" && validID(exceptID) {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

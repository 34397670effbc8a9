// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db}
}

// Models lists every table the store touches, in migration order.
func Models() []any {
	return []any{
		&Location{},
		&Organization{},
		&Person{},
		&Keyword{},
		&DistributionFormat{},
		&Citation{},
		&Resource{},
		&ResourcePerson{},
		&DataResource{},
		&WebService{},
		&ResourceCertification{},
	}
}

func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(Models()...)
}

// hydrated preloads the whole graph the builder and the scorer walk.
func (s *GormStore) hydrated(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Parent").
		Preload("Keywords").
		Preload("People.Person.Organization.Location").
		Preload("DataResources").
		Preload("WebServices").
		Preload("Certifications").
		Preload("DistributionFormats").
		Preload("Citations")
}

func (s *GormStore) Get(ctx context.Context, id uint) (*Resource, error) {
	var r Resource
	err := s.hydrated(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("resource %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *GormStore) GetByUUID(ctx context.Context, id uuid.UUID) (*Resource, error) {
	var r Resource
	err := s.hydrated(ctx).Where("uuid = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveCompleteness writes only the three derived columns.
func (s *GormStore) SaveCompleteness(ctx context.Context, id uint, c Completeness) error {
	res := s.db.WithContext(ctx).Model(&Resource{}).
		Where("id = ?", id).
		Updates(c.Columns())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("resource %d: %w", id, ErrNotFound)
	}
	return nil
}

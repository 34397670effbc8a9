// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fixture

import (
	"context"
	"fmt"

	"inventory/internal/resource"

	"github.com/google/uuid"
)

// MockStore is an in-memory resource.Store.
type MockStore struct {
	data  map[uint]*resource.Resource
	Saved map[uint]resource.Completeness
	Err   error // returned by every call when set
}

func NewMockStore(rs ...*resource.Resource) *MockStore {
	m := &MockStore{
		data:  map[uint]*resource.Resource{},
		Saved: map[uint]resource.Completeness{},
	}
	for _, r := range rs {
		m.data[r.ID] = r
	}
	return m
}

func (m *MockStore) Get(_ context.Context, id uint) (*resource.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.data[id]
	if !ok {
		return nil, fmt.Errorf("resource %d: %w", id, resource.ErrNotFound)
	}
	return r, nil
}

func (m *MockStore) GetByUUID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, r := range m.data {
		if r.UUID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("resource %s: %w", id, resource.ErrNotFound)
}

func (m *MockStore) SaveCompleteness(_ context.Context, id uint, c resource.Completeness) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.data[id]; !ok {
		return fmt.Errorf("resource %d: %w", id, resource.ErrNotFound)
	}
	m.Saved[id] = c
	return nil
}

var _ resource.Store = (*MockStore)(nil)

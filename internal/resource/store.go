// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no resource matches the requested id.
var ErrNotFound = errors.New("resource not found")

// Store loads fully hydrated resources and records the derived
// completeness values. Everything else about persistence lives upstream.
type Store interface {
	Get(ctx context.Context, id uint) (*Resource, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*Resource, error)
	SaveCompleteness(ctx context.Context, id uint, c Completeness) error
}

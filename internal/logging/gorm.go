// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package logging

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SlowQuery is the duration above which a successful query is logged at warn.
const SlowQuery = 500 * time.Millisecond

const pgUniqueViolation = "23505"

// GormLogger routes gorm output through the global zap logger.
type GormLogger struct {
	level logger.LogLevel
	slow  time.Duration
}

func NewGormLogger(level logger.LogLevel) logger.Interface {
	return &GormLogger{level: level, slow: SlowQuery}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &GormLogger{level: level, slow: l.slow}
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		zap.L().Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		zap.L().Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		zap.L().Sugar().Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("duration", elapsed),
	}

	var pgErr *pgconn.PgError
	switch {
	case err == nil && l.slow > 0 && elapsed > l.slow:
		zap.L().Warn("gorm slow query", fields...)
	case err == nil:
		zap.L().Debug("gorm query", fields...)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// surfaced to callers as resource.ErrNotFound
		zap.L().Debug("gorm record not found", fields...)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		zap.L().Info("gorm unique constraint violation",
			append(fields, zap.String("constraint", pgErr.ConstraintName), zap.Error(err))...)
	default:
		zap.L().Warn("gorm query failed", append(fields, zap.Error(err))...)
	}
}

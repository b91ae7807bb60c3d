package storage

import (
	"context"
	"errors"
	"sync"

	"zetanom/domain"

	"gorm.io/gorm"
)

// Store owns the database handle. Every public storage operation runs as a single
// transaction while holding the store lock; a caller that cannot take the lock gets
// domain.ErrDatabaseLocked instead of waiting.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if !s.mu.TryLock() {
		return domain.ErrDatabaseLocked
	}
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Transaction(fn); err != nil {
		return translateError(err)
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translateError(err error) error {
	var de *domain.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrReferenceViolated.Wrap(err)
	default:
		return domain.StorageFault(err)
	}
}

package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oggyb/barchat/internal/db"
)

// GormStore keeps documents in one SQL table through gorm and announces
// writes on a Notifier.
type GormStore struct {
	db       *gorm.DB
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

// NewGormStore binds a store to the given DB connection. A nil notifier
// means in-process notices only.
func NewGormStore(database *gorm.DB, notifier Notifier, log *slog.Logger) *GormStore {
	if notifier == nil {
		notifier = NewLocalNotifier()
	}
	if log == nil {
		log = slog.Default()
	}
	return &GormStore{
		db:       database,
		notifier: notifier,
		log:      log,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func (s *GormStore) WithClock(now func() time.Time) *GormStore {
	s.now = now
	return s
}

func (s *GormStore) GetOnce(ctx context.Context, collection string, q Query) ([]Document, error) {
	var rows []db.Document
	tx, rest := pushDown(s.db.WithContext(ctx).Where("collection = ?", collection), q)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, unavailable("get "+collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		d, err := toDocument(r)
		if err != nil {
			s.log.Warn("skipping undecodable document", "collection", collection, "id", r.ID, "err", err)
			continue
		}
		docs = append(docs, d)
	}
	return rest.apply(docs), nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var row db.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return Document{}, unavailable("get "+collection, err)
	}
	return toDocument(row)
}

func (s *GormStore) Append(ctx context.Context, collection string, fields Fields) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new id: %w", err)
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", collection, err)
	}

	now := s.now()
	row := db.Document{
		Collection: collection,
		ID:         id.String(),
		Data:       datatypes.JSON(data),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", unavailable("append "+collection, err)
	}

	s.publish(ctx, collection)
	return row.ID, nil
}

// Upsert inserts or updates (collection, id).
//
// Behavior:
//   - Missing document → inserted with the given fields.
//   - Existing + Merge → given fields overwrite, other fields are kept.
//   - Existing, no Merge → fields replaced; CreatedAt is kept either way.
func (s *GormStore) Upsert(ctx context.Context, collection, id string, fields Fields, opts UpsertOptions) error {
	now := s.now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row db.Document
		err := tx.Where("collection = ? AND id = ?", collection, id).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			data, err := json.Marshal(fields)
			if err != nil {
				return err
			}
			return tx.Create(&db.Document{
				Collection: collection,
				ID:         id,
				Data:       datatypes.JSON(data),
				CreatedAt:  now,
				UpdatedAt:  now,
			}).Error
		}
		if err != nil {
			return err
		}

		next := fields
		if opts.Merge {
			existing := Fields{}
			if err := json.Unmarshal(row.Data, &existing); err != nil {
				return err
			}
			maps.Copy(existing, fields)
			next = existing
		}
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		return tx.Model(&db.Document{}).
			Where("collection = ? AND id = ?", collection, id).
			Updates(map[string]any{"data": datatypes.JSON(data), "updated_at": now}).Error
	})
	if err != nil {
		return unavailable("upsert "+collection, err)
	}

	s.publish(ctx, collection)
	return nil
}

// DeleteOne removes a document; deleting a missing one is not an error.
func (s *GormStore) DeleteOne(ctx context.Context, collection, id string) error {
	res := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&db.Document{})
	if res.Error != nil {
		return unavailable("delete "+collection, res.Error)
	}
	if res.RowsAffected > 0 {
		s.publish(ctx, collection)
	}
	return nil
}

// Subscribe attaches a listener to the collection's change feed and
// re-runs the query on every notice. Each re-read is the same narrowed
// GetOnce, not a collection scan.
func (s *GormStore) Subscribe(
	ctx context.Context,
	collection string,
	q Query,
	onSnapshot func([]Document),
	onError func(error),
) (func(), error) {
	changes, stopFeed, err := s.notifier.Listen(ctx, collection)
	if err != nil {
		return nil, unavailable("listen "+collection, err)
	}

	lctx, cancel := context.WithCancel(ctx)
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			stopFeed()
		})
	}

	go func() {
		defer unsubscribe()

		deliver := func() bool {
			docs, err := s.GetOnce(lctx, collection, q)
			if lctx.Err() != nil {
				return false
			}
			if err != nil {
				onError(err)
				return false
			}
			onSnapshot(docs)
			return true
		}

		if !deliver() {
			return
		}
		for {
			select {
			case <-lctx.Done():
				return
			case _, ok := <-changes:
				if lctx.Err() != nil {
					return
				}
				if !ok {
					onError(fmt.Errorf("%w: change feed closed for %s", ErrUnavailable, collection))
					return
				}
				if !deliver() {
					return
				}
			}
		}
	}()

	return unsubscribe, nil
}

func (s *GormStore) publish(ctx context.Context, collection string) {
	// the write already landed; a lost notice only delays listeners
	if err := s.notifier.Publish(context.WithoutCancel(ctx), collection); err != nil {
		s.log.Warn("change notice failed", "collection", collection, "err", err)
	}
}

func toDocument(r db.Document) (Document, error) {
	fields := Fields{}
	if err := json.Unmarshal(r.Data, &fields); err != nil {
		return Document{}, fmt.Errorf("decode %s/%s: %w", r.Collection, r.ID, err)
	}
	return Document{
		ID:        r.ID,
		Fields:    fields,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"notification-hub/contract"
	"notification-hub/domain"
	errs "notification-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	notificationPrefix      = "notif:"
	notificationIndexPrefix = "idx:notif:"
	defaultPageLimit        = 20
	maxPageLimit            = 100
)

// NotificationRepository keeps notification records in BadgerDB.
//
// Primary keys are "notif:{user}:{created_at_padded}:{uuid}" so a prefix
// scan per user returns records in creation order. A secondary key
// "idx:notif:{uuid}" points back to the primary key for lookups by id.
type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) NotificationRepository {
	return NotificationRepository{db: db, log: log}
}

var _ contract.INotificationRepository = NotificationRepository{}

// userSegment escapes the user id so "alice" and "alice:x" never share a prefix.
func userSegment(userID domain.UserID) string {
	return url.QueryEscape(string(userID))
}

func userPrefix(userID domain.UserID) []byte {
	return []byte(notificationPrefix + userSegment(userID) + ":")
}

func primaryKey(n domain.Notification) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s",
		notificationPrefix,
		userSegment(n.TargetUserID),
		n.CreatedAt.UnixNano(),
		n.ID,
	))
}

func indexKey(notificationID string) []byte {
	return []byte(notificationIndexPrefix + notificationID)
}

func (r NotificationRepository) Store(n domain.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	bytes, err := json.Marshal(domain.NotificationRecord{Notification: n})
	if err != nil {
		return err
	}
	key := primaryKey(n)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(n.ID.String()), key)
	})
}

// List returns the user's records newest first, filtered then paginated.
// The int result is the number of records matching the filter.
func (r NotificationRepository) List(userID domain.UserID, opts contract.ListOptions) ([]domain.NotificationRecord, int, error) {
	var matching []domain.NotificationRecord
	err := r.db.View(func(txn *badger.Txn) error {
		return scanUser(txn, userID, true, func(_ []byte, rec domain.NotificationRecord) error {
			if opts.UnreadOnly && rec.IsRead() {
				return nil
			}
			if opts.Category != "" && rec.Notification.Category != opts.Category {
				return nil
			}
			matching = append(matching, rec)
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
	}
	page, limit := normalizePage(opts.Page, opts.Limit)
	start := (page - 1) * limit
	if start >= len(matching) {
		return []domain.NotificationRecord{}, len(matching), nil
	}
	end := min(start+limit, len(matching))
	return matching[start:end], len(matching), nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, min(limit, maxPageLimit)
}

// MarkAsRead stamps the record once. Marking an already read record is a no-op.
func (r NotificationRepository) MarkAsRead(userID domain.UserID, notificationID string, at time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, rec, err := getOwned(txn, userID, notificationID)
		if err != nil {
			return err
		}
		if rec.IsRead() {
			return nil
		}
		rec.ReadAt = lo.ToPtr(at.UTC())
		return putRecord(txn, key, rec)
	})
}

func (r NotificationRepository) MarkAllAsRead(userID domain.UserID, at time.Time) (int, error) {
	type pending struct {
		key []byte
		rec domain.NotificationRecord
	}
	var unread []pending
	err := r.db.View(func(txn *badger.Txn) error {
		return scanUser(txn, userID, false, func(key []byte, rec domain.NotificationRecord) error {
			if !rec.IsRead() {
				unread = append(unread, pending{key: key, rec: rec})
			}
			return nil
		})
	})
	if err != nil || len(unread) == 0 {
		return 0, err
	}
	stamp := at.UTC()
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, p := range unread {
		p.rec.ReadAt = &stamp
		bytes, err := json.Marshal(p.rec)
		if err != nil {
			return 0, err
		}
		if err := wb.Set(p.key, bytes); err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	return len(unread), nil
}

func (r NotificationRepository) Delete(userID domain.UserID, notificationID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, _, err := getOwned(txn, userID, notificationID)
		if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(indexKey(notificationID))
	})
}

func (r NotificationRepository) UnreadCount(userID domain.UserID) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		return scanUser(txn, userID, false, func(_ []byte, rec domain.NotificationRecord) error {
			if !rec.IsRead() {
				count++
			}
			return nil
		})
	})
	return count, err
}

func (r NotificationRepository) Stats(userID domain.UserID) (domain.NotificationStats, error) {
	stats := domain.NotificationStats{
		ByCategory: make(map[domain.Category]int),
		ByPriority: make(map[domain.Priority]int),
	}
	err := r.db.View(func(txn *badger.Txn) error {
		return scanUser(txn, userID, false, func(_ []byte, rec domain.NotificationRecord) error {
			stats.Total++
			if !rec.IsRead() {
				stats.Unread++
			}
			stats.ByCategory[rec.Notification.Category]++
			stats.ByPriority[rec.Notification.Priority]++
			return nil
		})
	})
	return stats, err
}

// DeleteReadBefore removes read records created before cutoff, for every
// user. Unread records are kept whatever their age.
func (r NotificationRepository) DeleteReadBefore(cutoff time.Time) (int, error) {
	var keys [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		return scan(txn, []byte(notificationPrefix), false, func(key []byte, rec domain.NotificationRecord) error {
			if rec.IsRead() && rec.Notification.CreatedAt.Before(cutoff) {
				keys = append(keys, key, indexKey(rec.Notification.ID.String()))
			}
			return nil
		})
	})
	if err != nil || len(keys) == 0 {
		return 0, err
	}
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	deleted := len(keys) / 2
	r.log.Debug("Read notifications removed", "count", deleted, "cutoff", cutoff)
	return deleted, nil
}

// Walk visits every stored record, user by user, oldest first.
func (r NotificationRepository) Walk(fn func(key string, rec domain.NotificationRecord) error) error {
	return r.db.View(func(txn *badger.Txn) error {
		return scan(txn, []byte(notificationPrefix), false, func(key []byte, rec domain.NotificationRecord) error {
			return fn(string(key), rec)
		})
	})
}

// DecodeRecord decodes a value written under a "notif:" key.
func DecodeRecord(value []byte) (domain.NotificationRecord, error) {
	var rec domain.NotificationRecord
	err := json.Unmarshal(value, &rec)
	return rec, err
}

func scanUser(txn *badger.Txn, userID domain.UserID, newestFirst bool, fn func(key []byte, rec domain.NotificationRecord) error) error {
	return scan(txn, userPrefix(userID), newestFirst, fn)
}

// scan walks every record under prefix. Keys handed to fn are copies and
// stay valid after the transaction ends.
func scan(txn *badger.Txn, prefix []byte, newestFirst bool, fn func(key []byte, rec domain.NotificationRecord) error) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix
	options.Reverse = newestFirst
	it := txn.NewIterator(options)
	defer it.Close()

	seek := prefix
	if newestFirst {
		// Past the last padded timestamp of the prefix.
		seek = append(append([]byte{}, prefix...), 0xFF)
	}
	for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var rec domain.NotificationRecord
		if err := item.Value(func(value []byte) (err error) {
			rec, err = DecodeRecord(value)
			return err
		}); err != nil {
			return fmt.Errorf("decode %s: %w", item.Key(), err)
		}
		if err := fn(item.KeyCopy(nil), rec); err != nil {
			return err
		}
	}
	return nil
}

// getOwned resolves a notification id through the index and checks that
// the record belongs to userID. Someone else's record is reported as missing.
func getOwned(txn *badger.Txn, userID domain.UserID, notificationID string) ([]byte, domain.NotificationRecord, error) {
	var rec domain.NotificationRecord
	item, err := txn.Get(indexKey(notificationID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, rec, fmt.Errorf("%w: %s", errs.ErrNotificationNotFound, notificationID)
	}
	if err != nil {
		return nil, rec, err
	}
	key, err := item.ValueCopy(nil)
	if err != nil {
		return nil, rec, err
	}
	if !strings.HasPrefix(string(key), string(userPrefix(userID))) {
		return nil, rec, fmt.Errorf("%w: %s", errs.ErrNotificationNotFound, notificationID)
	}
	item, err = txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, rec, fmt.Errorf("%w: %s", errs.ErrNotificationNotFound, notificationID)
	}
	if err != nil {
		return nil, rec, err
	}
	err = item.Value(func(value []byte) (err error) {
		rec, err = DecodeRecord(value)
		return err
	})
	return key, rec, err
}

func putRecord(txn *badger.Txn, key []byte, rec domain.NotificationRecord) error {
	bytes, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return txn.Set(key, bytes)
}

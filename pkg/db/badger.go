package db

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/model"
)

const (
	versionPath = "dom/version"
	treePrefix  = "tree/%s/"
	treePath    = "tree/%s/%s" // Tree name + key

	// maxUpdateAttempts bounds retries of conflicting read-modify-write transactions
	maxUpdateAttempts = 10

	lockStripes = 64
)

// BadgerConfig represents BadgerDB configuration parameters
type BadgerConfig struct {
	Truncate bool `toml:"truncate"`
	FileIO   bool `toml:"file_io"`
}

type Badger struct {
	db    *badger.DB
	locks *stripedLock
}

var _ Storage = (*Badger)(nil)

func NewBadger(config *Config) (*Badger, error) {
	var (
		dir = config.Dir
	)

	log.Infof("opening database %q", dir)

	// Make sure database directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "could not mkdir database dir")
	}

	opts := badger.DefaultOptions(dir).
		WithLogger(log.StandardLogger()).
		WithTruncate(true)

	if config.Badger != nil {
		opts.Truncate = config.Badger.Truncate
		if config.Badger.FileIO {
			opts.ValueLogLoadingMode = options.FileIO
		}
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.Update(func(txn *badger.Txn) error {
		if err := setObj(txn, []byte(versionPath), CurrentVersion, false); err != nil && err != model.ErrAlreadyExists {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to read database version")
	}

	return &Badger{db: db, locks: &stripedLock{}}, nil
}

func (b *Badger) Close() error {
	log.Debug("closing database")
	return b.db.Close()
}

func (b *Badger) Version() (int, error) {
	var (
		version = -1
	)

	err := b.db.View(func(txn *badger.Txn) error {
		return getObj(txn, []byte(versionPath), &version)
	})

	return version, err
}

func (b *Badger) Tree(name string) Tree {
	return &badgerTree{db: b.db, locks: b.locks, name: name}
}

type badgerTree struct {
	db    *badger.DB
	locks *stripedLock
	name  string
}

func (t *badgerTree) Contains(_ context.Context, key string) (bool, error) {
	var found bool

	err := t.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(t.key(key))
		switch err {
		case nil:
			found = true
			return nil
		case badger.ErrKeyNotFound:
			return nil
		default:
			return err
		}
	})

	return found, err
}

func (t *badgerTree) Get(_ context.Context, key string) (string, error) {
	var value string

	err := t.db.View(func(txn *badger.Txn) error {
		return getObj(txn, t.key(key), &value)
	})

	return value, err
}

func (t *badgerTree) Put(_ context.Context, key string, value string) error {
	return t.db.Update(func(txn *badger.Txn) error {
		return setObj(txn, t.key(key), value, true)
	})
}

func (t *badgerTree) Delete(_ context.Context, key string) error {
	return t.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(t.key(key))
	})
}

func (t *badgerTree) Update(ctx context.Context, key string, cb func(old *string) *string) error {
	var (
		path = t.key(key)
		err  error
	)

	// Serialize updates of the same key within this process, the conflict
	// retry below covers writers that bypass the lock
	unlock := t.locks.lock(path)
	defer unlock()

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = t.db.Update(func(txn *badger.Txn) error {
			var (
				old   string
				input *string
			)

			if err := getObj(txn, path, &old); err == nil {
				input = &old
			} else if err != model.ErrNotFound {
				return err
			}

			next := cb(input)
			if next == nil {
				if input == nil {
					return nil
				}
				return txn.Delete(path)
			}

			return setObj(txn, path, *next, true)
		})

		// Another transaction touched the key since we read it, replay the callback
		if err != badger.ErrConflict {
			return err
		}

		log.WithFields(log.Fields{
			"tree":    t.name,
			"attempt": attempt,
		}).Debug("transaction conflict, retrying update")
	}

	return errors.Wrapf(err, "failed to update %q after %d attempts", key, maxUpdateAttempts)
}

func (t *badgerTree) Walk(ctx context.Context, cb func(key string, value string) error) error {
	prefix := getKey(treePrefix, t.name)

	return t.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = true
		return iterator(txn, opts, func(item *badger.Item) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var value string
			if err := unmarshalObj(item, &value); err != nil {
				return err
			}

			key := string(item.KeyCopy(nil)[len(prefix):])
			return cb(key, value)
		})
	})
}

func (t *badgerTree) key(key string) []byte {
	return getKey(treePath, t.name, key)
}

// stripedLock is a fixed set of mutexes selected by key hash
type stripedLock struct {
	stripes [lockStripes]sync.Mutex
}

func (l *stripedLock) lock(key []byte) func() {
	h := fnv.New32a()
	_, _ = h.Write(key)

	mu := &l.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

func iterator(txn *badger.Txn, opts badger.IteratorOptions, callback func(item *badger.Item) error) error {
	iter := txn.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		item := iter.Item()

		if err := callback(item); err != nil {
			return err
		}
	}

	return nil
}

func getKey(format string, a ...interface{}) []byte {
	resourcePath := fmt.Sprintf(format, a...)
	fullPath := fmt.Sprintf("dom/v%d/%s", CurrentVersion, resourcePath)

	return []byte(fullPath)
}

func setObj(txn *badger.Txn, key []byte, obj interface{}, overwrite bool) error {
	if !overwrite {
		// Overwrites are not allowed, make sure there is no object with the given key
		_, err := txn.Get(key)
		if err == nil {
			return model.ErrAlreadyExists
		} else if err != badger.ErrKeyNotFound {
			return errors.Wrap(err, "failed to check whether key exists")
		}
	}

	data, err := marshalObj(obj)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize object for key %q", key)
	}

	return txn.Set(key, data)
}

func getObj(txn *badger.Txn, key []byte, out interface{}) error {
	item, err := txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return model.ErrNotFound
		}

		return err
	}

	return unmarshalObj(item, out)
}

func marshalObj(obj interface{}) ([]byte, error) {
	return json.Marshal(obj)
}

func unmarshalObj(item *badger.Item, out interface{}) error {
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

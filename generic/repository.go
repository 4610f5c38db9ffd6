package generic

import (
	"path/filepath"
	"slices"
	"sync"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libkata/entity"
)

// CollectionRepository is a runtime store of entities kept in a collection of type C.
type CollectionRepository[T entity.Entity, C any] interface {
	Save(e T) error
	GetEntityCollection() C
}

type ListRepository[T entity.Entity] interface {
	CollectionRepository[T, []T]
}

// saveInto assigns an id to a new entity and replaces any stored entity with the same uuid.
func saveInto[T entity.Entity](es []T, e T) []T {
	if e.GetID() == nil {
		e.AssignID(entity.NextID())
	}

	idx := slices.IndexFunc(es, func(o T) bool {
		return o.GetUUID() == e.GetUUID()
	})
	if idx >= 0 {
		es[idx] = e

		return es
	}

	return append(es, e)
}

//
//
//

func NewMemListRepository[T entity.Entity](logger l.Wrapper) ListRepository[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &memListRepositoryImpl[T]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "memListRepositoryImpl")),
	}
}

type memListRepositoryImpl[T entity.Entity] struct {
	logger l.Wrapper

	lock     sync.RWMutex
	entities []T
}

func (impl *memListRepositoryImpl[T]) Save(e T) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.entities = saveInto(impl.entities, e)

	return nil
}

func (impl *memListRepositoryImpl[T]) GetEntityCollection() []T {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return append(make([]T, 0, len(impl.entities)), impl.entities...)
}

//
//
//

func NewFileListRepository[T entity.Entity](root, fileName string, storage stg.FileStorage, logger l.Wrapper) ListRepository[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	if fileName == "" {
		fileName = "entities.json"
	}

	return &fileListRepositoryImpl[T]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "fileListRepositoryImpl")),
		entityStorage: mwf.NewMemWithFile[[]T, mwf.Serial, mwf.Lock](
			make([]T, 0), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fileListRepositoryImpl[T entity.Entity] struct {
	logger        l.Wrapper
	entityStorage *mwf.MemWithFile[[]T, mwf.Serial, mwf.Lock]
}

func (impl *fileListRepositoryImpl[T]) Save(e T) error {
	err := impl.entityStorage.Change(func(oldEs []T) ([]T, error) {
		return saveInto(oldEs, e), nil
	})
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("save entity failed")
	}

	return err
}

func (impl *fileListRepositoryImpl[T]) GetEntityCollection() (es []T) {
	impl.entityStorage.Read(func(d []T) {
		es = append(make([]T, 0, len(d)), d...)
	})

	return
}

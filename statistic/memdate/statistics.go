package memdate

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

type Combiner[TotalT, T any] interface {
	Combine(total TotalT, d T) TotalT
}

type CombinerFunc[TotalT, T any] func(total TotalT, d T) TotalT

func (fn CombinerFunc[TotalT, T]) Combine(total TotalT, d T) TotalT {
	return fn(total, d)
}

// Statistics keeps, per key, one running total for every year, quarter, month and day bucket
// that received data. When a file name is set, every change is written through serial; K must
// then be a type the serializer accepts as a map key.
type Statistics[K comparable, TotalT, T any] struct {
	logger   l.Wrapper
	combiner Combiner[TotalT, T]
	loc      *time.Location

	serial   mwf.Serial
	fileName string
	storage  stg.FileStorage

	lock sync.RWMutex
	data map[K]map[string]TotalT
}

func NewStatistics[K comparable, TotalT, T any](combiner Combiner[TotalT, T], loc *time.Location,
	serial mwf.Serial, fileName string, storage stg.FileStorage, logger l.Wrapper) (*Statistics[K, TotalT, T], error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if combiner == nil {
		return nil, commerr.ErrInvalidArgument
	}

	if loc == nil {
		loc = time.Local
	}

	if serial == nil {
		serial = &mwf.JSONSerial{}
	}

	if storage == nil && fileName != "" {
		storage = rawfs.NewFSStorage("")
	}

	s := &Statistics[K, TotalT, T]{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "memDateStatistics")),
		combiner: combiner,
		loc:      loc,
		serial:   serial,
		fileName: fileName,
		storage:  storage,
		data:     make(map[K]map[string]TotalT),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

type Entry[K comparable, T any] struct {
	Key  K
	At   time.Time
	Data T
}

func (s *Statistics[K, TotalT, T]) Add(key K, at time.Time, d T) error {
	return s.AddAll([]Entry[K, T]{{Key: key, At: at, Data: d}})
}

type bucketRef[K comparable] struct {
	key   K
	label string
}

type bucketBackup[TotalT any] struct {
	total  TotalT
	exists bool
}

// AddAll combines every entry and persists once. When persisting fails nothing is kept.
func (s *Statistics[K, TotalT, T]) AddAll(entries []Entry[K, T]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	newKeys := make(map[K]struct{})
	backups := make(map[bucketRef[K]]bucketBackup[TotalT])

	for _, e := range entries {
		buckets, ok := s.data[e.Key]
		if !ok {
			buckets = make(map[string]TotalT)
			s.data[e.Key] = buckets
			newKeys[e.Key] = struct{}{}
		}

		at := e.At.In(s.loc)

		for _, p := range allPeriods {
			label := p.Label(at)
			ref := bucketRef[K]{key: e.Key, label: label}

			total, exists := buckets[label]
			if _, ok = backups[ref]; !ok {
				backups[ref] = bucketBackup[TotalT]{total: total, exists: exists}
			}

			buckets[label] = s.combiner.Combine(total, e.Data)
		}
	}

	err := s.save()
	if err == nil {
		return nil
	}

	s.logger.WithFields(l.ErrorField(err)).Error("save statistics failed")

	for ref, backup := range backups {
		if _, ok := newKeys[ref.key]; ok {
			continue
		}

		if backup.exists {
			s.data[ref.key][ref.label] = backup.total
		} else {
			delete(s.data[ref.key], ref.label)
		}
	}

	for key := range newKeys {
		delete(s.data, key)
	}

	return err
}

func (s *Statistics[K, TotalT, T]) GetOn(key K, p Period, at time.Time) (total TotalT, exists bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	total, exists = s.data[key][p.Label(at.In(s.loc))]

	return
}

func (s *Statistics[K, TotalT, T]) GetYearOn(key K, at time.Time) (TotalT, bool) {
	return s.GetOn(key, PeriodYear, at)
}

func (s *Statistics[K, TotalT, T]) GetQuarterOn(key K, at time.Time) (TotalT, bool) {
	return s.GetOn(key, PeriodQuarter, at)
}

func (s *Statistics[K, TotalT, T]) GetMonthOn(key K, at time.Time) (TotalT, bool) {
	return s.GetOn(key, PeriodMonth, at)
}

func (s *Statistics[K, TotalT, T]) GetDayOn(key K, at time.Time) (TotalT, bool) {
	return s.GetOn(key, PeriodDay, at)
}

func (s *Statistics[K, TotalT, T]) Keys() []K {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := make([]K, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}

	return keys
}

// Export copies every bucket of key, labelled as by Period.Label.
func (s *Statistics[K, TotalT, T]) Export(key K) (map[string]TotalT, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	buckets, ok := s.data[key]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	m := make(map[string]TotalT, len(buckets))
	for label, total := range buckets {
		m[label] = total
	}

	return m, nil
}

func (s *Statistics[K, TotalT, T]) load() error {
	if s.fileName == "" {
		return nil
	}

	d, err := s.storage.ReadFile(s.fileName)
	if err != nil {
		var pathError *os.PathError

		if errors.As(err, &pathError) {
			err = nil
		}

		return err
	}

	var m map[K]map[string]TotalT

	err = s.serial.Unmarshal(d, &m)
	if err != nil {
		return err
	}

	if len(m) > 0 {
		s.data = m
	}

	return nil
}

func (s *Statistics[K, TotalT, T]) save() error {
	if s.fileName == "" {
		return nil
	}

	d, err := s.serial.Marshal(s.data)
	if err != nil {
		return err
	}

	return s.storage.WriteFile(s.fileName, d)
}

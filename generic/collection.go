package generic

import (
	"cmp"
	"fmt"
	"io"
	"reflect"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libkata/entity"
	"github.com/sgostarter/libkata/query"
)

type Sized interface {
	Len() int
}

// ComparableCollection is a slice ordered by its size. Any Sized value can be compared, whatever
// its element type.
type ComparableCollection[E any] []E

func (c ComparableCollection[E]) Len() int {
	return len(c)
}

func (c ComparableCollection[E]) CompareTo(o Sized) int {
	return cmp.Compare(c.Len(), o.Len())
}

//
//
//

func CreatedOnComparator[T entity.Entity]() query.Comparator[T] {
	return func(a, b T) int {
		return a.GetCreatedOn().Compare(b.GetCreatedOn())
	}
}

// Print writes every element of list as a dashed line.
func Print[T any](w io.Writer, list []T) (err error) {
	for _, e := range list {
		if _, err = fmt.Fprintln(w, " - ", e); err != nil {
			return
		}
	}

	return
}

// HasNewEntities reports whether at least one entity was never assigned an id.
func HasNewEntities[T entity.Entity](entities []T) bool {
	return query.AnyMatch(entities, func(e T) bool {
		return e.GetID() == nil
	})
}

func IsValidCollection[T entity.Entity](entities []T, validationPredicate query.Predicate[T]) bool {
	return query.AllMatch(entities, validationPredicate)
}

// HasDuplicates reports whether target's uuid occurs more than once in entities.
func HasDuplicates[T entity.Entity](entities []T, target T) bool {
	return query.Count(entities, func(e T) bool {
		return e.GetUUID() == target.GetUUID()
	}) > 1
}

func FindMax[T any](elements []T, comparator query.Comparator[T]) (T, bool) {
	return query.MaxBy(elements, comparator)
}

func FindMostRecentlyCreatedEntity[T entity.Entity](entities []T) (T, error) {
	return query.MustMaxBy(entities, CreatedOnComparator[T]())
}

// Swap exchanges elements i and j of any slice.
func Swap(elements any, i, j int) error {
	v := reflect.ValueOf(elements)
	if v.Kind() != reflect.Slice {
		return commerr.ErrInvalidArgument
	}

	if i < 0 || i >= v.Len() || j < 0 || j >= v.Len() {
		return commerr.ErrOutOfRange
	}

	reflect.Swapper(elements)(i, j)

	return nil
}

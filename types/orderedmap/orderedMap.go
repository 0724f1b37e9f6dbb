package orderedmap

/*
	Insertion-ordered map used by the option registry. Registration order
	drives both help rendering and positional-slot assignment, so plain maps
	are not an option here.
	NOTE: don't rely on the existence of this package in the future if some
	standard or popular implementation emerges.
*/
import (
	"container/list"
)

// OrderedMap stores key/value pairs and iterates over them in insertion order.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the existing key-value pair
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = keyValue[K, V]{
			key:   key,
			value: val,
		}
		return
	}

	o.store[key] = o.keys.PushBack(keyValue[K, V]{
		key:   key,
		value: val,
	})
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return e.Value.(keyValue[K, V]).value, true
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Iterator points at one keyValue during an insertion-order walk started at Front.
type Iterator[K comparable, V any] struct {
	Key   *K
	Value V
	elem  *list.Element
}

// Front returns an Iterator pointing to the oldest (inserted-first) keyValue
// or nil when the map is empty.
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	return iteratorAt[K, V](o.keys.Front())
}

// Next gets the next keyValue or nil when no more values can be iterated on
func (n *Iterator[K, V]) Next() *Iterator[K, V] {
	return iteratorAt[K, V](n.elem.Next())
}

func iteratorAt[K comparable, V any](e *list.Element) *Iterator[K, V] {
	if e == nil {
		return nil
	}

	kv := e.Value.(keyValue[K, V])

	return &Iterator[K, V]{Key: &kv.key, Value: kv.value, elem: e}
}

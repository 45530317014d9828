// Package memory реализует упорядоченную in-memory коллекцию записей одного типа.
//
// Коллекция не знает о связях между сущностями: она гарантирует только одну запись на id,
// стабильный порядок вставки и проверку обязательных полей. Ссылочную целостность
// обеспечивает слой сервисов.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
)

// Record — ограничение на тип записи коллекции.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
	Clone() T
	Field(key string) (any, bool)
}

// Filter выбирает записи, у которых поле Key равно Equals.
// Для полей-срезов запись подходит, если срез содержит Equals (или все элементы Equals, если это срез).
type Filter struct {
	Key    string
	Equals any
}

// Collection хранит записи типа T в порядке вставки.
type Collection[T Record[T]] struct {
	name     string
	mu       sync.RWMutex
	order    []string
	records  map[string]T
	validate *validator.Validate
	newID    func() string
}

// NewCollection создает пустую коллекцию. name используется в сообщениях об ошибках.
func NewCollection[T Record[T]](name string) *Collection[T] {
	return &Collection[T]{
		name:     name,
		records:  make(map[string]T),
		validate: validator.New(),
		newID:    uuid.NewString,
	}
}

// Name возвращает имя коллекции.
func (c *Collection[T]) Name() string {
	return c.name
}

// Len возвращает количество записей.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// FindMany возвращает все записи, подходящие под все фильтры, в порядке вставки.
func (c *Collection[T]) FindMany(ctx context.Context, filters ...Filter) ([]T, error) {
	const op = "memory.FindMany"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rec := c.records[id]
		if matchAll(rec, filters) {
			result = append(result, rec.Clone())
		}
	}
	return result, nil
}

// FindOne возвращает первую подходящую запись. Отсутствие записи — не ошибка.
func (c *Collection[T]) FindOne(ctx context.Context, filter Filter) (T, bool, error) {
	const op = "memory.FindOne"
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if filter.Key == "id" {
		if id, ok := filter.Equals.(string); ok {
			rec, found := c.records[id]
			if !found {
				return zero, false, nil
			}
			return rec.Clone(), true, nil
		}
	}
	for _, id := range c.order {
		rec := c.records[id]
		if match(rec, filter) {
			return rec.Clone(), true, nil
		}
	}
	return zero, false, nil
}

// Get возвращает запись по id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	return c.FindOne(ctx, Filter{Key: "id", Equals: id})
}

// Create присваивает записи новый id, проверяет обязательные поля и сохраняет её.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	const op = "memory.Create"
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	if err := c.validate.Struct(rec); err != nil {
		return zero, apperr.Validation(err, "%s: invalid %s: %s", op, c.name, err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.newID()
	for _, taken := c.records[id]; taken; _, taken = c.records[id] {
		id = c.newID()
	}
	stored := rec.WithID(id).Clone()
	c.records[id] = stored
	c.order = append(c.order, id)
	return stored.Clone(), nil
}

// Insert сохраняет запись под её собственным id. Используется для заранее известных записей.
func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	const op = "memory.Insert"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.validate.Struct(rec); err != nil {
		return apperr.Validation(err, "%s: invalid %s: %s", op, c.name, err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := rec.RecordID()
	if _, exists := c.records[id]; exists {
		return apperr.Conflict("the %s with id %s already exists", c.name, id)
	}
	c.records[id] = rec.Clone()
	c.order = append(c.order, id)
	return nil
}

// Change применяет patch к копии записи id и заменяет сохранённое значение.
func (c *Collection[T]) Change(ctx context.Context, id string, patch func(*T)) (T, error) {
	const op = "memory.Change"
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[id]
	if !ok {
		return zero, apperr.NotFound("the %s with id %s not found", c.name, id)
	}
	updated := rec.Clone()
	patch(&updated)
	// id менять нельзя
	updated = updated.WithID(id)
	if err := c.validate.Struct(updated); err != nil {
		return zero, apperr.Validation(err, "%s: invalid %s: %s", op, c.name, err.Error())
	}
	c.records[id] = updated
	return updated.Clone(), nil
}

// Delete удаляет запись id и возвращает её.
func (c *Collection[T]) Delete(ctx context.Context, id string) (T, error) {
	const op = "memory.Delete"
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[id]
	if !ok {
		return zero, apperr.NotFound("the %s with id %s not found", c.name, id)
	}
	delete(c.records, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return rec, nil
}

func matchAll[T Record[T]](rec T, filters []Filter) bool {
	for _, f := range filters {
		if !match(rec, f) {
			return false
		}
	}
	return true
}

func match[T Record[T]](rec T, f Filter) bool {
	value, ok := rec.Field(f.Key)
	if !ok {
		return false
	}
	if list, isList := value.([]string); isList {
		switch want := f.Equals.(type) {
		case string:
			return slices.Contains(list, want)
		case []string:
			for _, w := range want {
				if !slices.Contains(list, w) {
					return false
				}
			}
			return true
		default:
			return false
		}
	}
	return reflect.DeepEqual(value, f.Equals)
}

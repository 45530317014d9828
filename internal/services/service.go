// Package services содержит бизнес-логику сервиса: проверки ссылочной целостности при создании
// профилей и постов, каскадное удаление пользователя и управление подписками между пользователями.
//
// Все изменяющие операции выполняются под общим мьютексом, поэтому каскад удаления
// пользователя не пересекается с другими изменениями хранилища. Сброс кеша и публикация
// событий выполняются уже после снятия мьютекса.
package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
	"github.com/magabrotheeeer/member-hub/internal/models"
	"github.com/magabrotheeeer/member-hub/internal/storage"
	"github.com/magabrotheeeer/member-hub/internal/storage/memory"
)

// Collection определяет методы коллекции записей одного типа.
type Collection[T any] interface {
	// FindMany возвращает записи, подходящие под все фильтры, в порядке вставки.
	FindMany(ctx context.Context, filters ...memory.Filter) ([]T, error)
	// FindOne возвращает первую подходящую запись; found=false, если её нет.
	FindOne(ctx context.Context, filter memory.Filter) (T, bool, error)
	// Get возвращает запись по id; found=false, если её нет.
	Get(ctx context.Context, id string) (T, bool, error)
	// Create сохраняет новую запись со свежим id.
	Create(ctx context.Context, rec T) (T, error)
	// Change применяет patch к записи id.
	Change(ctx context.Context, id string, patch func(*T)) (T, error)
	// Delete удаляет запись id и возвращает её.
	Delete(ctx context.Context, id string) (T, error)
}

// Repositories — коллекции всех сущностей.
type Repositories struct {
	Users       Collection[models.User]
	Profiles    Collection[models.Profile]
	Posts       Collection[models.Post]
	MemberTypes Collection[models.MemberType]
}

// FromStorage собирает Repositories из in-memory хранилища.
func FromStorage(s *storage.Storage) Repositories {
	return Repositories{
		Users:       s.Users,
		Profiles:    s.Profiles,
		Posts:       s.Posts,
		MemberTypes: s.MemberTypes,
	}
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значения из кеша по ключам.
	Invalidate(ctx context.Context, keys ...string) error
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Metrics учитывает изменения хранилища.
type Metrics interface {
	ObserveMutation(entity, action string, err error)
	ObserveCascade(step string, count int)
}

// Service — общее ядро для UserService, ProfileService, PostService и MemberTypeService.
type Service struct {
	repos     Repositories
	cache     Cache
	cacheTTL  time.Duration
	publisher Publisher
	metrics   Metrics
	log       *slog.Logger
	now       func() time.Time

	// mu сериализует все изменения; читатели с кэшем берут RLock, чтобы не положить в кэш устаревшую запись.
	mu sync.RWMutex
	// namespace — префикс ключей кеша. Хранилище живёт только в памяти процесса, поэтому
	// записи в Redis от прошлого запуска или пережившие неудачный сброс не должны читаться.
	namespace atomic.Pointer[string]
}

// Option настраивает Service.
type Option func(*Service)

// WithCache включает кэширование записей на время ttl.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithPublisher включает публикацию доменных событий.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithMetrics включает учёт изменений в метриках.
func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New создает Service. Без опций кэш, публикация событий и метрики отключены.
func New(repos Repositories, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repos:     repos,
		cache:     noopCache{},
		cacheTTL:  time.Hour,
		publisher: noopPublisher{},
		metrics:   noopMetrics{},
		log:       log,
		now:       time.Now,
	}
	s.resetCacheNamespace()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Users возвращает операции над пользователями и подписками.
func (s *Service) Users() *UserService { return &UserService{s: s} }

// Profiles возвращает операции над профилями.
func (s *Service) Profiles() *ProfileService { return &ProfileService{s: s} }

// Posts возвращает операции над постами.
func (s *Service) Posts() *PostService { return &PostService{s: s} }

// MemberTypes возвращает операции над типами участников.
func (s *Service) MemberTypes() *MemberTypeService { return &MemberTypeService{s: s} }

func (s *Service) cacheKey(entity, id string) string {
	return *s.namespace.Load() + ":" + entity + ":" + id
}

func (s *Service) resetCacheNamespace() {
	ns := uuid.NewString()
	s.namespace.Store(&ns)
}

// cachedGet читает запись из кеша, а при промахе — из коллекции, и кладёт её в кеш.
func cachedGet[T any](ctx context.Context, s *Service, entity string, repo Collection[T], id string) (T, bool, error) {
	key := s.cacheKey(entity, id)

	var cached T
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found && err == nil {
		return cached, true, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, found, err := repo.Get(ctx, id)
	if err != nil || !found {
		return rec, found, err
	}
	if err := s.cache.Set(ctx, key, rec, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return rec, true, nil
}

// invalidate удаляет ключи записей из кеша. Вызывается после снятия s.mu: запись в кеш
// идёт только под RLock, поэтому устаревшее значение туда уже не попадёт.
// Если удалить ключи не удалось, весь кеш экземпляра сбрасывается сменой префикса.
func (s *Service) invalidate(ctx context.Context, refs ...cacheRef) {
	if len(refs) == 0 {
		return
	}
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, s.cacheKey(ref.entity, ref.id))
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn("failed to remove from cache, dropping cache namespace", slog.Any("keys", keys), sl.Err(err))
		s.resetCacheNamespace()
	}
}

// cacheRef — запись, ключ которой нужно сбросить.
type cacheRef struct {
	entity string
	id     string
}

// publish отправляет событие; ошибка публикации не отменяет уже выполненное изменение.
func (s *Service) publish(ctx context.Context, eventType, entityID string, data any) {
	event := Event{
		Type:       eventType,
		EntityID:   entityID,
		Data:       data,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, eventType, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("type", eventType), sl.Err(err))
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Invalidate(context.Context, ...string) error { return nil }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

type noopMetrics struct{}

func (noopMetrics) ObserveMutation(string, string, error) {}
func (noopMetrics) ObserveCascade(string, int) {}

package cache

import (
	"container/list"
	"context"
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"commercial-portal/internal/database"
	"commercial-portal/internal/metrics"
)

//go:generate mockgen -source=lru.go -destination=./mocks/cache_mock.go -package=mocks Cache

// MenuKey строит ключ кэша меню каталога департамента.
func MenuKey(departmentID int) string {
	return fmt.Sprintf("menu:%d", departmentID)
}

// YMLKey строит ключ кэша YML-выгрузки страны.
func YMLKey(country string) string {
	return fmt.Sprintf("yml:%s", country)
}

// Cache определяет интерфейс для кэширования.
// Контекст добавлен для поддержки сквозной трассировки.
// Delete нужен для инвалидации после импорта.
type Cache interface {
	Set(ctx context.Context, key string, value interface{})
	Get(ctx context.Context, key string) (interface{}, bool)
	Delete(ctx context.Context, key string)
}

// lruCache реализует LRU (Least Recently Used) кэш.
type lruCache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	tracer   trace.Tracer // Для трассировки
}

type cacheItem struct {
	key   string
	value interface{}
}

// NewLRUCache создает новый LRU-кэш с заданной емкостью.
func NewLRUCache(capacity int) Cache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
		tracer:   otel.Tracer("lru-cache"), // Инициализация трейсера
	}
}

func (c *lruCache) Set(ctx context.Context, key string, value interface{}) {
	// Создаем span для трассировки
	_, span := c.tracer.Start(ctx, "Cache.Set")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*cacheItem).value = value
		return
	}

	if c.queue.Len() >= c.capacity && c.capacity > 0 {
		c.removeOldest()
	}

	item := &cacheItem{key: key, value: value}
	element := c.queue.PushFront(item)
	c.items[key] = element

	// Обновляем метрику размера кэша
	metrics.CacheSize.Set(float64(c.queue.Len()))
}

func (c *lruCache) Get(ctx context.Context, key string) (interface{}, bool) {
	// Создаем span для трассировки
	_, span := c.tracer.Start(ctx, "Cache.Get")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		return element.Value.(*cacheItem).value, true
	}

	return nil, false
}

// Delete удаляет ключ; вызывается при инвалидации после импорта.
func (c *lruCache) Delete(ctx context.Context, key string) {
	_, span := c.tracer.Start(ctx, "Cache.Delete")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.Remove(element)
		delete(c.items, key)
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// removeOldest удаляет самый старый элемент (внутренняя функция, мьютекс уже захвачен).
func (c *lruCache) removeOldest() {
	element := c.queue.Back()
	if element != nil {
		item := c.queue.Remove(element).(*cacheItem)
		delete(c.items, item.key)

		// Обновляем метрики
		metrics.CacheEvictions.Inc()
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// WarmUp прогревает кэш меню каталога для всех департаментов.
func WarmUp(ctx context.Context, storage database.Storage, cache Cache) error {
	log.Println("Выполняется прогрев кэша...")

	departments, err := storage.ListDepartments(ctx)
	if err != nil {
		return err
	}
	for _, dep := range departments {
		menu, err := storage.ListCategoryMenu(ctx, dep.ID)
		if err != nil {
			return err
		}
		cache.Set(ctx, MenuKey(dep.ID), menu)
	}

	log.Printf("Кэш прогрет. Загружено меню для %d департаментов.", len(departments))
	return nil
}

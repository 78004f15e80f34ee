package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	db_mocks "commercial-portal/internal/database/mocks"
	"commercial-portal/internal/model"
)

func TestLRUCache_SetAndGet(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	// 1. Добавить первый элемент
	cache.Set(ctx, "key1", "value1")
	val, found := cache.Get(ctx, "key1")
	assertions.True(found)
	assertions.Equal("value1", val)

	// 2. Добавить второй элемент
	cache.Set(ctx, "key2", "value2")
	val, found = cache.Get(ctx, "key2")
	assertions.True(found)
	assertions.Equal("value2", val)

	// 3. Проверить, что оба на месте
	val, found = cache.Get(ctx, "key1")
	assertions.True(found)
	assertions.Equal("value1", val)
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "key1", "value1")
	cache.Set(ctx, "key2", "value2")

	// Добавить третий элемент, "key1" (самый старый) должен вытесниться
	cache.Set(ctx, "key3", "value3")

	_, found := cache.Get(ctx, "key1")
	assertions.False(found, "key1 should be evicted")

	// "key2" и "key3" должны быть на месте
	val, found := cache.Get(ctx, "key2")
	assertions.True(found)
	assertions.Equal("value2", val)

	val, found = cache.Get(ctx, "key3")
	assertions.True(found)
	assertions.Equal("value3", val)
}

func TestLRUCache_UsageUpdatesOrder(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "key1", "value1")
	cache.Set(ctx, "key2", "value2") // "key1" - старый, "key2" - новый

	// 1. Используем "key1", он должен стать самым новым
	cache.Get(ctx, "key1")

	// 2. Добавляем "key3". Теперь "key2" (как самый старый) должен вытесниться
	cache.Set(ctx, "key3", "value3")

	_, found := cache.Get(ctx, "key2")
	assertions.False(found, "key2 should be evicted")

	// "key1" и "key3" на месте
	_, found = cache.Get(ctx, "key1")
	assertions.True(found)
	_, found = cache.Get(ctx, "key3")
	assertions.True(found)
}

func TestLRUCache_UpdateValue(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "key1", "value1")
	val, found := cache.Get(ctx, "key1")
	assertions.True(found)
	assertions.Equal("value1", val)

	// Обновляем значение
	cache.Set(ctx, "key1", "value_new")
	val, found = cache.Get(ctx, "key1")
	assertions.True(found)
	assertions.Equal("value_new", val)
}

func TestLRUCache_Delete(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "key1", "value1")
	cache.Delete(ctx, "key1")

	_, found := cache.Get(ctx, "key1")
	assertions.False(found)

	// Удаление несуществующего ключа не паникует
	cache.Delete(ctx, "missing")
}

func TestLRUCache_ZeroCapacity(t *testing.T) {
	// Кэш с 0 емкостью не должен ничего хранить
	cache := NewLRUCache(0)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "key1", "value1")
	_, found := cache.Get(ctx, "key1")
	assertions.False(found)
}

func TestWarmUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := db_mocks.NewMockStorage(ctrl)
	ctx := context.Background()

	menuRU := []model.CategoryMenuItem{{CategoryID: "CAT10", Name: "Коляски", Level: 1}}
	menuKZ := []model.CategoryMenuItem{{CategoryID: "CAT20", Name: "Кроватки", Level: 1}}

	mockStorage.EXPECT().ListDepartments(ctx).Return([]model.Department{
		{ID: 1, Country: "ru"},
		{ID: 2, Country: "kz"},
	}, nil)
	mockStorage.EXPECT().ListCategoryMenu(ctx, 1).Return(menuRU, nil)
	mockStorage.EXPECT().ListCategoryMenu(ctx, 2).Return(menuKZ, nil)

	cache := NewLRUCache(10)
	err := WarmUp(ctx, mockStorage, cache)
	require.NoError(t, err)

	// Меню обоих департаментов лежит в кэше под своими ключами
	val, found := cache.Get(ctx, MenuKey(1))
	assert.True(t, found)
	assert.Equal(t, menuRU, val)

	val, found = cache.Get(ctx, MenuKey(2))
	assert.True(t, found)
	assert.Equal(t, menuKZ, val)
}

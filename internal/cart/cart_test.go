package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"commercial-portal/internal/database"
	db_mocks "commercial-portal/internal/database/mocks"
	"commercial-portal/internal/model"
	"commercial-portal/internal/queue"
	queue_mocks "commercial-portal/internal/queue/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testUser - активный покупатель без персональной скидки
var testUser = &model.User{
	ID:           7,
	Username:     "buyer",
	DepartmentID: 1,
	IsActive:     true,
}

// setupService - хелпер для инициализации сервиса и моков
func setupService(t *testing.T) (*gomock.Controller, *Service, *db_mocks.MockStorage, *queue_mocks.MockProducer) {
	ctrl := gomock.NewController(t)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	mockProducer := queue_mocks.NewMockProducer(ctrl)
	service := NewService(mockStorage, mockProducer)
	return ctrl, service, mockStorage, mockProducer
}

func TestGetDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12", "12"},
		{"12abc", "12"},
		{"abc", "0"},
		{"", "0"},
		{"007", "007"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GetDigits(tc.in), "вход %q", tc.in)
	}
}

func TestOpenOrder_Existing(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	existing := &model.Order{ID: 42, UserID: testUser.ID}
	mockStorage.EXPECT().ListOpenOrders(gomock.Any(), testUser.ID).Return([]model.Order{*existing}, nil)
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(existing, nil)

	order, err := service.OpenOrder(context.Background(), testUser.ID)

	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
}

func TestOpenOrder_CreatesWhenMissing(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	created := &model.Order{ID: 43, UserID: testUser.ID}
	mockStorage.EXPECT().ListOpenOrders(gomock.Any(), testUser.ID).Return(nil, nil)
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(nil, database.ErrNotFound)
	mockStorage.EXPECT().CreateOpenOrder(gomock.Any(), testUser.ID).Return(created, nil)

	order, err := service.OpenOrder(context.Background(), testUser.ID)

	require.NoError(t, err)
	assert.Equal(t, 43, order.ID)
}

func TestOpenOrder_LostRace(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	winner := &model.Order{ID: 44, UserID: testUser.ID}
	mockStorage.EXPECT().ListOpenOrders(gomock.Any(), testUser.ID).Return(nil, nil)
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(nil, database.ErrNotFound)
	// Параллельный запрос успел создать заказ - вставка падает на уникальности
	mockStorage.EXPECT().CreateOpenOrder(gomock.Any(), testUser.ID).Return(nil, errors.New("duplicate key"))
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(winner, nil)

	order, err := service.OpenOrder(context.Background(), testUser.ID)

	require.NoError(t, err)
	assert.Equal(t, 44, order.ID)
}

func TestOpenOrder_CollapsesDuplicates(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	first := model.Order{ID: 10, UserID: testUser.ID}
	extra := model.Order{ID: 11, UserID: testUser.ID}
	mockStorage.EXPECT().ListOpenOrders(gomock.Any(), testUser.ID).Return([]model.Order{first, extra}, nil)
	// Лишний заказ удаляется, первый выживает
	mockStorage.EXPECT().DeleteOrder(gomock.Any(), 11).Return(nil)
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(&first, nil)

	order, err := service.OpenOrder(context.Background(), testUser.ID)

	require.NoError(t, err)
	assert.Equal(t, 10, order.ID)
}

func TestAddToCart_SnapshotsPrice(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	user := &model.User{ID: 7, DepartmentID: 1, IsActive: true, Discount: dec("10")}
	props := &model.ArticleProperties{
		ArticleID: "ART1",
		Name:      "Коляска",
		Price:     dec("1000"),
		Volume:    dec("0.5"),
		Weight:    dec("12"),
		Barcode:   "4600000000001",
		Company:   "ООО Поставщик",
	}
	order := &model.Order{ID: 42, UserID: user.ID}

	mockStorage.EXPECT().GetArticleProperties(gomock.Any(), 1, "ART1").Return(props, nil)
	mockStorage.EXPECT().ListOpenOrders(gomock.Any(), user.ID).Return([]model.Order{*order}, nil)
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), user.ID).Return(order, nil)
	mockStorage.EXPECT().AddOrderItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item *model.OrderItem) error {
			assert.Equal(t, 42, item.OrderID)
			assert.Equal(t, "ART1", item.ArticleID)
			assert.Equal(t, 3, item.Count)
			// Персональная скидка заморожена в цене строки
			assert.True(t, item.Price.Equal(dec("900")), "получено %s", item.Price)
			assert.True(t, item.FullPrice.Equal(dec("1000")))
			assert.Equal(t, "ООО Поставщик", item.Company)
			return nil
		})

	_, err := service.AddToCart(context.Background(), user, "ART1", 3)
	require.NoError(t, err)
}

func TestAddToCart_InactiveUser(t *testing.T) {
	ctrl, service, _, _ := setupService(t)
	defer ctrl.Finish()

	inactive := &model.User{ID: 7, IsActive: false}

	_, err := service.AddToCart(context.Background(), inactive, "ART1", 1)

	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestAddToCart_UnknownArticle(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().GetArticleProperties(gomock.Any(), 1, "GONE").Return(nil, database.ErrNotFound)

	_, err := service.AddToCart(context.Background(), testUser, "GONE", 1)

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRecalculate(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	order := &model.Order{ID: 42, UserID: testUser.ID}
	own := &model.OrderItem{ID: 1, OrderID: 42, Count: 2}
	zeroed := &model.OrderItem{ID: 2, OrderID: 42, Count: 5}
	foreign := &model.OrderItem{ID: 3, OrderID: 99}

	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(order, nil)
	mockStorage.EXPECT().GetOrderItem(gomock.Any(), 1).Return(own, nil)
	mockStorage.EXPECT().UpdateOrderItemCount(gomock.Any(), 1, 7).Return(nil)
	// Ноль в количестве удаляет строку
	mockStorage.EXPECT().GetOrderItem(gomock.Any(), 2).Return(zeroed, nil)
	mockStorage.EXPECT().DeleteOrderItem(gomock.Any(), 2).Return(nil)
	// Чужая строка пропускается без изменений
	mockStorage.EXPECT().GetOrderItem(gomock.Any(), 3).Return(foreign, nil)

	form := map[string]string{
		"1":       "7шт", // ведущие цифры
		"2":       "0",
		"3":       "5",
		"comment": "не строка заказа",
	}
	err := service.Recalculate(context.Background(), testUser.ID, form)

	require.NoError(t, err)
}

func TestRecalculate_DeleteKeys(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	order := &model.Order{ID: 42, UserID: testUser.ID}
	item := &model.OrderItem{ID: 5, OrderID: 42}

	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(order, nil)
	mockStorage.EXPECT().GetOrderItem(gomock.Any(), 5).Return(item, nil)
	mockStorage.EXPECT().DeleteOrderItem(gomock.Any(), 5).Return(nil)

	err := service.Recalculate(context.Background(), testUser.ID, map[string]string{"del_5": ""})

	require.NoError(t, err)
}

func TestRecalculate_NoOpenOrder(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(nil, database.ErrNotFound)

	err := service.Recalculate(context.Background(), testUser.ID, map[string]string{"1": "2"})

	assert.NoError(t, err)
}

func TestCheckout_SubmitsNotificationJob(t *testing.T) {
	ctrl, service, mockStorage, mockProducer := setupService(t)
	defer ctrl.Finish()

	order := &model.Order{ID: 42, UserID: testUser.ID}
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(order, nil)
	mockStorage.EXPECT().CloseOrder(gomock.Any(), 42, "комментарий", "самовывоз").Return(nil)
	mockProducer.EXPECT().Submit(gomock.Any(), queue.JobSendOrder, queue.OrderPayload{OrderID: 42}).Return(nil)

	closed, err := service.Checkout(context.Background(), testUser.ID, "комментарий", "самовывоз")

	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	assert.Equal(t, "комментарий", closed.Comment)
}

func TestCheckout_QueueFailureDoesNotFail(t *testing.T) {
	ctrl, service, mockStorage, mockProducer := setupService(t)
	defer ctrl.Finish()

	order := &model.Order{ID: 42, UserID: testUser.ID}
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(order, nil)
	mockStorage.EXPECT().CloseOrder(gomock.Any(), 42, "", "").Return(nil)
	// Очередь недоступна - заказ все равно закрыт
	mockProducer.EXPECT().Submit(gomock.Any(), queue.JobSendOrder, gomock.Any()).Return(errors.New("kafka down"))

	closed, err := service.Checkout(context.Background(), testUser.ID, "", "")

	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
}

func TestCheckout_AlreadyClosed(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	order := &model.Order{ID: 42, UserID: testUser.ID}
	mockStorage.EXPECT().GetOpenOrder(gomock.Any(), testUser.ID).Return(order, nil)
	mockStorage.EXPECT().CloseOrder(gomock.Any(), 42, "", "").Return(database.ErrOrderClosed)

	_, err := service.Checkout(context.Background(), testUser.ID, "", "")

	assert.ErrorIs(t, err, database.ErrOrderClosed)
}

func TestTotals(t *testing.T) {
	ctrl, service, mockStorage, _ := setupService(t)
	defer ctrl.Finish()

	items := []model.OrderItem{
		{ID: 1, OrderID: 42, Count: 3, Price: dec("400"), FullPrice: dec("400")},
	}
	department := &model.Department{ID: 1, Country: "by"}
	tiers := []model.DepartmentSale{
		{OrderSum: dec("1000"), Sale: dec("5")},
	}

	mockStorage.EXPECT().ListOrderItems(gomock.Any(), 42).Return(items, nil)
	mockStorage.EXPECT().GetDepartmentByID(gomock.Any(), 1).Return(department, nil)
	mockStorage.EXPECT().ListDepartmentSales(gomock.Any(), 1).Return(tiers, nil)
	mockStorage.EXPECT().GetDeliveryPrice(gomock.Any(), "by").Return(dec("10"), nil)

	totals, gotItems, err := service.Totals(context.Background(), testUser, 42)

	require.NoError(t, err)
	assert.Len(t, gotItems, 1)
	// 1200 со ступенью 5% = 1140, плюс доставка 3*10
	assert.True(t, totals.Sum.Equal(dec("1140")), "получено %s", totals.Sum)
	assert.True(t, totals.TotalWithDelivery.Equal(dec("1170")), "получено %s", totals.TotalWithDelivery)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"commercial-portal/internal/cache"
	cache_mocks "commercial-portal/internal/cache/mocks"
	db_mocks "commercial-portal/internal/database/mocks"
	"commercial-portal/internal/model"
)

// helperTestUser - универсальный тестовый покупатель
var helperTestUser = &model.User{
	ID:           7,
	Username:     "buyer",
	DepartmentID: 1,
	IsActive:     true,
}

// requestWithUser кладет пользователя в контекст запроса, как это делает
// sessionAuth.
func requestWithUser(req *http.Request, user *model.User) *http.Request {
	ctx := context.WithValue(req.Context(), userContextKey, user)
	return req.WithContext(ctx)
}

// withURLParam добавляет chi URL-параметр в контекст запроса.
func withURLParam(req *http.Request, key, value string) *http.Request {
	chiCtx := chi.NewRouteContext()
	chiCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestCatalogMenu_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := cache_mocks.NewMockCache(ctrl)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewCatalogHandler(mockStorage, mockCache)

	menu := []model.CategoryMenuItem{{CategoryID: "CAT1", Name: "Коляски"}}
	mockCache.EXPECT().Get(gomock.Any(), cache.MenuKey(1)).Return(menu, true)
	// БД не трогается
	mockStorage.EXPECT().ListCategoryMenu(gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	req := requestWithUser(httptest.NewRequest("GET", "/api/categories", nil), helperTestUser)

	handler.Menu(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.CategoryMenuItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, menu, got)
}

func TestCatalogMenu_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := cache_mocks.NewMockCache(ctrl)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewCatalogHandler(mockStorage, mockCache)

	menu := []model.CategoryMenuItem{{CategoryID: "CAT1", Name: "Коляски"}}
	mockCache.EXPECT().Get(gomock.Any(), cache.MenuKey(1)).Return(nil, false)
	mockStorage.EXPECT().ListCategoryMenu(gomock.Any(), 1).Return(menu, nil)
	// Промах заполняет кэш
	mockCache.EXPECT().Set(gomock.Any(), cache.MenuKey(1), menu)

	rr := httptest.NewRecorder()
	req := requestWithUser(httptest.NewRequest("GET", "/api/categories", nil), helperTestUser)

	handler.Menu(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewAuthHandler(mockStorage)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: 7, Username: "buyer", PasswordHash: string(hash), IsActive: true}

	mockStorage.EXPECT().GetUserByUsername(gomock.Any(), "buyer").Return(user, nil)
	mockStorage.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session *model.Session) error {
			assert.Equal(t, 7, session.UserID)
			assert.NotEmpty(t, session.Token)
			return nil
		})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login",
		strings.NewReader(`{"username":"buyer","password":"secret"}`))

	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// Cookie сессии установлена
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewAuthHandler(mockStorage)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	user := &model.User{ID: 7, Username: "buyer", PasswordHash: string(hash), IsActive: true}
	mockStorage.EXPECT().GetUserByUsername(gomock.Any(), "buyer").Return(user, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login",
		strings.NewReader(`{"username":"buyer","password":"wrong"}`))

	handler.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewAuthHandler(mockStorage)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	user := &model.User{ID: 7, Username: "buyer", PasswordHash: string(hash), IsActive: false}
	mockStorage.EXPECT().GetUserByUsername(gomock.Any(), "buyer").Return(user, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login",
		strings.NewReader(`{"username":"buyer","password":"secret"}`))

	handler.Login(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestOrderDetail_ForeignOrderHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewOrdersHandler(mockStorage, nil)

	foreign := &model.Order{ID: 42, UserID: 99, IsClosed: true}
	mockStorage.EXPECT().GetOrder(gomock.Any(), 42).Return(foreign, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders/42", nil)
	req = withURLParam(req, "id", "42")
	req = requestWithUser(req, helperTestUser)

	handler.Detail(rr, req)

	// Чужой заказ неотличим от несуществующего
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionAuth_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := db_mocks.NewMockStorage(ctrl)
	server := &Server{storage: mockStorage}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("запрос не должен дойти до обработчика")
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/cart", nil)

	server.sessionAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSessionAuth_InactiveUserLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := db_mocks.NewMockStorage(ctrl)
	server := &Server{storage: mockStorage}

	inactive := &model.User{ID: 7, IsActive: false}
	mockStorage.EXPECT().GetSessionUser(gomock.Any(), "token-1").Return(inactive, nil)
	// Сессия неактивного пользователя удаляется сразу
	mockStorage.EXPECT().DeleteSession(gomock.Any(), "token-1").Return(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("запрос не должен дойти до обработчика")
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "token-1"})

	server.sessionAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestStaffOnly(t *testing.T) {
	server := &Server{}
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	// Обычный покупатель
	rr := httptest.NewRecorder()
	req := requestWithUser(httptest.NewRequest("POST", "/api/imports", nil), helperTestUser)
	server.staffOnly(next).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, called)

	// Сотрудник
	staff := &model.User{ID: 1, IsActive: true, IsStaff: true}
	rr = httptest.NewRecorder()
	req = requestWithUser(httptest.NewRequest("POST", "/api/imports", nil), staff)
	server.staffOnly(next).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}

func TestComplaintStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{model.ComplaintOpened, model.ComplaintInProgress, true},
		{model.ComplaintOpened, model.ComplaintNoAnswer, true},
		{model.ComplaintOpened, model.ComplaintClosed, false},
		{model.ComplaintInProgress, model.ComplaintClosed, true},
		{model.ComplaintInProgress, model.ComplaintNoAnswer, true},
		{model.ComplaintClosed, model.ComplaintInProgress, false},
		{model.ComplaintNoAnswer, model.ComplaintOpened, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.allowed, transitionAllowed(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"commercial-portal/internal/database"
	db_mocks "commercial-portal/internal/database/mocks"
	"commercial-portal/internal/model"
)

// setupImporter - хелпер для инициализации импортера и мока хранилища
func setupImporter(t *testing.T) (*gomock.Controller, *Importer, *db_mocks.MockStorage) {
	ctrl := gomock.NewController(t)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	return ctrl, New(mockStorage), mockStorage
}

var testDepartment = &model.Department{ID: 1, Country: "by"}

func TestImportPrice(t *testing.T) {
	ctrl, importer, mockStorage := setupImporter(t)
	defer ctrl.Finish()

	feed := strings.Join([]string{
		"CAT1;Коляски;;1",
		"ART1;Коляска летняя;VC-1;;CAT1;Коляски;1500,50;1999.99;;10;20;30;0,5;12;;;4600000000001;Описание;;;да;;ООО Поставщик",
		";битая строка без id",
	}, "\n")

	mockStorage.EXPECT().GetDepartmentByCountry(gomock.Any(), "by").Return(testDepartment, nil)
	mockStorage.EXPECT().UnpublishDepartment(gomock.Any(), 1).Return(nil)

	// Строка категории
	mockStorage.EXPECT().UpsertCategory(gomock.Any(), "CAT1", nil).Return(nil)
	mockStorage.EXPECT().UpsertCategoryProperties(gomock.Any(), 1, "CAT1", "Коляски").Return(nil)

	// Товарная строка: сначала родительская категория, затем товар и витрина
	mockStorage.EXPECT().UpsertCategory(gomock.Any(), "CAT1", nil).Return(nil)
	mockStorage.EXPECT().UpsertCategoryProperties(gomock.Any(), 1, "CAT1", "Коляски").Return(nil)
	mockStorage.EXPECT().UpsertArticle(gomock.Any(), "ART1", "CAT1", "VC-1").Return(nil)
	mockStorage.EXPECT().UpsertArticleProperties(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, props *model.ArticleProperties) error {
			assert.Equal(t, 1, props.DepartmentID)
			assert.Equal(t, "ART1", props.ArticleID)
			assert.True(t, props.Price.Equal(dec("1500.50")), "получено %s", props.Price)
			assert.True(t, props.RetailPrice.Equal(dec("1999.99")))
			assert.Equal(t, "ООО Поставщик", props.Company)
			return nil
		})

	// Пересчет дерева после импорта
	mockStorage.EXPECT().ListCategories(gomock.Any()).Return([]model.Category{{ID: "CAT1"}}, nil)
	mockStorage.EXPECT().UpdateCategoryTree(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, categories []model.Category) error {
			require.Len(t, categories, 1)
			assert.Equal(t, 1, categories[0].TreeID)
			return nil
		})

	err := importer.ImportPrice(context.Background(), strings.NewReader(feed), "by", model.EncodingUTF8BOM)

	require.NoError(t, err)
}

func TestImportPrice_UnknownDepartmentFatal(t *testing.T) {
	ctrl, importer, mockStorage := setupImporter(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().GetDepartmentByCountry(gomock.Any(), "zz").Return(nil, database.ErrDepartmentNotFound)

	err := importer.ImportPrice(context.Background(), strings.NewReader(""), "zz", model.EncodingUTF8BOM)

	assert.ErrorIs(t, err, database.ErrDepartmentNotFound)
}

func TestImportNovelty_TwoPass(t *testing.T) {
	ctrl, importer, mockStorage := setupImporter(t)
	defer ctrl.Finish()

	feed := "ART1;что угодно\nART2\n;пусто\n"

	gomock.InOrder(
		// Сначала сброс флага у всей витрины
		mockStorage.EXPECT().ResetArticleFlag(gomock.Any(), 1, "is_new").Return(nil),
		mockStorage.EXPECT().SetArticleFlag(gomock.Any(), 1, "ART1", "is_new").Return(nil),
		mockStorage.EXPECT().SetArticleFlag(gomock.Any(), 1, "ART2", "is_new").Return(nil),
	)

	err := importer.ImportNovelty(context.Background(), strings.NewReader(feed), 1, model.EncodingUTF8BOM)

	require.NoError(t, err)
}

func TestImportSpecial_UsesSpecialFlag(t *testing.T) {
	ctrl, importer, mockStorage := setupImporter(t)
	defer ctrl.Finish()

	mockStorage.EXPECT().ResetArticleFlag(gomock.Any(), 1, "is_special").Return(nil)
	mockStorage.EXPECT().SetArticleFlag(gomock.Any(), 1, "ART9", "is_special").Return(nil)

	err := importer.ImportSpecial(context.Background(), strings.NewReader("ART9\n"), 1, model.EncodingUTF8BOM)

	require.NoError(t, err)
}

func TestImportDebts(t *testing.T) {
	ctrl, importer, mockStorage := setupImporter(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mockStorage.EXPECT().ResetDebts(gomock.Any(), 1).Return(nil),
		mockStorage.EXPECT().AssertDebt(gomock.Any(), 1, "DOC-1").Return(nil),
		mockStorage.EXPECT().AssertDebt(gomock.Any(), 1, "DOC-2").Return(nil),
	)

	err := importer.ImportDebts(context.Background(), strings.NewReader("DOC-1\nDOC-2\n"), 1, model.EncodingUTF8BOM)

	require.NoError(t, err)
}

package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"commercial-portal/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testTiers - типичная лестница объемных скидок департамента
var testTiers = []model.DepartmentSale{
	{OrderSum: dec("0"), Sale: dec("0")},
	{OrderSum: dec("1000"), Sale: dec("5")},
	{OrderSum: dec("5000"), Sale: dec("10")},
}

func TestPriceForUser_NoDiscount(t *testing.T) {
	price := PriceForUser(dec("100"), decimal.Zero)
	assert.True(t, price.Equal(dec("100")))
}

func TestPriceForUser_PersonalDiscount(t *testing.T) {
	// 100 - 7% = 93
	price := PriceForUser(dec("100"), dec("7"))
	assert.True(t, price.Equal(dec("93")), "получено %s", price)
}

func TestBestTierSale(t *testing.T) {
	tests := []struct {
		name string
		sum  string
		want string
	}{
		{"ниже первого порога", "999.99", "0"},
		{"ровно на пороге", "1000", "5"},
		{"между порогами", "1200", "5"},
		{"верхняя ступень", "5000", "10"},
		{"сильно выше", "100000", "10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sale := BestTierSale(testTiers, dec(tc.sum))
			assert.True(t, sale.Equal(dec(tc.want)), "получено %s", sale)
		})
	}
}

func TestBestTierSale_EqualThresholds(t *testing.T) {
	// При равных порогах выигрывает большая скидка
	tiers := []model.DepartmentSale{
		{OrderSum: dec("1000"), Sale: dec("5")},
		{OrderSum: dec("1000"), Sale: dec("7")},
	}
	sale := BestTierSale(tiers, dec("1500"))
	assert.True(t, sale.Equal(dec("7")), "получено %s", sale)
}

func TestCalculate_EmptyOrder(t *testing.T) {
	totals := Calculate(nil, testTiers, decimal.Zero, dec("10"))

	assert.Equal(t, 0, totals.ItemCount)
	assert.True(t, totals.FullSum.IsZero())
	assert.True(t, totals.Sum.IsZero())
	// Деления на ноль нет: скидка нулевая
	assert.True(t, totals.Discount.Sum.IsZero())
	assert.True(t, totals.Discount.Percent.IsZero())
	assert.True(t, totals.TotalWithDelivery.IsZero())
}

func TestCalculate_VolumeDiscount(t *testing.T) {
	items := []model.OrderItem{
		{Count: 3, Price: dec("400"), FullPrice: dec("400")},
	}

	// 1200 попадает на ступень 5%: 1200 - 60 = 1140
	totals := Calculate(items, testTiers, decimal.Zero, decimal.Zero)

	assert.Equal(t, 3, totals.ItemCount)
	assert.True(t, totals.FullSum.Equal(dec("1200")))
	assert.True(t, totals.Sum.Equal(dec("1140")), "получено %s", totals.Sum)
	assert.True(t, totals.Discount.Sum.Equal(dec("60")))
	assert.True(t, totals.Discount.Percent.Equal(dec("5")))
}

func TestCalculate_PersonalDiscountSuppressesVolume(t *testing.T) {
	// Персональная скидка уже заморожена в ценах строк: полная цена 400,
	// цена покупателя 380. Объемная ступень применяться не должна.
	items := []model.OrderItem{
		{Count: 10, Price: dec("380"), FullPrice: dec("400")},
	}

	totals := Calculate(items, testTiers, dec("5"), decimal.Zero)

	assert.True(t, totals.FullSum.Equal(dec("4000")))
	assert.True(t, totals.Sum.Equal(dec("3800")), "получено %s", totals.Sum)
	assert.True(t, totals.Discount.Percent.Equal(dec("5")))
}

func TestCalculate_BelowThreshold(t *testing.T) {
	items := []model.OrderItem{
		{Count: 1, Price: dec("999.99"), FullPrice: dec("999.99")},
	}

	totals := Calculate(items, testTiers, decimal.Zero, decimal.Zero)

	// Порог 1000 не достигнут - скидки нет
	assert.True(t, totals.Sum.Equal(dec("999.99")), "получено %s", totals.Sum)
	assert.True(t, totals.Discount.Sum.IsZero())
}

func TestCalculate_DeliveryPerUnit(t *testing.T) {
	items := []model.OrderItem{
		{Count: 2, Price: dec("100"), FullPrice: dec("100")},
		{Count: 1, Price: dec("50"), FullPrice: dec("50")},
	}

	// Доставка начисляется за каждую единицу: 250 + 3*10 = 280
	totals := Calculate(items, nil, decimal.Zero, dec("10"))

	assert.Equal(t, 3, totals.ItemCount)
	assert.True(t, totals.TotalWithDelivery.Equal(dec("280")), "получено %s", totals.TotalWithDelivery)
}

func TestCalculate_MixedItems(t *testing.T) {
	items := []model.OrderItem{
		{Count: 2, Price: dec("1500.500"), FullPrice: dec("1700")},
		{Count: 1, Price: dec("999.999"), FullPrice: dec("1100")},
	}

	totals := Calculate(items, nil, dec("10"), decimal.Zero)

	assert.True(t, totals.FullSum.Equal(dec("4500")))
	assert.True(t, totals.Sum.Equal(dec("4000.999")), "получено %s", totals.Sum)
	assert.True(t, totals.Discount.Sum.Equal(dec("499.001")))
	// 499.001 / 4500 * 100 = 11.09%
	assert.True(t, totals.Discount.Percent.Equal(dec("11.09")), "получено %s", totals.Discount.Percent)
}

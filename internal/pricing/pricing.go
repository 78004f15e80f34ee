// Package pricing считает стоимость заказа: суммы по снимкам строк,
// объемную скидку департамента, персональную скидку покупателя и доставку.
// Вся арифметика на decimal: цены с точностью 3 знака, проценты — 2.
package pricing

import (
	"github.com/shopspring/decimal"

	"commercial-portal/internal/model"
)

const (
	pricePrecision   = 3
	percentPrecision = 2
)

var hundred = decimal.NewFromInt(100)

// Discount — итог скидки по заказу: абсолютная сумма и процент от полной
// стоимости.
type Discount struct {
	Sum     decimal.Decimal `json:"sum"`
	Percent decimal.Decimal `json:"percent"`
}

// Totals — результат расчета заказа.
type Totals struct {
	// FullSum — сумма по полным (бесскидочным) ценам.
	FullSum decimal.Decimal `json:"full_sum"`
	// Sum — сумма к оплате после скидок.
	Sum decimal.Decimal `json:"sum"`
	// Discount — разница между FullSum и Sum.
	Discount Discount `json:"discount"`
	// TotalWithDelivery — Sum плюс доставка за каждую единицу товара.
	TotalWithDelivery decimal.Decimal `json:"total_with_delivery"`
	// ItemCount — суммарное количество единиц в заказе.
	ItemCount int `json:"item_count"`
}

// PriceForUser возвращает цену товара для покупателя: торговая цена минус
// персональная скидка в процентах. Результат замораживается в снимке строки
// заказа в момент добавления в корзину и дальше не пересчитывается.
func PriceForUser(tradePrice, personalDiscount decimal.Decimal) decimal.Decimal {
	if personalDiscount.IsZero() {
		return tradePrice
	}
	discount := tradePrice.Mul(personalDiscount).Div(hundred)
	return tradePrice.Sub(discount).Round(pricePrecision)
}

// BestTierSale выбирает процент объемной скидки: максимальный порог,
// не превышающий сумму заказа; при равных порогах — большая скидка
// (уникальность (департамент, порог, скидка) гарантируется хранилищем).
// Без подходящей ступени возвращается ноль.
func BestTierSale(tiers []model.DepartmentSale, sum decimal.Decimal) decimal.Decimal {
	best := decimal.Zero
	bestThreshold := decimal.NewFromInt(-1)
	for _, tier := range tiers {
		if tier.OrderSum.GreaterThan(sum) {
			continue
		}
		if tier.OrderSum.GreaterThan(bestThreshold) ||
			(tier.OrderSum.Equal(bestThreshold) && tier.Sale.GreaterThan(best)) {
			best = tier.Sale
			bestThreshold = tier.OrderSum
		}
	}
	return best
}

// Calculate считает итоги заказа по снимкам строк. Персональная скидка
// уже заморожена в ценах строк, поэтому при ее наличии объемная скидка
// департамента не применяется. Пустой заказ дает нулевые итоги без ошибок.
func Calculate(
	items []model.OrderItem,
	tiers []model.DepartmentSale,
	personalDiscount decimal.Decimal,
	deliveryPrice decimal.Decimal,
) Totals {
	var totals Totals
	totals.FullSum = decimal.Zero
	totals.Sum = decimal.Zero

	for _, item := range items {
		count := decimal.NewFromInt(int64(item.Count))
		totals.FullSum = totals.FullSum.Add(item.FullPrice.Mul(count))
		totals.Sum = totals.Sum.Add(item.Price.Mul(count))
		totals.ItemCount += item.Count
	}

	if personalDiscount.IsZero() {
		sale := BestTierSale(tiers, totals.Sum)
		if !sale.IsZero() {
			totals.Sum = totals.Sum.Sub(totals.Sum.Mul(sale).Div(hundred)).Round(pricePrecision)
		}
	}

	totals.Discount = discount(totals.FullSum, totals.Sum)
	totals.TotalWithDelivery = totals.Sum.Add(
		deliveryPrice.Mul(decimal.NewFromInt(int64(totals.ItemCount))),
	).Round(pricePrecision)

	return totals
}

// discount считает абсолютную и процентную скидку. При нулевой полной
// сумме деление не выполняется — скидка нулевая.
func discount(fullSum, sum decimal.Decimal) Discount {
	d := Discount{Sum: fullSum.Sub(sum), Percent: decimal.Zero}
	if fullSum.IsZero() {
		d.Sum = decimal.Zero
		return d
	}
	d.Percent = d.Sum.Mul(hundred).Div(fullSum).Round(percentPrecision)
	return d
}

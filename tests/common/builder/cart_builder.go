//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/cart"
	reqdto "cosme-store/internal/handler/dto/request"
)

type CartBuilder struct {
	Items []cart.LineItem
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

func (b *CartBuilder) WithLine(unitPrice string, quantity int) *CartBuilder {
	b.Items = append(b.Items, cart.LineItem{
		ProductID:  uuid.New(),
		CategoryID: uuid.New(),
		UnitPrice:  decimal.RequireFromString(unitPrice),
		Quantity:   quantity,
	})
	return b
}

func (b *CartBuilder) WithCategoryLine(categoryID uuid.UUID, unitPrice string, quantity int) *CartBuilder {
	b.Items = append(b.Items, cart.LineItem{
		ProductID:  uuid.New(),
		CategoryID: categoryID,
		UnitPrice:  decimal.RequireFromString(unitPrice),
		Quantity:   quantity,
	})
	return b
}

func (b *CartBuilder) WithProductLine(productID uuid.UUID, unitPrice string, quantity int) *CartBuilder {
	b.Items = append(b.Items, cart.LineItem{
		ProductID:  productID,
		CategoryID: uuid.New(),
		UnitPrice:  decimal.RequireFromString(unitPrice),
		Quantity:   quantity,
	})
	return b
}

func (b *CartBuilder) BuildSnapshot() (cart.Snapshot, error) {
	return cart.NewSnapshot(b.Items)
}

func (b *CartBuilder) MustBuild() cart.Snapshot {
	snapshot, err := b.BuildSnapshot()
	if err != nil {
		panic("cart builder: " + err.Error())
	}
	return snapshot
}

func (b *CartBuilder) buildItemDTOs() []reqdto.CartItemRequest {
	items := make([]reqdto.CartItemRequest, len(b.Items))
	for i, line := range b.Items {
		items[i] = reqdto.CartItemRequest{
			ProductID:  line.ProductID,
			CategoryID: line.CategoryID,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		}
	}
	return items
}

func (b *CartBuilder) BuildQuoteRequestDTO(couponCode *string) reqdto.QuoteCartRequest {
	return reqdto.QuoteCartRequest{
		Items:      b.buildItemDTOs(),
		CouponCode: couponCode,
	}
}

func (b *CartBuilder) BuildPlaceOrderRequestDTO(couponCode *string) reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		Items:      b.buildItemDTOs(),
		CouponCode: couponCode,
	}
}

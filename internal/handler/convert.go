package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/address"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notification"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/pricing"
	"github.com/xenking/storefront/internal/domain/product"
)

// money converts an amount for the response, rounded to paise.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// amount reads a money value sent either as a number or a decimal string.
func amount(a oas.Amount, field string) (decimal.Decimal, error) {
	if v, ok := a.GetFloat64(); ok {
		return decimal.NewFromFloat(v), nil
	}
	s := strings.TrimSpace(a.String)
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &fieldError{Field: field}
	}
	return v, nil
}

func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func toOASCart(c *cart.Cart) oas.Cart {
	items := make([]oas.CartItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		item := oas.CartItem{
			ID:        l.ItemID,
			ProductId: l.ProductID,
			Name:      l.ProductName,
			Price:     l.DisplayPrice,
			TaxRate:   money(l.TaxRate),
			Quantity:  l.Quantity,
		}
		if l.VariantID != "" {
			item.VariantId = oas.NewOptString(l.VariantID)
			item.VariantName = oas.NewOptString(l.VariantName)
		}
		items = append(items, item)
	}
	return oas.Cart{ID: c.ID, Items: items}
}

func toOASQuote(q pricing.Quote, cp *coupon.Coupon) oas.Quote {
	out := oas.Quote{
		Subtotal:    money(q.Subtotal),
		Tax:         money(q.Tax),
		DeliveryFee: money(q.DeliveryFee),
		Discount:    money(q.Discount),
		Total:       money(q.Total),
		Items:       q.Items,
	}
	if cp != nil {
		out.CouponCode = oas.NewOptString(cp.Code)
	}
	return out
}

func toOASCoupon(c *coupon.Coupon) *oas.Coupon {
	out := &oas.Coupon{
		ID:           c.ID,
		Code:         c.Code,
		DiscountType: oas.DiscountType(c.Type),
		Value:        money(c.Value),
		ExpiryDate:   c.ExpiresAt.UTC(),
		IsActive:     c.Active,
		UsedCount:    c.UsedCount,
	}
	if c.UsageLimit != nil {
		out.UsageLimit = oas.NewOptNilInt(*c.UsageLimit)
	} else {
		out.UsageLimit.SetToNull()
	}
	return out
}

func toOASProduct(p *product.Product) *oas.Product {
	return &oas.Product{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.DisplayPrice,
		Stock:  p.Stock,
		IsLive: p.Live,
	}
}

func toOASOrder(o *order.Order) oas.Order {
	s := o.Shipping
	out := oas.Order{
		ID:                o.OrderID,
		OrderId:           o.OrderID,
		CustomerId:        o.CustomerID,
		Status:            oas.OrderStatus(o.Status),
		TotalAmount:       money(o.TotalAmount),
		Subtotal:          money(o.Subtotal),
		Tax:               money(o.Tax),
		DeliveryFee:       money(o.DeliveryFee),
		Discount:          money(o.Discount),
		CouponCode:        optString(o.CouponCode),
		RazorpayOrderId:   o.GatewayOrderID,
		RazorpayPaymentId: o.GatewayPaymentID,
		Shipping: oas.CustomerDetails{
			FullName:  s.FullName,
			ContactNo: s.ContactNo,
			Email:     optString(s.Email),
			Address:   s.Address,
			City:      s.City,
			State:     optString(s.State),
			Pincode:   s.Pincode,
			Country:   s.Country,
		},
		InvoiceUrl: optString(o.InvoiceURL),
		Items:      make([]oas.OrderItem, 0, len(o.Items)),
		CreatedAt:  o.CreatedAt.UTC(),
		UpdatedAt:  o.UpdatedAt.UTC(),
	}
	if o.Status == order.StatusCancelled {
		out.CancelReason = oas.NewOptString(o.CancelReason)
		out.CancelDescription = oas.NewOptString(o.CancelDescription)
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, oas.OrderItem{
			ProductId: it.ProductID,
			VariantId: optString(it.VariantID),
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			Price:     money(it.UnitPrice),
			TaxRate:   money(it.TaxRate),
		})
	}
	return out
}

func toOASOrders(orders []order.Order) []oas.Order {
	out := make([]oas.Order, 0, len(orders))
	for i := range orders {
		out = append(out, toOASOrder(&orders[i]))
	}
	return out
}

func fromOASShipping(d oas.CustomerDetails) order.Shipping {
	return order.Shipping{
		FullName:  d.FullName,
		ContactNo: d.ContactNo,
		Email:     d.Email.Or(""),
		Address:   d.Address,
		City:      d.City,
		State:     d.State.Or(""),
		Pincode:   d.Pincode,
		Country:   d.Country,
	}
}

func toOASNotification(n *notification.Notification) oas.Notification {
	return oas.Notification{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.Read,
		IsPinned:  n.Pinned,
		CreatedAt: n.CreatedAt.UTC(),
	}
}

func toOASAddress(a *address.Address) oas.Address {
	return oas.Address{
		ID:        a.ID,
		Name:      a.Name,
		FullName:  a.FullName,
		ContactNo: a.ContactNo,
		Email:     a.Email,
		Address:   a.Address,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Country:   a.Country,
		IsDefault: a.Default,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
}

func fromOASAddress(in *oas.AddressInput) address.Address {
	return address.Address{
		Name:      in.Name,
		FullName:  in.FullName,
		ContactNo: in.ContactNo,
		Email:     in.Email,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Pincode:   in.Pincode,
		Country:   in.Country,
		Default:   in.IsDefault.Or(false),
	}
}

package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/export"
)

// maxInvoiceBytes bounds an uploaded invoice.
const maxInvoiceBytes = 10 << 20

// ExportOrders renders every order as an XLSX workbook.
func (h *Handler) ExportOrders(ctx context.Context) (*oas.ExportOrdersOKHeaders, error) {
	orders, err := h.Orders.ListAll(ctx, identity(ctx).Admin)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.Orders(&buf, orders); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("orders-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	return &oas.ExportOrdersOKHeaders{
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", name),
		Response:           oas.ExportOrdersOK{Data: &buf},
	}, nil
}

// UploadInvoice attaches the multipart "invoice" file to an order.
func (h *Handler) UploadInvoice(ctx context.Context, req *oas.UploadInvoiceReq, params oas.UploadInvoiceParams) (*oas.Order, error) {
	file := req.Invoice
	if file.Size > maxInvoiceBytes {
		return nil, &fieldError{Field: "invoice"}
	}

	contentType := ""
	if file.Header != nil {
		contentType = file.Header.Get("Content-Type")
	}
	o, err := h.Orders.AttachInvoice(ctx, identity(ctx).Admin, params.ID, order.Invoice{
		Filename:    file.Name,
		ContentType: contentType,
		Body:        io.LimitReader(file.File, maxInvoiceBytes),
	})
	if err != nil {
		return nil, err
	}
	out := toOASOrder(o)
	return &out, nil
}

// SetProductStock sets a product's stock level.
func (h *Handler) SetProductStock(ctx context.Context, req *oas.StockChange, params oas.SetProductStockParams) (*oas.Product, error) {
	p, err := h.Products.SetStock(ctx, params.ID, req.Stock)
	if err != nil {
		return nil, err
	}
	return toOASProduct(p), nil
}

// SetProductLive publishes or hides a product.
func (h *Handler) SetProductLive(ctx context.Context, req *oas.LiveChange, params oas.SetProductLiveParams) (*oas.Product, error) {
	p, err := h.Products.SetLive(ctx, params.ID, req.IsLive)
	if err != nil {
		return nil, err
	}
	return toOASProduct(p), nil
}

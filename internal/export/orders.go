// Package export renders order data as spreadsheets.
package export

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/xenking/storefront/internal/domain/order"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	timeLayout  = "2006-01-02 15:04:05"
	moneyFormat = "#,##0.00"
)

var (
	orderHeaders = []string{
		"Order ID", "Status", "Customer", "Name", "Contact", "Email",
		"Address", "City", "Pincode", "Country",
		"Subtotal", "Tax", "Delivery Fee", "Discount", "Coupon", "Paid Total",
		"Gateway Order", "Gateway Payment", "Invoice", "Cancel Reason", "Created At",
	}
	itemHeaders = []string{"Order ID", "Product ID", "Variant ID", "Product", "Quantity", "Unit Price", "Tax Rate %", "Line Total"}
)

// Orders writes a workbook with an "Orders" sheet and an "Items" sheet.
func Orders(w io.Writer, orders []order.Order) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return errors.Wrap(err, "add orders sheet")
	}
	items, err := file.AddSheet("Items")
	if err != nil {
		return errors.Wrap(err, "add items sheet")
	}
	header(sheet, orderHeaders)
	header(items, itemHeaders)

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.OrderID)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.CustomerID)
		row.AddCell().SetValue(o.Shipping.FullName)
		row.AddCell().SetValue(o.Shipping.ContactNo)
		row.AddCell().SetValue(o.Shipping.Email)
		row.AddCell().SetValue(o.Shipping.Address)
		row.AddCell().SetValue(o.Shipping.City)
		row.AddCell().SetValue(o.Shipping.Pincode)
		row.AddCell().SetValue(o.Shipping.Country)
		money(row, o.Subtotal)
		money(row, o.Tax)
		money(row, o.DeliveryFee)
		money(row, o.Discount)
		row.AddCell().SetValue(o.CouponCode)
		money(row, o.TotalAmount)
		row.AddCell().SetValue(o.GatewayOrderID)
		row.AddCell().SetValue(o.GatewayPaymentID)
		row.AddCell().SetValue(o.InvoiceURL)
		row.AddCell().SetValue(strings.TrimSpace(o.CancelReason + " " + o.CancelDescription))
		row.AddCell().SetValue(o.CreatedAt.Format(timeLayout))

		for _, it := range o.Items {
			r := items.AddRow()
			r.AddCell().SetValue(o.OrderID)
			r.AddCell().SetValue(it.ProductID)
			r.AddCell().SetValue(it.VariantID)
			r.AddCell().SetValue(it.ProductName)
			r.AddCell().SetInt(it.Quantity)
			money(r, it.UnitPrice)
			r.AddCell().SetValue(it.TaxRate.String())
			money(r, it.LineTotal())
		}
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func header(sheet *xlsx.Sheet, titles []string) {
	row := sheet.AddRow()
	for _, t := range titles {
		row.AddCell().SetValue(t)
	}
}

func money(row *xlsx.Row, d decimal.Decimal) {
	row.AddCell().SetFloatWithFormat(d.InexactFloat64(), moneyFormat)
}

package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	appconfig "github.com/smallbiznis/faktur/internal/config"
	"github.com/smallbiznis/faktur/internal/order/domain"
	"github.com/smallbiznis/faktur/internal/pricing"
)

type MarotoProvider struct {
	invoicing *appconfig.InvoicingConfigHolder
}

func New(invoicing *appconfig.InvoicingConfigHolder) Provider {
	return &MarotoProvider{invoicing: invoicing}
}

func (p *MarotoProvider) GenerateInvoice(ctx context.Context, invoice domain.InvoiceView) (io.Reader, error) {
	_ = ctx
	settings := p.invoicing.Get()

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(15,
		col.New(6).Add(
			text.New(fmt.Sprintf("Invoice number: %d", invoice.ID), props.Text{Top: 0}),
			text.New("Date of issue: "+invoice.OrderDate.Format("2006-01-02"), props.Text{Top: 4}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New(settings.SellerName, props.Text{Style: fontstyle.Bold}),
			text.New(settings.SellerAddress, props.Text{Top: 5}),
			text.New(settings.SellerEmail, props.Text{Top: 14}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.CompanyName, props.Text{Top: 5}),
			text.New(invoice.CompanyAddress, props.Text{Top: 9}),
		),
	)

	m.AddRow(10,
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "VAT %", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(15,
		text.NewCol(4, invoice.ProductName, props.Text{Size: 9}),
		text.NewCol(2, fmt.Sprintf("%d", invoice.Quantity), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, pricing.Present(invoice.UnitPrice), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, invoice.VATRate.String(), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, pricing.Present(invoice.TotalPrice.Sub(invoice.VATAmount)), props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "VAT", props.Text{Size: 9}),
		text.NewCol(2, pricing.Present(invoice.VATAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total "+settings.Currency, props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, pricing.Present(invoice.TotalPrice), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

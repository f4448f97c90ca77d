// Package pdf renders finalized invoices as downloadable PDF documents.
package pdf

import (
	"context"
	"io"

	"github.com/smallbiznis/faktur/internal/order/domain"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, invoice domain.InvoiceView) (io.Reader, error)
}

package reports

import (
	"context"
	"time"

	"github.com/smartsell/smartsell-api/internal/application/dto"
)

// SalesReportData todo lo que necesita el generador para armar el reporte:
// encabezado del negocio, resumen y el libro en orden más-reciente-primero.
type SalesReportData struct {
	BusinessName string
	GeneratedAt  time.Time
	Summary      dto.SalesSummaryResponse
	Sales        []dto.SaleResponse
}

// PDFGenerator puerto del motor de PDF (implementado en infrastructure/pdf).
type PDFGenerator interface {
	GenerateSalesReport(ctx context.Context, data *SalesReportData) ([]byte, error)
}

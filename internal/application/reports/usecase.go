// Package reports genera el reporte de ventas descargable del dashboard
// (pantalla de exportación del SPA).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/smartsell/smartsell-api/internal/application/ledger"
)

// UseCase arma los datos del reporte desde el núcleo y delega el PDF al
// generador.
type UseCase struct {
	core         *ledger.Core
	generator    PDFGenerator
	businessName string
}

// NewUseCase construye el caso de uso.
func NewUseCase(core *ledger.Core, generator PDFGenerator, businessName string) *UseCase {
	return &UseCase{core: core, generator: generator, businessName: businessName}
}

// GenerateSalesReport devuelve los bytes del PDF con resumen y libro completo.
func (uc *UseCase) GenerateSalesReport(ctx context.Context) ([]byte, error) {
	data := &SalesReportData{
		BusinessName: uc.businessName,
		GeneratedAt:  time.Now(),
		Summary:      *uc.core.Summarize(),
		Sales:        uc.core.ListSales(),
	}
	out, err := uc.generator.GenerateSalesReport(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return out, nil
}

package analytics

import "github.com/tu-usuario/petshop-pos/internal/application/dto"

// ReportPDFGenerator puerto para la representación imprimible del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(report *dto.ReportDTO, shopName string) ([]byte, error)
}

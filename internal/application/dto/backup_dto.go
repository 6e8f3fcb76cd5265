package dto

import (
	"time"

	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
)

// BackupVersion versión del formato del documento de respaldo.
const BackupVersion = "1.0.0"

// BackupDocument respaldo completo de las tres colecciones. Las entidades van
// con sus tags JSON nativos, así el documento exportado es byte a byte el
// mismo formato que el almacén persiste.
type BackupDocument struct {
	Products     []*entity.Product     `json:"products"`
	Orders       []*entity.Order       `json:"orders"`
	Transactions []*entity.Transaction `json:"transactions"`
	ExportDate   time.Time             `json:"exportDate"`
	Version      string                `json:"version"`
}

// ImportResultDTO resultado de una restauración. ReloadRequired avisa al
// cliente que debe recargar para reflejar el estado restaurado.
type ImportResultDTO struct {
	Products       int  `json:"products"`
	Orders         int  `json:"orders"`
	Transactions   int  `json:"transactions"`
	ReloadRequired bool `json:"reloadRequired"`
}

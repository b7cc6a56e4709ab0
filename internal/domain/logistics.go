package domain

import "time"

// LogisticsTicket tracks one RMA shipment in the logistica table.
type LogisticsTicket struct {
	ID            int64      `json:"id"`
	RMAID         string     `json:"rma_id"`
	CorreoCliente string     `json:"correo_cliente"`
	Producto      string     `json:"producto"`
	Estado        string     `json:"estado"`
	Detalles      string     `json:"detalles"`
	CreatedAt     time.Time  `json:"fecha_creacion"`
	UpdatedAt     *time.Time `json:"fecha_actualizacion"`
}

package domain

import "time"

// Product is one row of the productos table.
type Product struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Categoria   string    `json:"categoria"`
	ImagenURL   string    `json:"imagen_url"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// Evaluation is a product review left by a registered user. Correo is joined
// from the usuarios table when listing.
type Evaluation struct {
	ID          int64     `json:"id"`
	UsuarioID   int64     `json:"usuario_id"`
	ProductoID  int64     `json:"producto_id"`
	Puntuacion  int       `json:"puntuacion"`
	Comentario  string    `json:"comentario"`
	Sugerencias string    `json:"sugerencias"`
	CreatedAt   time.Time `json:"fecha_creacion"`
	Correo      string    `json:"correo,omitempty"`
}

// Vendor is a sales contact exposed by the vendor directory.
type Vendor struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

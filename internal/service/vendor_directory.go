package service

import "github.com/SERMEX0/sermex-backend/internal/domain"

// VendorDirectory serves the static sales-team roster shown in the warranty
// form. The list lives in code, matching how the site manages it today.
type VendorDirectory struct{}

func NewVendorDirectory() *VendorDirectory {
	return &VendorDirectory{}
}

// Vendors returns the sales contacts a warranty claim can be routed to.
func (d *VendorDirectory) Vendors() []domain.Vendor {
	return []domain.Vendor{
		{ID: 1, Nombre: "Efren Castillo", Email: "ecastillo@sermex.mx"},
		{ID: 2, Nombre: "Jhonatan Zavala", Email: "jzavala@sermex.mx"},
		{ID: 3, Nombre: "Osvaldo Guzmán", Email: "oguzman@sermex.mx"},
	}
}

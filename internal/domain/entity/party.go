package entity

import "time"

// Tipos de tercero.
const (
	PartyTypeCustomer = "customer" // cliente
	PartyTypeSupplier = "supplier" // proveedor
)

// Party representa un tercero (cliente o proveedor) de la tienda.
type Party struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	Type      string
	CreatedAt time.Time
}

// DisplayName devuelve "nombres apellidos" para listados y PDF.
func (p *Party) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

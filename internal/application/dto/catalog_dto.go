package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. El catálogo es dueño del ciclo de
// vida; el motor solo muta stock y costo.
type CreateProductRequest struct {
	Name  string          `json:"nombre"`
	Stock decimal.Decimal `json:"stock"`
	Cost  decimal.Decimal `json:"costo"`
	Price decimal.Decimal `json:"precio"`
	Unit  string          `json:"unidad"`
}

// UpdateProductRequest edición de producto.
type UpdateProductRequest struct {
	Name  string          `json:"nombre"`
	Stock decimal.Decimal `json:"stock"`
	Cost  decimal.Decimal `json:"costo"`
	Price decimal.Decimal `json:"precio"`
	Unit  string          `json:"unidad"`
}

// ProductResponse producto con su valuación derivada.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"nombre"`
	Stock      decimal.Decimal `json:"stock"`
	Cost       decimal.Decimal `json:"costo"`
	Price      decimal.Decimal `json:"precio"`
	TotalValue decimal.Decimal `json:"valor_total"`
	Unit       string          `json:"unidad"`
}

// CreatePartyRequest alta de tercero (cliente o proveedor).
type CreatePartyRequest struct {
	FirstName string `json:"nombres"`
	LastName  string `json:"apellidos"`
	Phone     string `json:"telefono"`
	Email     string `json:"correo"`
	Address   string `json:"direccion"`
	Type      string `json:"tipo"` // customer | supplier
}

// PartyResponse tercero.
type PartyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"correo"`
	Address string `json:"direccion"`
	Type    string `json:"tipo"`
}

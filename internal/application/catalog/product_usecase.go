package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	invdomain "github.com/tu-usuario/pos-contable/internal/domain/inventory"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

// ProductUseCase maneja el catálogo de productos. El stock y el costo que
// se fijan aquí son el punto de partida; después solo los mueven los
// documentos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProduct registra un producto. El nombre es único.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "UND"
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Stock:      in.Stock,
		Cost:       in.Cost,
		Price:      in.Price,
		TotalValue: invdomain.Valuation(in.Stock, in.Cost),
		Unit:       unit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("creando producto: %w", err)
	}
	return toProductResponse(product), nil
}

// GetProduct devuelve un producto por id.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts lista el catálogo ordenado por nombre.
func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// UpdateProduct edita un producto. Recalcula el valor total con los
// valores entrantes.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product.Name = in.Name
	product.Stock = in.Stock
	product.Cost = in.Cost
	product.Price = in.Price
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	product.TotalValue = invdomain.Valuation(product.Stock, product.Cost)
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("actualizando producto: %w", err)
	}
	return toProductResponse(product), nil
}

// DeleteProduct borra un producto. Devuelve domain.ErrProductInUse si ya
// aparece en líneas de documento.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// InventoryValue suma la valuación de todo el catálogo.
func (uc *ProductUseCase) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.TotalValue)
	}
	return total.Round(2), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Stock:      p.Stock,
		Cost:       p.Cost,
		Price:      p.Price,
		TotalValue: p.TotalValue,
		Unit:       p.Unit,
	}
}

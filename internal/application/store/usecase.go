package store

import (
	"github.com/shopspring/decimal"

	"github.com/Ilya-HxH/TgBot/internal/domain"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/domain/repository"
)

// UseCase casos de uso del catálogo y el carrito. Sin estado propio: cada
// operación lee fresco de la base (precio vigente, existencia del carrito).
type UseCase struct {
	products  repository.ProductRepository
	cart      repository.CartRepository
	purchases repository.PurchaseRepository
}

// NewUseCase construye el caso de uso de catálogo/carrito.
func NewUseCase(products repository.ProductRepository, cart repository.CartRepository, purchases repository.PurchaseRepository) *UseCase {
	return &UseCase{products: products, cart: cart, purchases: purchases}
}

// ListProducts devuelve el catálogo completo en orden de inserción.
func (uc *UseCase) ListProducts() ([]*entity.Product, error) {
	return uc.products.List()
}

// AddProduct crea un producto. Devuelve ErrInvalidInput si priceText no
// parsea como decimal no negativo.
func (uc *UseCase) AddProduct(name, description, priceText string) (*entity.Product, error) {
	price, err := decimal.NewFromString(priceText)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:        name,
		Description: description,
		Price:       price,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// AddToCart agrega una línea al carrito del usuario. Cada llamada crea una
// fila nueva aunque el producto se repita (sin merge de cantidades).
// Devuelve ErrInvalidInput si quantity < 1 y ErrProductNotFound si el
// producto no existe.
func (uc *UseCase) AddToCart(userID, productID int64, quantity int) (*entity.Product, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	item := &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := uc.cart.Create(item); err != nil {
		return nil, err
	}
	return product, nil
}

// CartItems devuelve el carrito pendiente del usuario con precios vigentes.
func (uc *UseCase) CartItems(userID int64) ([]*entity.CartItem, error) {
	return uc.cart.ListByUser(userID)
}

// Purchases devuelve el historial de compras del usuario, más recientes primero.
func (uc *UseCase) Purchases(userID int64) ([]*entity.Purchase, error) {
	return uc.purchases.ListByUser(userID)
}

package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilya-HxH/TgBot/internal/application/store"
	"github.com/Ilya-HxH/TgBot/internal/domain"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	nextID   int64
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	return r.products, nil
}

type fakeCartRepo struct {
	items  []*entity.CartItem
	nextID int64
}

func (r *fakeCartRepo) Create(item *entity.CartItem) error {
	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, item)
	return nil
}

func (r *fakeCartRepo) ListByUser(userID int64) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) DeleteByUser(userID int64) error {
	var kept []*entity.CartItem
	for _, item := range r.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakePurchaseRepo struct{ purchases []*entity.Purchase }

func (r *fakePurchaseRepo) Create(purchase *entity.Purchase) error {
	r.purchases = append(r.purchases, purchase)
	return nil
}

func (r *fakePurchaseRepo) ListByUser(userID int64) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func setup() (*store.UseCase, *fakeProductRepo, *fakeCartRepo) {
	products := &fakeProductRepo{}
	cart := &fakeCartRepo{}
	return store.NewUseCase(products, cart, &fakePurchaseRepo{}), products, cart
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct
// ──────────────────────────────────────────────────────────────────────────────

// "12.50" parsea y crea exactamente un producto con ese precio.
func TestAddProduct_PrecioDecimal(t *testing.T) {
	uc, repo, _ := setup()

	product, err := uc.AddProduct("Libro", "tapa dura", "12.50")
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Len(t, repo.products, 1)
}

// Precio no numérico o negativo → ErrInvalidInput, nada persistido.
func TestAddProduct_PrecioInvalido(t *testing.T) {
	uc, repo, _ := setup()

	for _, priceText := range []string{"gratis", "", "-1.00", "12,50"} {
		_, err := uc.AddProduct("Libro", "", priceText)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio %q debe ser rechazado", priceText)
	}
	assert.Empty(t, repo.products)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddToCart
// ──────────────────────────────────────────────────────────────────────────────

// Producto existente → línea creada con la cantidad pedida.
func TestAddToCart_CreaLinea(t *testing.T) {
	uc, _, cart := setup()
	_, err := uc.AddProduct("Libro", "", "10.00")
	require.NoError(t, err)

	product, err := uc.AddToCart(7, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Libro", product.Name)

	require.Len(t, cart.items, 1)
	assert.Equal(t, 3, cart.items[0].Quantity)
}

// El mismo producto dos veces → dos filas, sin fusionar cantidades.
func TestAddToCart_RepetidoNoFusiona(t *testing.T) {
	uc, _, cart := setup()
	_, err := uc.AddProduct("Libro", "", "10.00")
	require.NoError(t, err)

	_, err = uc.AddToCart(7, 1, 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(7, 1, 2)
	require.NoError(t, err)

	assert.Len(t, cart.items, 2)
}

// Producto inexistente → ErrProductNotFound y ninguna línea creada.
func TestAddToCart_ProductoInexistente(t *testing.T) {
	uc, _, cart := setup()

	_, err := uc.AddToCart(7, 99, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, cart.items)
}

// Cantidad menor a 1 → ErrInvalidInput.
func TestAddToCart_CantidadInvalida(t *testing.T) {
	uc, _, cart := setup()
	_, err := uc.AddProduct("Libro", "", "10.00")
	require.NoError(t, err)

	for _, qty := range []int{0, -2} {
		_, err := uc.AddToCart(7, 1, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe ser rechazada", qty)
	}
	assert.Empty(t, cart.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListProducts
// ──────────────────────────────────────────────────────────────────────────────

// El catálogo conserva el orden de inserción.
func TestListProducts_OrdenDeInsercion(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.AddProduct("Libro", "", "10.00")
	require.NoError(t, err)
	_, err = uc.AddProduct("Pluma", "", "2.50")
	require.NoError(t, err)

	products, err := uc.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Libro", products[0].Name)
	assert.Equal(t, "Pluma", products[1].Name)
}

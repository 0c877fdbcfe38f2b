package entity

// CartItem una línea del carrito. Cada /add_to_cart crea una fila nueva,
// incluso para el mismo producto: no se fusionan cantidades.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int // siempre >= 1

	// Product viene poblado en las lecturas con join (carrito y checkout),
	// con el precio vigente al momento de la consulta.
	Product *Product
}

package telegram

// Textos fijos de respuesta. Los handlers solo emiten estos mensajes (o
// variantes con fmt.Sprintf); los errores de dominio nunca llegan crudos al chat.
const (
	msgWelcome = "Bienvenido! Usa /login para entrar o /register para registrarte."

	msgRegisterUsage   = "Uso: /register <username> <password> <rol (admin/customer)>"
	msgInvalidRole     = "El rol debe ser 'admin' o 'customer'."
	msgUsernameTaken   = "Ya existe un usuario con ese nombre."
	msgLoginUsage      = "Uso: /login <username> <password>"
	msgBadCredentials  = "Usuario o contraseña incorrectos."
	msgNeedLogin       = "Por favor, inicia sesión con /login."
	msgCatalogEmpty    = "El catálogo está vacío."
	msgAddProductUsage = "Uso: /add_product <nombre> <descripción> <precio>"
	msgOnlyAdmin       = "Solo los administradores pueden agregar productos."
	msgBadPrice        = "El precio debe ser un número no negativo."
	msgAddToCartUsage  = "Uso: /add_to_cart <product_id> <cantidad>"
	msgOnlyCustomer    = "Solo los compradores pueden hacer esta operación."
	msgBadNumbers      = "El ID y la cantidad deben ser números enteros."
	msgBadQuantity     = "La cantidad debe ser al menos 1."
	msgProductNotFound = "No existe un producto con ese ID."
	msgCartEmpty       = "Tu carrito está vacío."
	msgNoPurchases     = "Aún no tienes compras."
	msgUnknownCommand  = "Comando desconocido. Usa /start para ver las opciones."
	msgInternalError   = "Ocurrió un error, inténtalo de nuevo."
)

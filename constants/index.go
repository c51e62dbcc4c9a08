package constants

const (
	ROLE_ADMIN         = "ADMIN"
	ROLE_RECEPCIONISTA = "RECEPCIONISTA"
)

const (
	DATA_INPUT_IS_NOT_NUMBER   = "El identificador debe ser numérico"
	ERROR_INPUT                = "Datos de entrada no válidos"
	ERROR_VALIDATION           = "Error de validación"
	ERROR_INTERNAL_ERROR       = "Error interno del servidor"
	ERROR_PARSE_DATA_TO_LOCALS = "No se pudo leer la entrada validada"
	ERROR_QUERY_DATABASE       = "Error al consultar la base de datos"

	MISSING_LOGIN_INPUT = "Usuario y contraseña son obligatorios"
	INVALID_CREDENTIALS = "Usuario o contraseña incorrectos"
	ACCOUNT_NOT_ACTIVE  = "La cuenta está desactivada"
	INVALID_SESSION     = "Sesión inválida o caducada"
	MISSING_TOKEN       = "Falta el token de acceso"
	INVALID_TOKEN       = "Token de acceso inválido"

	NOT_ADMIN                             = "Solo un administrador puede realizar esta acción"
	ACCOUNT_NOT_FOUND                     = "La cuenta no existe"
	USERNAME_TAKEN                        = "El nombre de usuario ya está en uso"
	CAN_NOT_HASH_PASSWORD                 = "No se pudo cifrar la contraseña"
	NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD = "Las contraseñas no coinciden"

	RESERVATION_NOT_FOUND = "Huésped o habitación no encontrado."
	ROOM_NOT_AVAILABLE    = "La habitación no está disponible."
	CHECKOUT_SUCCESS      = "Check-out registrado correctamente y habitación liberada."
	SERVICE_ALREADY_LINK  = "El servicio ya está asociado a este hotel"
	SERVICE_NOT_LINKED    = "El servicio no está asociado a este hotel"
	GUEST_HAS_NO_ROOM     = "El huésped no tiene una habitación asignada"
)

// Canal Redis de ocupación por habitación: habitacion:<id>
const OCCUPANCY_CHANNEL_PREFIX = "habitacion"

const DEFAULT_PAGE_SIZE = 10

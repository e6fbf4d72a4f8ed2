package web

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tienda-admin/internal/domain/user"
	"tienda-admin/internal/infrastructure/db/postgres"
)

const (
	msgFillAllFields      = "Complete todos los campos."
	msgFillRequired       = "Complete los campos obligatorios (*)."
	msgDBConnection       = "Error de conexión a la base de datos."
	msgInvalidCredentials = "Usuario o contraseña incorrectos."
	msgLoggedOut          = "Sesión cerrada."
	msgUserCreated        = "Usuario creado correctamente."
	msgRegistered         = "Registro exitoso. Bienvenido!"
	msgUserUpdated        = "Usuario actualizado correctamente."
	msgUserDeactivated    = "Usuario dado de baja correctamente."
	msgUserNotFound       = "Usuario no encontrado."
	msgSelfDeactivation   = "No puede darse de baja a sí mismo."
	msgSessionFailed      = "No se pudo iniciar la sesión."

	prefixCreateFailed   = "Error al crear usuario: "
	prefixRegisterFailed = "Error al registrar usuario: "
	prefixUpdateFailed   = "Error al actualizar usuario: "

	descLogin      = "Inicio de sesión exitoso"
	descLogout     = "Cerró sesión"
	descRegister   = "Registró una nueva cuenta"
	descListUsers  = "Consultó lista de usuarios"
	descCreateUser = "Creó usuario: "
	descUpdateUser = "Modificó usuario ID: "
	descDeactivate = "Dio de baja usuario ID: "
)

const (
	fmtUsersTotal   = "Usuarios registrados: %d"
	fmtEntriesShown = "Registros mostrados: %d"
)

// counts are shown with Spanish digit grouping.
var printer = message.NewPrinter(language.Spanish)

func countLabel(format string, n int) string {
	return printer.Sprintf(format, n)
}

// causeOf names a failed write for the user without exposing driver details.
func causeOf(err error) string {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return "el email ya está registrado"
	case errors.Is(err, postgres.ErrUnavailable):
		return "sin conexión a la base de datos"
	default:
		return "error interno"
	}
}

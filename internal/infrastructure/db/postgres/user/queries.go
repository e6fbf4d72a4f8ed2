package user

const (
	userColumns = `id, password, nombre, apellido, email, telefono, direccion, activo, fecha_creacion`

	SelectUsers = `
		SELECT ` + userColumns + `
		FROM usuarios
		ORDER BY id
	`
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM usuarios
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO usuarios (password, nombre, apellido, email, telefono, direccion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING ` + userColumns + `
	`
	// UpdateUserByID never touches id, password or fecha_creacion.
	UpdateUserByID = `
		UPDATE usuarios
		SET nombre = $1,
		    apellido = $2,
		    email = $3,
		    telefono = $4,
		    direccion = $5,
		    activo = $6
		WHERE id = $7
		RETURNING ` + userColumns + `
	`
	DeactivateUserByID = `UPDATE usuarios SET activo = FALSE WHERE id = $1`
)

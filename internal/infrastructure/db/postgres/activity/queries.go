package activity

const (
	InsertRecord = `
		INSERT INTO actividad_usuarios (usuario_id, accion, descripcion)
		VALUES ($1, $2, $3)
	`
	// SelectRecent breaks timestamp ties by id so the newest insert comes first.
	SelectRecent = `
		SELECT a.id, a.usuario_id, u.email, a.accion, a.descripcion, a.fecha
		FROM actividad_usuarios a
		JOIN usuarios u ON a.usuario_id = u.id
		ORDER BY a.fecha DESC, a.id DESC
		LIMIT $1
	`
)

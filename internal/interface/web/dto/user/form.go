package user

type (
	LoginForm struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}
	// Form backs the create, register and edit pages. Password is ignored on edit.
	Form struct {
		Email    string `form:"email"`
		Password string `form:"password"`
		Name     string `form:"nombre"`
		Lastname string `form:"apellido"`
		Phone    string `form:"telefono"`
		Address  string `form:"direccion"`
		Active   string `form:"activo"`
	}
)

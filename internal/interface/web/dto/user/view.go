package user

type (
	View struct {
		ID        int64
		Email     string
		Name      string
		Lastname  string
		Phone     string
		Address   string
		Active    bool
		CreatedAt string
	}
	Views []View
)

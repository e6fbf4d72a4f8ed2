package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/middleware"
)

const (
	viewLogin     = "login.html"
	viewDashboard = "dashboard.html"
	viewUsers     = "usuarios_list.html"
	viewUserForm  = "usuario_form.html"
	viewActivity  = "actividad.html"

	modeNew      = "nuevo"
	modeRegister = "registro"
	modeEdit     = "editar"
)

//go:embed templates/*.html
var templatesFS embed.FS

func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// LoadTemplates installs the embedded views on r.
func LoadTemplates(r *gin.Engine) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	return nil
}

// render drains pending notices into the page so each is shown once.
func render(c *gin.Context, flashes *flash.Store, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Notices"] = flashes.Consume(c)
	if s, ok := middleware.CurrentSession(c); ok {
		data["Session"] = s
	}

	c.HTML(http.StatusOK, name, data)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

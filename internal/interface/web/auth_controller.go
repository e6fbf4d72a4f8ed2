package web

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tienda-admin/internal/application/ports"
	"tienda-admin/internal/application/services"
	"tienda-admin/internal/domain/activity"
	"tienda-admin/internal/domain/user"
	userDTO "tienda-admin/internal/interface/web/dto/user"
	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/middleware"
	"tienda-admin/internal/interface/web/session"
	"tienda-admin/internal/interface/web/validator"
)

type AuthController struct {
	logger          *zap.Logger
	authService     ports.Auth
	userService     ports.UserService
	activityService ports.ActivityService
	sessions        *session.Store
	flashes         *flash.Store
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
	userService ports.UserService,
	activityService ports.ActivityService,
	sessions *session.Store,
	flashes *flash.Store,
) *AuthController {
	ac := &AuthController{
		logger:          logger,
		authService:     authService,
		userService:     userService,
		activityService: activityService,
		sessions:        sessions,
		flashes:         flashes,
	}

	requireSession := middleware.RequireSession(flashes, RouteLogin)

	for _, path := range []string{RouteRoot, RouteLogin} {
		r.GET(path, ac.LoginPageHandler)
		r.POST(path, ac.LoginHandler)
	}
	r.GET(RouteRegister, ac.RegisterPageHandler)
	r.POST(RouteRegister, ac.RegisterHandler)
	r.GET(RouteLogout, requireSession, ac.LogoutHandler)
	r.GET(RouteDashboard, requireSession, ac.DashboardHandler)

	return ac
}

// LoginPageHandler shows the form, or the signed-in user's choices when a session exists.
func (ac *AuthController) LoginPageHandler(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		render(c, ac.flashes, viewLogin, "Ingresar", nil)
		return
	}

	u, err := ac.userService.FindUserByID(c.Request.Context(), s.UserID)
	if err != nil {
		ac.logger.Error("FindUserByID() error", zap.Error(err))
		ac.flashes.Add(c, flash.Danger, msgDBConnection)
	}

	data := gin.H{}
	if u != nil {
		data["User"] = userDTO.ToView(*u)
	}
	render(c, ac.flashes, viewLogin, "Ingresar", data)
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		ac.LoginPageHandler(c)
		return
	}

	var form userDTO.LoginForm
	_ = c.ShouldBind(&form)
	form = validator.NormalizeLogin(form)
	if errs := validator.ValidateLogin(form); errs != nil {
		ac.flashes.Add(c, flash.Warning, msgFillAllFields)
		redirect(c, RouteLogin)
		return
	}

	u, err := ac.authService.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ac.flashes.Add(c, flash.Warning, msgInvalidCredentials)
			redirect(c, RouteLogin)
			return
		}
		ac.logger.Error("Authenticate() error", zap.Error(err))
		ac.flashes.Add(c, flash.Danger, msgDBConnection)
		redirect(c, RouteLogin)
		return
	}

	if !ac.startSession(c, u) {
		redirect(c, RouteLogin)
		return
	}
	ac.activityService.Record(c.Request.Context(), u.ID, activity.ActionLogin, descLogin)

	redirect(c, RouteDashboard)
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	u, err := ac.userService.FindUserByID(c.Request.Context(), s.UserID)
	if err != nil {
		ac.logger.Warn("FindUserByID() error", zap.Error(err))
	}
	if u != nil {
		ac.activityService.Record(c.Request.Context(), u.ID, activity.ActionLogout, descLogout)
	}

	ac.sessions.Clear(c)
	ac.flashes.Add(c, flash.Info, msgLoggedOut)
	redirect(c, RouteLogin)
}

func (ac *AuthController) DashboardHandler(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	u, err := ac.userService.FindUserByID(c.Request.Context(), s.UserID)
	if err != nil {
		ac.logger.Error("FindUserByID() error", zap.Error(err))
		ac.flashes.Add(c, flash.Danger, msgDBConnection)
		redirect(c, RouteLogin)
		return
	}
	if u == nil {
		// the account behind the cookie no longer exists
		ac.sessions.Clear(c)
		ac.flashes.Add(c, flash.Danger, msgUserNotFound)
		redirect(c, RouteLogin)
		return
	}

	render(c, ac.flashes, viewDashboard, "Panel", gin.H{"User": userDTO.ToView(*u)})
}

func (ac *AuthController) RegisterPageHandler(c *gin.Context) {
	render(c, ac.flashes, viewUserForm, "Registro", gin.H{
		"Mode":   modeRegister,
		"Action": RouteRegister,
	})
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var form userDTO.Form
	_ = c.ShouldBind(&form)
	form = validator.NormalizeUser(form)
	if errs := validator.ValidateNewUser(form); errs != nil {
		ac.flashes.Add(c, flash.Warning, msgFillRequired)
		redirect(c, RouteRegister)
		return
	}

	u, err := ac.userService.RegisterUser(c.Request.Context(), userDTO.ToDomainUser(form), form.Password)
	if err != nil {
		if !errors.Is(err, user.ErrEmailAlreadyExists) {
			ac.logger.Error("RegisterUser() error", zap.Error(err))
		}
		ac.flashes.Add(c, flash.Danger, prefixRegisterFailed+causeOf(err))
		redirect(c, RouteRegister)
		return
	}

	if !ac.startSession(c, u) {
		redirect(c, RouteLogin)
		return
	}
	ac.activityService.Record(c.Request.Context(), u.ID, activity.ActionRegister, descRegister)

	ac.flashes.Add(c, flash.Success, msgRegistered)
	redirect(c, RouteDashboard)
}

func (ac *AuthController) startSession(c *gin.Context, u *user.User) bool {
	if err := ac.sessions.Start(c, u); err != nil {
		ac.logger.Error("session Start() error", zap.Error(err), zap.Int64("user_id", int64(u.ID)))
		ac.flashes.Add(c, flash.Danger, msgSessionFailed)
		return false
	}

	return true
}

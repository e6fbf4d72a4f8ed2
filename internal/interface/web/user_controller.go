package web

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tienda-admin/internal/application/ports"
	"tienda-admin/internal/application/services"
	"tienda-admin/internal/domain/activity"
	"tienda-admin/internal/domain/user"
	userDTO "tienda-admin/internal/interface/web/dto/user"
	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/middleware"
	"tienda-admin/internal/interface/web/validator"
)

type UserController struct {
	logger          *zap.Logger
	userService     ports.UserService
	activityService ports.ActivityService
	flashes         *flash.Store
}

func NewUserController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	activityService ports.ActivityService,
	flashes *flash.Store,
) *UserController {
	uc := &UserController{
		logger:          logger,
		userService:     userService,
		activityService: activityService,
		flashes:         flashes,
	}

	g := r.Group("", middleware.RequireSession(flashes, RouteLogin))
	g.GET(RouteUsers, uc.ListUsersHandler)
	g.GET(RouteNewUser, uc.NewUserPageHandler)
	g.POST(RouteNewUser, uc.CreateUserHandler)
	g.GET(RouteEditUser, uc.EditUserPageHandler)
	g.POST(RouteEditUser, uc.UpdateUserHandler)
	g.POST(RouteDeactivateUser, uc.DeactivateUserHandler)

	return uc
}

func (uc *UserController) ListUsersHandler(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		uc.logger.Error("FindUsers() error", zap.Error(err))
		uc.flashes.Add(c, flash.Danger, msgDBConnection)
		redirect(c, RouteDashboard)
		return
	}
	uc.activityService.Record(c.Request.Context(), s.UserID, activity.ActionListUsers, descListUsers)

	render(c, uc.flashes, viewUsers, "Usuarios", gin.H{
		"Users": userDTO.ToViews(users),
		"Total": countLabel(fmtUsersTotal, len(users)),
	})
}

func (uc *UserController) NewUserPageHandler(c *gin.Context) {
	render(c, uc.flashes, viewUserForm, "Nuevo usuario", gin.H{
		"Mode":   modeNew,
		"Action": RouteNewUser,
	})
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	var form userDTO.Form
	_ = c.ShouldBind(&form)
	form = validator.NormalizeUser(form)
	if errs := validator.ValidateNewUser(form); errs != nil {
		uc.flashes.Add(c, flash.Warning, msgFillRequired)
		redirect(c, RouteNewUser)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), s.UserID, userDTO.ToDomainUser(form), form.Password)
	if err != nil {
		if !errors.Is(err, user.ErrEmailAlreadyExists) {
			uc.logger.Error("CreateUser() error", zap.Error(err))
		}
		uc.flashes.Add(c, flash.Danger, prefixCreateFailed+causeOf(err))
		redirect(c, RouteNewUser)
		return
	}
	uc.activityService.Record(c.Request.Context(), s.UserID, activity.ActionCreateUser, descCreateUser+u.Email)

	uc.flashes.Add(c, flash.Success, msgUserCreated)
	redirect(c, RouteUsers)
}

func (uc *UserController) EditUserPageHandler(c *gin.Context) {
	u, ok := uc.loadTarget(c)
	if !ok {
		return
	}

	render(c, uc.flashes, viewUserForm, "Editar usuario", gin.H{
		"Mode":   modeEdit,
		"Action": editUserPath(int64(u.ID)),
		"User":   userDTO.ToView(*u),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	target, ok := uc.loadTarget(c)
	if !ok {
		return
	}
	formPath := editUserPath(int64(target.ID))

	var form userDTO.Form
	_ = c.ShouldBind(&form)
	form = validator.NormalizeUser(form)
	if errs := validator.ValidateEditUser(form); errs != nil {
		uc.flashes.Add(c, flash.Warning, msgFillRequired)
		redirect(c, formPath)
		return
	}

	uDomain := userDTO.ToDomainUser(form)
	uDomain.ID = target.ID

	u, err := uc.userService.UpdateUser(c.Request.Context(), s.UserID, uDomain)
	if err != nil {
		if !errors.Is(err, user.ErrEmailAlreadyExists) {
			uc.logger.Error("UpdateUser() error", zap.Error(err))
		}
		uc.flashes.Add(c, flash.Danger, prefixUpdateFailed+causeOf(err))
		redirect(c, formPath)
		return
	}
	if u == nil {
		uc.flashes.Add(c, flash.Danger, msgUserNotFound)
		redirect(c, RouteUsers)
		return
	}
	uc.activityService.Record(c.Request.Context(), s.UserID, activity.ActionUpdateUser,
		descUpdateUser+strconv.FormatInt(int64(u.ID), 10))

	uc.flashes.Add(c, flash.Success, msgUserUpdated)
	redirect(c, RouteUsers)
}

func (uc *UserController) DeactivateUserHandler(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		uc.flashes.Add(c, flash.Danger, msgUserNotFound)
		redirect(c, RouteUsers)
		return
	}

	err := uc.userService.DeactivateUser(c.Request.Context(), s.UserID, id)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrSelfDeactivation):
		uc.flashes.Add(c, flash.Warning, msgSelfDeactivation)
		redirect(c, RouteUsers)
		return
	case errors.Is(err, user.ErrNotFound):
		uc.flashes.Add(c, flash.Danger, msgUserNotFound)
		redirect(c, RouteUsers)
		return
	default:
		uc.logger.Error("DeactivateUser() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		uc.flashes.Add(c, flash.Danger, msgDBConnection)
		redirect(c, RouteUsers)
		return
	}
	uc.activityService.Record(c.Request.Context(), s.UserID, activity.ActionDeactivate,
		descDeactivate+strconv.FormatInt(int64(id), 10))

	uc.flashes.Add(c, flash.Success, msgUserDeactivated)
	redirect(c, RouteUsers)
}

// loadTarget resolves :id or redirects to the list with a notice.
func (uc *UserController) loadTarget(c *gin.Context) (*user.User, bool) {
	id, ok := validator.ParseID(c.Param("id"))
	if !ok {
		uc.flashes.Add(c, flash.Danger, msgUserNotFound)
		redirect(c, RouteUsers)
		return nil, false
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err), zap.Int64("user_id", int64(id)))
		uc.flashes.Add(c, flash.Danger, msgDBConnection)
		redirect(c, RouteUsers)
		return nil, false
	}
	if u == nil {
		uc.flashes.Add(c, flash.Danger, msgUserNotFound)
		redirect(c, RouteUsers)
		return nil, false
	}

	return u, true
}

package web

import "strconv"

const (
	// auth
	RouteRoot     = "/"
	RouteLogin    = "/login"
	RouteLogout   = "/logout"
	RouteRegister = "/registro"

	RouteDashboard = "/dashboard"

	// users
	RouteUsers          = "/usuarios"
	RouteNewUser        = RouteUsers + "/nuevo"
	RouteEditUser       = RouteUsers + "/:id/editar"
	RouteDeactivateUser = RouteUsers + "/:id/baja"

	RouteActivity = "/actividad"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

func editUserPath(id int64) string {
	return RouteUsers + "/" + strconv.FormatInt(id, 10) + "/editar"
}

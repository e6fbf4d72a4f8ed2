package web

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tienda-admin/internal/application/ports"
	activityDTO "tienda-admin/internal/interface/web/dto/activity"
	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/middleware"
)

type ActivityController struct {
	logger          *zap.Logger
	activityService ports.ActivityService
	flashes         *flash.Store
}

func NewActivityController(
	r *gin.Engine,
	logger *zap.Logger,
	activityService ports.ActivityService,
	flashes *flash.Store,
) *ActivityController {
	ac := &ActivityController{
		logger:          logger,
		activityService: activityService,
		flashes:         flashes,
	}

	r.GET(RouteActivity, middleware.RequireSession(flashes, RouteLogin), ac.ActivityHandler)

	return ac
}

func (ac *ActivityController) ActivityHandler(c *gin.Context) {
	entries, err := ac.activityService.FindRecent(c.Request.Context())
	if err != nil {
		ac.logger.Error("FindRecent() error", zap.Error(err))
		ac.flashes.Add(c, flash.Danger, msgDBConnection)
		redirect(c, RouteDashboard)
		return
	}

	render(c, ac.flashes, viewActivity, "Actividad", gin.H{
		"Entries": activityDTO.ToViews(entries),
		"Total":   countLabel(fmtEntriesShown, len(entries)),
	})
}

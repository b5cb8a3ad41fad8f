package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/mazegen/api/identity"
	"github.com/beka-birhanu/mazegen/maze"
	"github.com/beka-birhanu/mazegen/service"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

// MazeController serves maze generation, stored plans and the caller's settings.
type MazeController struct {
	mazeService i.MazeBuilder
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeBuilder) (*MazeController, error) {
	if ms == nil {
		return nil, service.ErrMissingDependency
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.build)
		mazes.GET("/:ID", mc.plan)
	}

	route.GET("/settings", mc.getSettings)
	route.PUT("/settings", mc.saveSettings)
}

// build generates a maze and returns its placement plan.
func (mc *MazeController) build(ctx *gin.Context) {
	ownerID, ok := identity.AccountID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request BuildRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var s settings.Settings
	if request.Settings != nil {
		s = *request.Settings
	} else {
		saved, err := mc.mazeService.Settings(timeoutCtx, ownerID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading settings"})
			return
		}
		s = saved
	}

	var opts []maze.Option
	if request.Seed != nil {
		opts = append(opts, maze.WithSeed(*request.Seed))
	}

	plan, err := mc.mazeService.Build(timeoutCtx, ownerID, s, opts...)
	if err != nil {
		writeError(ctx, err, "error while building maze")
		return
	}

	ctx.JSON(http.StatusCreated, newPlanResponse(plan))
}

// plan returns a stored plan of the caller.
func (mc *MazeController) plan(ctx *gin.Context) {
	ownerID, ok := identity.AccountID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	planID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	plan, err := mc.mazeService.Plan(timeoutCtx, ownerID, planID)
	if err != nil {
		writeError(ctx, err, "error while loading plan")
		return
	}

	ctx.JSON(http.StatusOK, newPlanResponse(plan))
}

// getSettings returns the caller's saved settings, or the defaults.
func (mc *MazeController) getSettings(ctx *gin.Context) {
	ownerID, ok := identity.AccountID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	s, err := mc.mazeService.Settings(timeoutCtx, ownerID)
	if err != nil {
		writeError(ctx, err, "error while loading settings")
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// saveSettings validates and stores the caller's settings.
func (mc *MazeController) saveSettings(ctx *gin.Context) {
	ownerID, ok := identity.AccountID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var s settings.Settings
	if err := ctx.ShouldBindJSON(&s); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := mc.mazeService.SaveSettings(timeoutCtx, ownerID, s); err != nil {
		writeError(ctx, err, "error while saving settings")
		return
	}

	ctx.JSON(http.StatusOK, s)
}

func writeError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, settings.ErrInvalidSettings):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPlanNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

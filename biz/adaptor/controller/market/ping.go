package market

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Home .
// @router / [GET]
func Home(ctx context.Context, c *app.RequestContext) {
	c.String(http.StatusOK, "Learning is in progress")
}

// Ping .
// @router /ping [GET]
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, utils.H{
		"message": "pong",
	})
}

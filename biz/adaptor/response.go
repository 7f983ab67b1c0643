package adaptor

import (
	"context"
	"errors"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/util/log"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"google.golang.org/grpc/codes"
)

// PostProcess 统一输出响应, 非 Errno 错误记录日志后按 500 返回
func PostProcess(ctx context.Context, c *app.RequestContext, resp any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	var errno *consts.Errno
	if !errors.As(err, &errno) {
		log.CtxError(ctx, "[%s] err=%v", c.FullPath(), err)
		errno = consts.ErrCall
	}
	status, body := render(errno)
	c.JSON(status, body)
}

func abort(c *app.RequestContext, errno *consts.Errno) {
	status, body := render(errno)
	c.AbortWithStatusJSON(status, body)
}

func render(errno *consts.Errno) (int, utils.H) {
	switch errno.Code() {
	case codes.Unauthenticated:
		return http.StatusUnauthorized, utils.H{"error": true, "message": errno.Error()}
	case codes.PermissionDenied:
		return http.StatusForbidden, utils.H{"error": true, "message": errno.Error()}
	case codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusBadRequest, utils.H{"message": errno.Error()}
	case codes.InvalidArgument:
		return http.StatusBadRequest, utils.H{"error": errno.Error()}
	case codes.NotFound:
		return http.StatusNotFound, utils.H{"error": errno.Error()}
	default:
		return http.StatusInternalServerError, utils.H{"error": errno.Error()}
	}
}

// BadRequest 参数绑定或校验失败
func BadRequest(c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, utils.H{"error": err.Error()})
}

package adaptor

import (
	"context"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/util"
	"learning-market/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

// JWTAuth 校验 Authorization 头, 通过后把 UserMeta 放入 ctx
func JWTAuth(auth config.Auth) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		header := string(c.GetHeader("Authorization"))
		if header == "" {
			abort(c, consts.ErrNotAuthentication)
			return
		}
		user, err := ParseJwtToken(auth, header)
		if err != nil {
			log.CtxInfo(ctx, "verify token fail, err=%v", err)
			abort(c, consts.ErrNotAuthentication)
			return
		}
		log.CtxInfo(ctx, "userMeta=%s", util.JSONF(user))
		c.Next(WithUserMeta(ctx, user))
	}
}

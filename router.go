package main

import (
	"learning-market/biz/adaptor"
	"learning-market/biz/adaptor/controller/market"
	"learning-market/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// register 注册全部路由, auth 为需要令牌的接口
func register(r *server.Hertz) {
	auth := adaptor.JWTAuth(provider.Get().Config.Auth)

	r.GET("/", market.Home)
	r.GET("/ping", market.Ping)
	r.POST("/jwt", market.SignToken)

	users := r.Group("/users")
	{
		users.POST("", market.CreateUser)
		users.GET("", market.ListUsers)
		users.DELETE("/:id", market.DeleteUser)
		users.GET("/admin/:email", auth, market.IsAdmin)
		users.GET("/instructor/:email", auth, market.IsInstructor)
		users.PATCH("/admin/:id", market.MakeAdmin)
		users.PATCH("/instructor/:id", market.MakeInstructor)
	}

	r.POST("/classes", auth, market.CreateClass)
	r.GET("/classes", market.ListClasses)
	r.GET("/classes/:id", market.GetClass)
	r.PATCH("/classes/:classId", market.UpdateClassStatus)
	r.GET("/allclasses", market.ListAllClasses)
	r.PATCH("/allclasses/:classId", market.UpdateClassStatus)
	r.GET("/approved-classes", market.ListApprovedClasses)
	r.GET("/approved-classes/:id", market.GetApprovedClass)
	r.PATCH("/approved-classes/:classItemId", market.IncClassCounters)
	r.GET("/top-classes", market.ListTopClasses)

	r.POST("/selected-classes", market.SelectClass)
	r.POST("/carts", market.AddCart)
	r.GET("/carts", market.ListCart)
	r.DELETE("/carts/:id", market.DeleteCart)

	r.POST("/create-payment-intent", market.CreatePaymentIntent)
	r.POST("/payments", auth, market.RecordPayment)
	r.GET("/payments", market.ListPayments)
	r.GET("/payments/:email", auth, market.ListPaymentsByEmail)
}

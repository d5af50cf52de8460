package main

import (
	handler "listening-show/biz/adaptor/controller"
	"listening-show/biz/adaptor/middleware"
	"listening-show/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/sign_in", handler.SignIn)
		}

		// 以下接口需要登录
		user := apiV1.Group("/user", middleware.Auth())
		{
			user.GET("/info", handler.GetUserInfo)
		}

		listening := apiV1.Group("/listening", middleware.Auth())
		{
			listening.POST("", handler.SubmitListening)
			listening.GET("", handler.ListListening)
			listening.GET("/week", handler.CurrentWeek)
		}

		instructor := apiV1.Group("/instructor", middleware.Auth(), middleware.RequireRole(consts.RoleInstructor))
		{
			instructor.POST("/batch", handler.CreateBatch)
			instructor.GET("/batch", handler.ListBatches)
			instructor.PUT("/batch/:id", handler.UpdateBatch)
			instructor.DELETE("/batch/:id", handler.DeleteBatch)

			instructor.POST("/student", handler.CreateStudent)
			instructor.GET("/student", handler.ListStudents)
			instructor.PUT("/student/:id", handler.UpdateStudent)
			instructor.DELETE("/student/:id", handler.DeleteStudent)
		}
	}
}

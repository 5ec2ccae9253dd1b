package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/api/handlers"
	"github.com/yoockh/facultyportal/internal/api/middleware"
	"github.com/yoockh/facultyportal/internal/auth"
)

type Deps struct {
	Tokens *auth.Issuer

	Auth        *handlers.AuthHandler
	Personal    *handlers.PersonalHandler
	Education   *handlers.EducationHandler
	Experience  *handlers.ExperienceHandler
	Publication *handlers.PublicationHandler
	PhD         *handlers.PhDHandler
	Course      *handlers.CourseHandler
	Marks       *handlers.MarksHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", d.Auth.Register)
	authGroup.POST("/login", d.Auth.Login)

	// Everything below requires a token; handlers check :userId ownership.
	p := api.Group("")
	p.Use(middleware.JWTAuth(d.Tokens))

	p.GET("/personal/:userId", d.Personal.Get)
	p.POST("/personal/:userId", d.Personal.Save)

	p.POST("/education", d.Education.Create)
	p.GET("/education/:userId", d.Education.Get)
	p.PUT("/education/:userId", d.Education.Update)
	p.DELETE("/education/:userId", d.Education.Delete)

	p.GET("/experience/:userId", d.Experience.List)
	p.POST("/experience/:userId", d.Experience.Replace)
	p.PUT("/experience/:userId/:id", d.Experience.Update)
	p.DELETE("/experience/:userId/:id", d.Experience.Delete)

	p.GET("/publications/:userId", d.Publication.List)
	p.POST("/publications/:userId", d.Publication.Replace)
	p.PUT("/publications/:userId/:id", d.Publication.Update)
	p.DELETE("/publications/:userId/:id", d.Publication.Delete)

	p.POST("/phd", d.PhD.Create)
	p.GET("/phd/:userId", d.PhD.Get)
	p.PUT("/phd/:userId", d.PhD.Update)
	p.DELETE("/phd/:userId", d.PhD.Delete)

	p.GET("/courses/:userId", d.Course.List)
	p.POST("/courses/:userId", d.Course.Replace)
	p.DELETE("/courses/:userId/:id", d.Course.Delete)

	p.GET("/user-info/:userId", d.Course.GetInfo)
	p.POST("/user-info/:userId", d.Course.SaveInfo)

	p.GET("/marks", middleware.RequireAdmin(), d.Marks.Ranking)
	p.GET("/marks/:userId", d.Marks.Get)
	p.GET("/marks/:userId/history", d.Marks.History)
	p.POST("/marks/calculate/:userId", d.Marks.Calculate)

	p.POST("/application/:userId/submit", d.Marks.Submit)
}

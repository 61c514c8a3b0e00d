package api

import (
	"carelog/health-info-app/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the three resource handlers onto the router under
// /api, mirroring the paths the dashboard consumes.
func SetupRoutes(
	router *gin.Engine,
	clientService service.ClientService,
	programService service.ProgramService,
	enrollmentService service.EnrollmentService,
) {
	clientHandler := NewClientHandler(clientService)
	programHandler := NewProgramHandler(programService)
	enrollmentHandler := NewEnrollmentHandler(enrollmentService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		clientGroup := apiGroup.Group("/clients")
		{
			clientGroup.POST("", clientHandler.RegisterClient)
			clientGroup.GET("", clientHandler.GetClients)
			// Static /search coexists with the :id route; gin matches
			// static segments before parameters.
			clientGroup.GET("/search", clientHandler.SearchClients)
			clientGroup.GET("/:id", clientHandler.GetClientByID)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)
		}

		programGroup := apiGroup.Group("/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.GetPrograms)
			programGroup.GET("/:id", programHandler.GetProgramByID)
			programGroup.PUT("/:id", programHandler.UpdateProgram)
			programGroup.DELETE("/:id", programHandler.DeleteProgram)
		}

		enrollmentGroup := apiGroup.Group("/enrollments")
		{
			enrollmentGroup.POST("", enrollmentHandler.EnrollClient)
			enrollmentGroup.GET("", enrollmentHandler.GetEnrollments)
			enrollmentGroup.GET("/client/:clientId", enrollmentHandler.GetClientEnrollments)
			enrollmentGroup.GET("/:id", enrollmentHandler.GetEnrollmentByID)
			enrollmentGroup.PUT("/:id", enrollmentHandler.UpdateEnrollment)
			enrollmentGroup.DELETE("/:id", enrollmentHandler.DeleteEnrollment)
		}
	}
}

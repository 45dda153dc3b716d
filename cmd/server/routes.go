package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"medseal.backend/internal/interfaces/http/handlers"
	"medseal.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	verificationHandler *handlers.VerificationHandler
	caseHandler         *handlers.CaseHandler
	poolHandler         *handlers.PoolHandler
	medicineHandler     *handlers.MedicineHandler
	prescriptionHandler *handlers.PrescriptionHandler
	chatHandler         *handlers.ChatHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "medseal-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (register and login public, rest protected)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Verification routes (protected)
		verifications := v1.Group("/verifications")
		verifications.Use(d.authMiddleware)
		{
			verifications.POST("", d.verificationHandler.Submit)
			verifications.GET("", d.verificationHandler.List)
			verifications.GET("/:id", d.verificationHandler.Get)
			verifications.POST("/:id/process", middleware.RequireAdmin(), d.verificationHandler.Process)
		}

		// Case routes (protected)
		cases := v1.Group("/cases")
		cases.Use(d.authMiddleware)
		{
			cases.POST("", middleware.RequirePatient(), d.caseHandler.Submit)
			cases.GET("", d.caseHandler.List)
			cases.GET("/:id", d.caseHandler.Get)
			cases.POST("/:id/review", middleware.RequireAdmin(), d.caseHandler.Review)
		}

		// Pool and contribution routes. Reading one pool is public; the
		// rest require authentication.
		pools := v1.Group("/pools")
		pools.GET("/:id", d.poolHandler.Get)
		pools.Use(d.authMiddleware)
		{
			pools.POST("", middleware.RequireRole("NGO"), d.poolHandler.Create)
			pools.GET("", d.poolHandler.List)
			pools.POST("/:id/contributions", d.poolHandler.Contribute)
			pools.GET("/:id/contributions", d.poolHandler.ListContributions)
		}
		v1.GET("/contributions", d.authMiddleware, d.poolHandler.ListMyContributions)

		// Medicine routes (protected)
		medicines := v1.Group("/medicines")
		medicines.Use(d.authMiddleware)
		{
			medicines.POST("", middleware.RequireDoctor(), d.medicineHandler.Create)
			medicines.GET("", middleware.RequireDoctor(), d.medicineHandler.ListMine)
			medicines.GET("/:id", d.medicineHandler.Get)
			medicines.PUT("/:id", middleware.RequireDoctor(), d.medicineHandler.Update)
			medicines.PATCH("/:id/active", middleware.RequireDoctor(), d.medicineHandler.SetActive)
		}

		// Prescription routes (protected)
		prescriptions := v1.Group("/prescriptions")
		prescriptions.Use(d.authMiddleware)
		{
			prescriptions.POST("", middleware.RequireDoctor(), d.prescriptionHandler.Create)
			prescriptions.GET("", middleware.RequireDoctor(), d.prescriptionHandler.ListMine)
			prescriptions.POST("/claim", middleware.RequirePatient(), d.prescriptionHandler.Claim)
			prescriptions.GET("/:id", d.prescriptionHandler.Get)
		}

		// Assistant routes (protected)
		chat := v1.Group("/chat")
		chat.Use(d.authMiddleware)
		{
			chat.POST("/general", d.chatHandler.General)
			chat.POST("/prescription", middleware.RequirePatient(), d.chatHandler.Prescription)
			chat.POST("/medicine", d.chatHandler.Medicine)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/doctors", d.adminHandler.ListDoctors)
			admin.GET("/patients", d.adminHandler.ListPatients)
			admin.GET("/ngos", d.adminHandler.ListNGOs)
			admin.GET("/users/:id/stats", d.adminHandler.GetUserStats)
			admin.GET("/overview", d.adminHandler.SystemOverview)
		}
	}
}

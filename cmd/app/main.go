package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"learnhub/cmd/fx/account_fx"
	"learnhub/cmd/fx/catalog_fx"
	"learnhub/cmd/fx/db_fx"
	"learnhub/cmd/fx/entitlement_fx"
	"learnhub/cmd/fx/verification_fx"
	"learnhub/internal/api/controllers"
	"learnhub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		entitlement_fx.Module,
		verification_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	paymentController *controllers.PaymentController,
	libraryController *controllers.LibraryController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, catalogController, paymentController, libraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	paymentController *controllers.PaymentController,
	libraryController *controllers.LibraryController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	// Browsing is public; access checks and checkout require identity.
	coursesGroup := r.Group("/courses")
	coursesGroup.GET("", catalogController.ListCourses)
	coursesGroup.GET("/featured", catalogController.ListFeatured)
	coursesGroup.GET("/:id", catalogController.GetCourseByID)
	coursesGroup.GET("/:id/access", middleware.JWTAuthMiddleware(), catalogController.GetCourseAccess)

	paymentsGroup := r.Group("/payments", middleware.JWTAuthMiddleware())
	paymentsGroup.GET("/checkout", paymentController.StartCheckout)
	paymentsGroup.POST("", paymentController.SubmitPayment)
	paymentsGroup.GET("/mine", paymentController.ListMyPayments)
	paymentsGroup.GET("/pending", middleware.RoleMiddleware("admin"), paymentController.ListPending)
	paymentsGroup.POST("/:id/resolve", middleware.RoleMiddleware("admin"), paymentController.ResolveVerification)

	meGroup := r.Group("/me", middleware.JWTAuthMiddleware())
	meGroup.GET("/courses", libraryController.ListMyCourses)
	meGroup.GET("/subscription", libraryController.GetMySubscription)
}

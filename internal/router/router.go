package router

import (
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/config"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/handler"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/infra"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/middleware"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/realtime"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries the externally constructed infrastructure the router wires
// into handlers. Nil members disable the corresponding endpoints.
type Deps struct {
	Hub        *realtime.Hub
	Nutrition  *infra.NutritionClient
	Chat       *infra.ChatClient
	Media      *infra.MediaStore
	Dispatcher *worker.Dispatcher
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	utensilRepo := repository.NewUtensilRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	dishRepo := repository.NewDishOfTheDayRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	restaurantSvc := service.NewRestaurantService(restaurantRepo)
	menuSvc := service.NewMenuService(menuRepo, restaurantRepo)
	categorySvc := service.NewCategoryService(categoryRepo, menuRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo)
	utensilSvc := service.NewUtensilService(utensilRepo)

	// Stock notifiers: realtime fan-out plus async email alerts
	notifiers := []service.StockNotifier{realtime.NewRedisNotifier(rdb)}
	if deps.Dispatcher != nil {
		notifiers = append(notifiers, worker.NewAlertNotifier(deps.Dispatcher, cfg.AlertsToEmail))
	}
	ingredientSvc := service.NewIngredientService(ingredientRepo, notifiers...)

	dishSvc := service.NewDishOfTheDayService(ingredientRepo, dishRepo)
	recipeSvc := service.NewRecipeService(recipeRepo, productRepo, dishSvc)
	costingSvc := service.NewCostingService(recipeRepo)
	recommendSvc := service.NewRecommendService(recipeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	restaurantsH := handler.NewRestaurantsHandler(restaurantSvc)
	menusH := handler.NewMenusHandler(menuSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	ingredientsH := handler.NewIngredientsHandler(ingredientSvc)
	utensilsH := handler.NewUtensilsHandler(utensilSvc)
	recipesH := handler.NewRecipesHandler(recipeSvc)
	costingH := handler.NewCostingHandler(costingSvc, deps.Dispatcher, cfg.PDFStoragePath, cfg.AlertsToEmail)
	dishH := handler.NewDishOfTheDayHandler(dishSvc)
	recommendH := handler.NewRecommendHandler(recommendSvc)
	chatH := handler.NewChatHandler(deps.Chat)
	nutritionH := handler.NewNutritionHandler(deps.Nutrition, ingredientSvc)
	mediaH := handler.NewMediaHandler(deps.Media)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, deps.Nutrition))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Diner-facing menu view (public, Redis-cached)
	publicMenuH := handler.NewPublicMenuHandler(menuSvc, rdb)
	r.GET("/v1/public/menus/:id", publicMenuH.GetMenu)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		anyRole := middleware.RequireRole("superadmin", "admin", "employee")
		adminUp := middleware.RequireRole("superadmin", "admin")

		v1.GET("/auth/me", anyRole, authH.Me)

		// Live stock events over websocket
		if deps.Hub != nil {
			v1.GET("/events", anyRole, func(c *gin.Context) {
				deps.Hub.HandleUpgrade(c.Writer, c.Request)
			})
		}

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", anyRole, restaurantsH.List)
			restaurants.GET("/:id", anyRole, restaurantsH.GetByID)
			restaurants.POST("", middleware.RequireRole("superadmin"), restaurantsH.Create)
			restaurants.PUT("/:id", middleware.RequireRole("superadmin"), restaurantsH.Update)
			restaurants.DELETE("/:id", middleware.RequireRole("superadmin"), restaurantsH.Deactivate)
		}

		menus := v1.Group("/menus")
		{
			menus.GET("", anyRole, menusH.ListByRestaurant)
			menus.GET("/:id", anyRole, menusH.GetByID)
			menus.POST("", adminUp, menusH.Create)
			menus.PUT("/:id", adminUp, menusH.Update)
			menus.DELETE("/:id", adminUp, menusH.Deactivate)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", anyRole, categoriesH.ListByMenu)
			categories.GET("/:id", anyRole, categoriesH.GetByID)
			categories.POST("", adminUp, categoriesH.Create)
			categories.PUT("/:id", adminUp, categoriesH.Update)
			categories.DELETE("/:id", adminUp, categoriesH.Deactivate)
		}

		products := v1.Group("/products")
		{
			products.GET("", anyRole, productsH.List)
			products.GET("/:id", anyRole, productsH.GetByID)
			products.POST("", adminUp, productsH.Create)
			products.PUT("/:id", adminUp, productsH.Update)
			products.DELETE("/:id", adminUp, productsH.Archive)
			products.PATCH("/:id/restore", adminUp, productsH.Restore)
		}

		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", anyRole, ingredientsH.List)
			ingredients.GET("/alerts", anyRole, ingredientsH.Alerts)
			ingredients.GET("/:id", anyRole, ingredientsH.GetByID)
			ingredients.GET("/:id/nutrition", anyRole, nutritionH.ForIngredient)
			ingredients.POST("", adminUp, ingredientsH.Create)
			ingredients.PUT("/:id", adminUp, ingredientsH.Update)
			// Stock adjustment is an employee-level operation
			ingredients.PATCH("/:id/quantity", anyRole, ingredientsH.AdjustQuantity)
			ingredients.DELETE("/:id", adminUp, ingredientsH.Deactivate)
		}

		utensils := v1.Group("/utensils")
		{
			utensils.GET("", anyRole, utensilsH.List)
			utensils.GET("/:id", anyRole, utensilsH.GetByID)
			utensils.POST("", adminUp, utensilsH.Create)
			utensils.PUT("/:id", adminUp, utensilsH.Update)
			utensils.DELETE("/:id", adminUp, utensilsH.Deactivate)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.GET("/:id", anyRole, recipesH.GetByID)
			recipes.GET("/:id/cost", anyRole, costingH.RecipeCost)
			recipes.GET("/:id/lines", anyRole, recipesH.ListLines)
			recipes.GET("/:id/variants", anyRole, recipesH.ListVariants)
			recipes.POST("", adminUp, recipesH.Create)
			recipes.PUT("/:id", adminUp, recipesH.Update)
			recipes.DELETE("/:id", adminUp, recipesH.Delete)
			recipes.POST("/:id/lines", adminUp, recipesH.AddLine)
			recipes.POST("/:id/variants", adminUp, recipesH.CreateVariant)
		}
		v1.DELETE("/recipe-lines/:id", adminUp, recipesH.DeleteLine)
		v1.PUT("/recipe-variants/:id", adminUp, recipesH.UpdateVariant)
		v1.DELETE("/recipe-variants/:id", adminUp, recipesH.DeactivateVariant)

		reports := v1.Group("/reports", adminUp)
		{
			reports.GET("/costs", costingH.AllCosts)
			reports.GET("/costs/pdf", costingH.CostsPDF)
			reports.POST("/costs/email", costingH.EmailCosts)
		}

		dish := v1.Group("/dish-of-the-day")
		{
			dish.GET("", anyRole, dishH.List)
			dish.DELETE("/:id", adminUp, dishH.Deactivate)
		}

		v1.GET("/recommendations", anyRole, recommendH.ByIngredients)
		v1.POST("/chat", anyRole, chatH.Ask)
		v1.POST("/media", adminUp, mediaH.Upload)

		users := v1.Group("/users", middleware.RequireRole("superadmin", "admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

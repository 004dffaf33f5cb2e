package routes

import (
	"Foodgram-Backend/internal/api/handlers"
	"Foodgram-Backend/internal/middleware"
	"Foodgram-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	TagHandler        handlers.TagHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	MembershipHandler handlers.MembershipHandler
	ShoppingHandler   handlers.ShoppingHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.User()
	c.Tags()
	c.Ingredients()
	c.Recipes()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth/token")
	{
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
	}
}

func (c *Config) User() {
	authed := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	user := c.App.Group("/api/users")
	// static paths go before /:id
	{
		user.Post("", c.UserHandler.Register)
		user.Get("", optional, c.UserHandler.GetUsers)
		user.Get("/me", authed, c.UserHandler.Me)
		user.Post("/set_password", authed, c.UserHandler.SetPassword)
		user.Get("/subscriptions", authed, c.MembershipHandler.GetSubscriptions)
		user.Get("/:id", optional, c.UserHandler.GetUser)
		user.Post("/:id/subscribe", authed, c.MembershipHandler.Subscribe)
		user.Delete("/:id/subscribe", authed, c.MembershipHandler.Unsubscribe)
	}
}

func (c *Config) Tags() {
	tags := c.App.Group("/api/tags")
	tags.Get("", c.TagHandler.GetTags)
	tags.Get("/:id", c.TagHandler.GetTag)
	tags.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.TagHandler.CreateTag)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/ingredients")
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
	ingredients.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.IngredientHandler.CreateIngredient)
}

func (c *Config) Recipes() {
	authed := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes := c.App.Group("/api/recipes")
	recipes.Get("", optional, c.RecipeHandler.GetRecipes)
	recipes.Post("", authed, c.RecipeHandler.CreateRecipe)
	recipes.Get("/download_shopping_cart", authed, c.ShoppingHandler.DownloadShoppingCart)

	recipes.Get("/:id", optional, c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", authed, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", authed, c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/favorite", authed, c.MembershipHandler.AddFavorite)
	recipes.Delete("/:id/favorite", authed, c.MembershipHandler.RemoveFavorite)
	recipes.Post("/:id/shopping_cart", authed, c.MembershipHandler.AddToShoppingCart)
	recipes.Delete("/:id/shopping_cart", authed, c.MembershipHandler.RemoveFromShoppingCart)
}

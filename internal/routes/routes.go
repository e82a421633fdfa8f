package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/stay-haven/stay_haven/internal/catalog"
	"github.com/stay-haven/stay_haven/internal/config"
	"github.com/stay-haven/stay_haven/internal/identity"
	"github.com/stay-haven/stay_haven/internal/middleware"
	"github.com/stay-haven/stay_haven/internal/notification"
	"github.com/stay-haven/stay_haven/internal/token"
	"github.com/stay-haven/stay_haven/internal/wishlist"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !isDev(d.Cfg.AppEnv) {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	issuer, err := token.New(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	if err != nil {
		return err
	}

	var identityRepo identity.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
	}
	identitySvc := identity.NewService(identityRepo, issuer, d.Logger)
	notifier := notification.NewLoggerNotifier(d.Logger)
	identityHandler := identity.NewHandler(identitySvc, notifier, d.Logger)

	catalogHandler := catalog.NewHandler(catalog.New(nil))

	// API routes; the client expects unversioned paths.
	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	api.Post("/register", identityHandler.Register)
	api.Post("/login", identityHandler.Login)
	api.Get("/hotels", catalogHandler.List)

	// Protected routes
	protected := api.Group("", middleware.BearerAuth(issuer))
	protected.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return c.SendStatus(http.StatusUnauthorized)
		}
		user, err := identityRepo.FindByID(c.UserContext(), uid)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "user not found")
		}
		return c.JSON(fiber.Map{
			"userId":    user.ID,
			"phone":     user.Phone,
			"fullName":  user.DisplayName(),
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"createdAt": user.CreatedAt,
		})
	})

	if d.Cache != nil {
		wishlistHandler := wishlist.NewHandler(wishlist.NewStore(d.Cache), d.Logger)
		RegisterWishlistRoutes(protected, wishlistHandler)
	}

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

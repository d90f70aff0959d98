package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mehdibenatia/boutiqa-backend/internal/cart"
	"github.com/mehdibenatia/boutiqa-backend/internal/category"
	"github.com/mehdibenatia/boutiqa-backend/internal/checkout"
	"github.com/mehdibenatia/boutiqa-backend/internal/config"
	"github.com/mehdibenatia/boutiqa-backend/internal/featured"
	"github.com/mehdibenatia/boutiqa-backend/internal/locale"
	"github.com/mehdibenatia/boutiqa-backend/internal/order"
	"github.com/mehdibenatia/boutiqa-backend/internal/product"
	"github.com/mehdibenatia/boutiqa-backend/internal/section"
	"github.com/mehdibenatia/boutiqa-backend/internal/session"
	"github.com/mehdibenatia/boutiqa-backend/internal/settings"
	"github.com/mehdibenatia/boutiqa-backend/internal/shipping"
	"github.com/mehdibenatia/boutiqa-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(timingMiddleware)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	bootstrapSchema(db)

	// build the product service early; cart, featured and wishlist enrich
	// through it
	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	sectionHandler := section.NewHandler(section.NewService(section.NewPostgresRepository(db)))
	featuredHandler := featured.NewHandler(featured.NewService(featured.NewPostgresRepository(db), productService))

	settingsService := settings.NewService(settings.NewPostgresRepository(db))
	settingsHandler := settings.NewHandler(settingsService)

	cartService := cart.NewService(cart.NewPostgresRepository(db), productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db))
	orderHandler := order.NewHandler(orderService)

	gateway := checkout.NewHTTPGateway(cfg.PaymentAPIURL, cfg.PaymentSecretKey, cfg.PaymentTestMode)
	checkoutHandler := checkout.NewHandler(checkout.NewService(cartService, orderService, settingsService, gateway))

	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlist.NewPostgresRepository(db), productService))
	shippingHandler := shipping.NewHandler(shipping.NewService(shipping.NewPostgresRepository(db)))

	sessionHandler := session.NewHandler(cfg.JWTSecret)
	sessionHandler.RegisterPublicRoutes(app)

	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	sectionHandler.RegisterPublicRoutes(app)
	featuredHandler.RegisterPublicRoutes(app)
	settingsHandler.RegisterPublicRoutes(app)

	// the back office is deliberately open: the storefront ships without
	// accounts and the admin panel sits behind the reverse proxy
	productHandler.RegisterAdminRoutes(app)
	categoryHandler.RegisterAdminRoutes(app)
	sectionHandler.RegisterAdminRoutes(app)
	featuredHandler.RegisterAdminRoutes(app)
	settingsHandler.RegisterAdminRoutes(app)
	orderHandler.RegisterAdminRoutes(app)

	// make uploaded files public
	app.Static("/uploads", "./uploads")

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		ContextKey: "device",
		// everything registered above stays reachable without a device token
		Filter: func(c *fiber.Ctx) bool {
			p := c.Path()
			if strings.HasPrefix(p, "/api/v1/admin/") || strings.HasPrefix(p, "/uploads/") {
				return true
			}
			if p == "/api/v1/session" {
				return true
			}
			if c.Method() != "GET" {
				return false
			}
			for _, prefix := range []string{"/api/v1/products", "/api/v1/categories", "/api/v1/sections", "/api/v1/featured", "/api/v1/settings"} {
				if p == prefix || strings.HasPrefix(p, prefix+"/") {
					return true
				}
			}
			return false
		},
	}))

	cartHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	shippingHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS product (
			product_id SERIAL PRIMARY KEY,
			name jsonb NOT NULL DEFAULT '{}',
			description jsonb NOT NULL DEFAULT '{}',
			price numeric NOT NULL DEFAULT 0,
			original_price numeric,
			category_id INT,
			image TEXT,
			sub_images text[] NOT NULL DEFAULT '{}',
			keywords text[] NOT NULL DEFAULT '{}',
			variant_options jsonb NOT NULL DEFAULT '[]',
			variants jsonb NOT NULL DEFAULT '[]',
			allow_direct_purchase BOOLEAN NOT NULL DEFAULT false,
			allow_add_to_cart BOOLEAN NOT NULL DEFAULT true,
			custom_sections jsonb NOT NULL DEFAULT '[]',
			certification_images text[] NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`ALTER TABLE product ADD COLUMN IF NOT EXISTS product_img_data bytea`,
		`CREATE TABLE IF NOT EXISTS category (
			category_id SERIAL PRIMARY KEY,
			name jsonb NOT NULL DEFAULT '{}',
			image TEXT,
			ord INT
		)`,
		`CREATE TABLE IF NOT EXISTS section (
			section_id SERIAL PRIMARY KEY,
			title jsonb NOT NULL DEFAULT '{}',
			subtitle jsonb NOT NULL DEFAULT '{}',
			image TEXT,
			link TEXT,
			ord INT
		)`,
		`CREATE TABLE IF NOT EXISTS featured (
			product_id INT PRIMARY KEY,
			ord INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			device_id TEXT PRIMARY KEY,
			items jsonb NOT NULL DEFAULT '[]',
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			device_id TEXT NOT NULL,
			items jsonb NOT NULL DEFAULT '[]',
			subtotal numeric NOT NULL DEFAULT 0,
			shipping_fee numeric NOT NULL DEFAULT 0,
			grand_total numeric NOT NULL DEFAULT 0,
			currency TEXT,
			payment_method TEXT,
			payment_ref TEXT,
			status TEXT,
			locale TEXT,
			shipping jsonb NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INT PRIMARY KEY,
			doc jsonb NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			device_id TEXT PRIMARY KEY,
			product_ids integer[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS shipping_profile (
			profile_id SERIAL PRIMARY KEY,
			device_id TEXT NOT NULL,
			label TEXT,
			full_name TEXT,
			phone TEXT,
			address TEXT,
			city TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}

	seedCategories(db)
	seedSections(db)
}

func seedCategories(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM category`).Scan(&count); err != nil || count > 0 {
		return
	}
	seed := []struct {
		name locale.Text
		img  string
	}{
		{locale.Text{AR: "ملابس", FR: "Vêtements"}, "/Category/clothes.png"},
		{locale.Text{AR: "أحذية", FR: "Chaussures"}, "/Category/shoes.png"},
		{locale.Text{AR: "إكسسوارات", FR: "Accessoires"}, "/Category/accessories.png"},
		{locale.Text{AR: "العناية والجمال", FR: "Beauté et soins"}, "/Category/beauty.png"},
		{locale.Text{AR: "المنزل والمطبخ", FR: "Maison et cuisine"}, "/Category/home.png"},
	}
	for i, s := range seed {
		name, err := jsonText(s.name)
		if err != nil {
			continue
		}
		if _, err := db.Exec(`INSERT INTO category (name, image, ord) VALUES ($1,$2,$3)`, name, s.img, len(seed)-i); err != nil {
			continue
		}
	}
}

func seedSections(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM section`).Scan(&count); err != nil || count > 0 {
		return
	}
	seed := []struct {
		title    locale.Text
		subtitle locale.Text
		img      string
		link     string
	}{
		{
			locale.Text{AR: "تخفيضات الموسم", FR: "Soldes de saison"},
			locale.Text{AR: "خصومات تصل إلى 50%", FR: "Jusqu'à -50%"},
			"/sections/sale.jpg", "/products?sale=1",
		},
		{
			locale.Text{AR: "وصل حديثاً", FR: "Nouveautés"},
			locale.Text{AR: "اكتشف آخر المنتجات", FR: "Découvrez les derniers produits"},
			"/sections/new.jpg", "/products?sort=new",
		},
	}
	for i, s := range seed {
		title, err := jsonText(s.title)
		if err != nil {
			continue
		}
		subtitle, err := jsonText(s.subtitle)
		if err != nil {
			continue
		}
		if _, err := db.Exec(`INSERT INTO section (title, subtitle, image, link, ord) VALUES ($1,$2,$3,$4,$5)`,
			title, subtitle, s.img, s.link, len(seed)-i); err != nil {
			continue
		}
	}
}

func jsonText(t locale.Text) ([]byte, error) {
	return json.Marshal(t)
}

func timingMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Fprintf(os.Stdout, "URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}

package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/config"
	catalogControllers "storefront/controllers/catalog"
	"storefront/middleware"
	"storefront/routes"
	"storefront/seed"
	"storefront/store"
)

func main() {
	app := &cli.App{
		Name:           "storefront",
		Usage:          "small e-commerce storefront service",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCommand(),
			initDBCommand(),
			seedCommand(),
			exportProductsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP server",
		Action: func(*cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			if err := seed.InitDB(db); err != nil {
				return err
			}

			r := gin.Default()
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
				ExposeHeaders:    []string{"Content-Length"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			}))
			r.Use(middleware.Sessions(cfg.SecretKey))

			routes.SetupRoutes(r, db, cfg)

			logrus.Infof("🚀 Server running on port %s...", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}
}

func initDBCommand() *cli.Command {
	return &cli.Command{
		Name:  "init-db",
		Usage: "create the database schema",
		Action: func(*cli.Context) error {
			db, err := openConfiguredDatabase()
			if err != nil {
				return err
			}
			if err := seed.InitDB(db); err != nil {
				return err
			}
			logrus.Info("✅ Initialized the database")
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "populate default categories and products (idempotent)",
		Action: func(*cli.Context) error {
			db, err := openConfiguredDatabase()
			if err != nil {
				return err
			}
			if err := seed.InitDB(db); err != nil {
				return err
			}
			if err := seed.Seed(db); err != nil {
				return err
			}
			logrus.Info("✅ Seeded data")
			return nil
		},
	}
}

func exportProductsCommand() *cli.Command {
	return &cli.Command{
		Name:  "export-products",
		Usage: "write the product catalog to an Excel file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "products.xlsx", Usage: "output file path"},
		},
		Action: func(c *cli.Context) error {
			db, err := openConfiguredDatabase()
			if err != nil {
				return err
			}

			products, err := store.NewCatalog(db).Search("", 0)
			if err != nil {
				return err
			}
			file, err := catalogControllers.BuildProductsWorkbook(products)
			if err != nil {
				return err
			}
			if err := file.Save(c.String("out")); err != nil {
				return err
			}
			logrus.Infof("✅ Exported %d products to %s", len(products), c.String("out"))
			return nil
		},
	}
}

func openConfiguredDatabase() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return openDatabase(cfg)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

package main

import (
	"log"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/handlers"
)

func main() {
	app := pocketbase.New()

	var catalogPath string
	var sessionTTL time.Duration
	app.RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "",
		"YAML catalog to use instead of the built-in one")
	app.RootCmd.PersistentFlags().DurationVar(&sessionTTL, "session-ttl", 2*time.Hour,
		"idle time after which a design session is dropped")
	app.RootCmd.AddCommand(newCatalogCommand(&catalogPath))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		c, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}
		d := handlers.NewDeps(c)

		registerRoutes(se.Router, d)

		app.Cron().MustAdd("sessionSweep", "*/5 * * * *", func() {
			if n := d.Sessions.Sweep(sessionTTL); n > 0 {
				log.Printf("main: swept %d idle sessions, %d left", n, d.Sessions.Len())
			}
		})

		log.Printf("main: catalog ready with %d rooms and %d designs", len(c.Rooms), len(c.Designs))
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog returns the built-in catalog, or the one at path when set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func registerRoutes(r *router.Router[*core.RequestEvent], d *handlers.Deps) {
	r.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))
	r.GET("/healthz", handlers.HandleHealth())

	// Everything below belongs to a visitor's design session.
	g := r.Group("")
	g.BindFunc(handlers.SessionMiddleware(d))

	g.GET("/{$}", handlers.HandleIndex(d))

	// ── Navigation ───────────────────────────────────────────
	g.POST("/nav/{page}", handlers.HandleNav(d))
	g.POST("/start", handlers.HandleGetStarted(d))
	g.POST("/back", handlers.HandleBack(d))

	// ── Design flow ──────────────────────────────────────────
	g.POST("/rooms/{id}/select", handlers.HandleSelectRoom(d))
	g.POST("/preferences", handlers.HandleSubmitPreferences(d))
	g.POST("/designs/regenerate", handlers.HandleRegenerate(d))
	g.POST("/designs/{id}/select", handlers.HandleSelectDesign(d))
	g.POST("/order", handlers.HandlePlaceOrder(d))

	// ── BOQ export ───────────────────────────────────────────
	g.GET("/boq/export/{format}", handlers.HandleBOQExport(d))

	// ── Contact ──────────────────────────────────────────────
	g.POST("/contact", handlers.HandleSendMessage(d))
}

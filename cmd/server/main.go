package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/goliatone/go-router"
	"github.com/joho/godotenv"

	"github.com/manutdmohit/bhagirathi-enquiry/adapters/enquiryapi"
	enquirypdf "github.com/manutdmohit/bhagirathi-enquiry/adapters/pdf"
	enquiryrouter "github.com/manutdmohit/bhagirathi-enquiry/adapters/router"
	"github.com/manutdmohit/bhagirathi-enquiry/config"
	"github.com/manutdmohit/bhagirathi-enquiry/web"
)

func main() {
	ctx := context.Background()

	// .env is optional; environment wins either way
	_ = godotenv.Load()

	cfg := config.Defaults()
	applyEnv(&cfg)

	engine, err := buildEngine(cfg.PDF)
	if err != nil {
		log.Fatalf("failed to build pdf engine: %v", err)
	}

	handler := enquiryrouter.NewHandler(enquiryrouter.Config{
		Engine: engine,
		Logger: stdLogger{},
	})

	srv := router.NewFiberAdapter(fiberAppInitializer())
	setupRoutes(srv.Router(), handler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Printf("Starting server on http://%s", addr)
		log.Printf("Student form: http://%s/students", addr)
		log.Printf("Sponsor form: http://%s/sponsors", addr)
		if err := srv.Serve(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func applyEnv(cfg *config.Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if engine := os.Getenv("PDF_ENGINE"); engine != "" {
		cfg.PDF.Engine = engine
	}
	if path := os.Getenv("PDF_CHROMIUM_PATH"); path != "" {
		cfg.PDF.ChromiumPath = path
	}
	if headless := os.Getenv("PDF_HEADLESS"); headless != "" {
		if parsed, err := strconv.ParseBool(headless); err == nil {
			cfg.PDF.Headless = parsed
		}
	}
	if args := os.Getenv("PDF_CHROMIUM_ARGS"); args != "" {
		cfg.PDF.Args = splitCSV(args)
	}
	if timeout := os.Getenv("PDF_TIMEOUT"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil && t > 0 {
			cfg.PDF.Timeout = t
		}
	}
	if path := os.Getenv("PDF_WKHTMLTOPDF_PATH"); path != "" {
		cfg.PDF.WKHTMLTOPDFPath = path
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func buildEngine(cfg config.PDFConfig) (enquirypdf.Engine, error) {
	switch strings.ToLower(cfg.Engine) {
	case "", "chromium":
		return &enquirypdf.ChromiumEngine{
			BrowserPath: cfg.ChromiumPath,
			Headless:    cfg.Headless,
			Timeout:     time.Duration(cfg.Timeout) * time.Second,
			Args:        cfg.Args,
		}, nil
	case "wkhtmltopdf":
		return enquirypdf.WKHTMLTOPDFEngine{
			Command: cfg.WKHTMLTOPDFPath,
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		}, nil
	default:
		return nil, fmt.Errorf("unknown pdf engine: %s", cfg.Engine)
	}
}

func setupRoutes(r router.Router[*fiber.App], handler *enquiryrouter.Handler) {
	r.Get("/", web.Handler(web.StudentPage(enquiryapi.DefaultStudentPath)))
	r.Get("/students", web.Handler(web.StudentPage(enquiryapi.DefaultStudentPath)))
	r.Get("/sponsors", web.Handler(web.SponsorPage(enquiryapi.DefaultSponsorPath)))
	r.Get("/healthz", func(c router.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	handler.RegisterRoutes(r)
}

func fiberAppInitializer() func(*fiber.App) *fiber.App {
	return func(*fiber.App) *fiber.App {
		fiberApp := fiber.New(fiber.Config{
			AppName: "Bhagirathi Enquiry",
		})

		fiberApp.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
		}))
		fiberApp.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Content-Type",
		}))

		return fiberApp
	}
}

type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

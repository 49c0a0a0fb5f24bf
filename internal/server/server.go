// Package server is the copyforge companion service: upload storage with
// filename-based template routing, calendar previews, and a pass-through
// to the upstream post generator.
package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/copyforge/copyforge/internal/api"
	"github.com/copyforge/copyforge/internal/config"
)

var prefixToTemplate = map[string]string{
	"oggetto":   "T1_OGGETTO",
	"dettaglio": "T2_DETTAGLIO",
	"processo":  "T3_PROCESSO",
	"storia":    "T4_STORIA",
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// App wires the echo instance to its upload directory and upstream
// generator.
type App struct {
	cfg  *config.Config
	echo *echo.Echo
}

// New creates the service and registers its routes.
func New(cfg *config.Config) *App {
	a := &App{cfg: cfg, echo: echo.New()}
	a.echo.HideBanner = true
	a.echo.Use(middleware.Logger())
	a.echo.Use(middleware.Recover())

	g := a.echo.Group("/api")
	g.GET("/schedule-preview", a.handleSchedulePreview)
	g.POST("/upload-multiple", a.handleUploadMultiple)
	g.GET("/uploads", a.handleListUploads)
	g.DELETE("/uploads/:filename", a.handleDeleteUpload)
	g.POST("/generate", a.handleGenerate)

	a.echo.Static("/uploads", cfg.UploadDir)
	return a
}

// Start ensures the upload directory exists and serves until shutdown.
func (a *App) Start() error {
	if err := os.MkdirAll(a.cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}
	return a.echo.Start(":" + a.cfg.Port)
}

// Handler exposes the routing tree, mainly for tests.
func (a *App) Handler() http.Handler { return a.echo }

func (a *App) handleSchedulePreview(c echo.Context) error {
	n := 6
	if raw := c.QueryParam("n_posts"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "n_posts must be an integer"})
		}
		n = parsed
	}
	return c.JSON(http.StatusOK, echo.Map{
		"n_posts":  n,
		"schedule": BuildSchedule(n),
	})
}

func (a *App) handleUploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "multipart form required"})
	}

	uploaded := make([]api.Asset, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") &&
			!imageExts[strings.ToLower(filepath.Ext(fh.Filename))] {
			continue
		}
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
		}
		name := filepath.Base(fh.Filename)
		dst, err := os.Create(filepath.Join(a.cfg.UploadDir, name))
		if err != nil {
			src.Close()
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
		}
		uploaded = append(uploaded, api.Asset{
			Filename:         name,
			Path:             "/uploads/" + name,
			InferredTemplate: InferTemplate(name),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"uploaded": uploaded})
}

func (a *App) handleListUploads(c echo.Context) error {
	entries, err := os.ReadDir(a.cfg.UploadDir)
	if err != nil && !os.IsNotExist(err) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	files := make([]api.Asset, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, api.Asset{
			Filename:         e.Name(),
			Path:             "/uploads/" + e.Name(),
			InferredTemplate: InferTemplate(e.Name()),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"files": files})
}

func (a *App) handleDeleteUpload(c echo.Context) error {
	name := filepath.Base(c.Param("filename"))
	path := filepath.Join(a.cfg.UploadDir, name)
	if _, err := os.Stat(path); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "file not found"})
	}
	if err := os.Remove(path); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": name})
}

// handleGenerate forwards the payload to the configured upstream
// generator. Generation itself never happens here.
func (a *App) handleGenerate(c echo.Context) error {
	if a.cfg.GeneratorURL == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"detail": "generator not configured: set GENERATOR_URL",
		})
	}
	req, err := http.NewRequestWithContext(
		c.Request().Context(), http.MethodPost, a.cfg.GeneratorURL, c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"detail": err.Error()})
	}
	defer resp.Body.Close()
	return c.Stream(resp.StatusCode, resp.Header.Get("Content-Type"), resp.Body)
}

// InferTemplate maps an image filename to its content template via the
// "prefix_" naming convention.
func InferTemplate(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.ToLower(stem)
	prefix, _, ok := strings.Cut(stem, "_")
	if !ok {
		return "unknown"
	}
	if t, ok := prefixToTemplate[strings.TrimSpace(prefix)]; ok {
		return t
	}
	return "unknown"
}

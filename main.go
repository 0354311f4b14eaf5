package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-raycast/pkg/output"
	"github.com/df07/go-raycast/pkg/renderer"
	"github.com/df07/go-raycast/pkg/scene"
)

// Config holds everything needed for one render
type Config struct {
	Scene     string
	Width     int
	Scale     int
	Format    string
	OutputDir string
	Upload    bool
	S3        output.S3Config
}

// getEnv returns the environment value for key, or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Printf("Ignoring %s=%q: %v\n", key, value, err)
		return fallback
	}
	return n
}

// loadConfig reads defaults from the environment (and .env if present),
// then lets command line flags override them
func loadConfig(args []string) (*Config, bool, error) {
	_ = godotenv.Load()

	cfg := &Config{
		S3: output.S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
	}

	fs := flag.NewFlagSet("raycast", flag.ContinueOnError)
	fs.StringVar(&cfg.Scene, "scene", getEnv("RAYCAST_SCENE", "default"), "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&cfg.Width, "width", getEnvInt("RAYCAST_WIDTH", 400), "Image width in pixels")
	fs.IntVar(&cfg.Scale, "scale", getEnvInt("RAYCAST_SCALE", 0), "Resize output to this width (0 = no resize)")
	fs.StringVar(&cfg.Format, "format", getEnv("RAYCAST_FORMAT", "ppm"), "Output format: ppm or png")
	fs.StringVar(&cfg.OutputDir, "output", getEnv("RAYCAST_OUTPUT_DIR", "output"), "Output directory")
	fs.BoolVar(&cfg.Upload, "upload", false, "Upload the render to S3 (uses S3_* environment variables)")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if *help {
		fmt.Println("Ray/sphere intersection renderer")
		fmt.Println("Usage: raycast [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
		return nil, true, nil
	}
	return cfg, false, nil
}

// renderToBytes renders the configured scene and encodes it
func renderToBytes(cfg *Config, logger renderer.Logger) ([]byte, output.Format, error) {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, "", err
	}

	selectedScene, err := scene.New(cfg.Scene, cfg.Width)
	if err != nil {
		return nil, "", err
	}

	raytracer := renderer.NewRaytracer(selectedScene, selectedScene.Width, selectedScene.Height, logger)
	img := output.Scale(raytracer.RenderPass(), cfg.Scale)

	var buf bytes.Buffer
	if err := output.Encode(&buf, img, format); err != nil {
		return nil, "", fmt.Errorf("encoding %s: %w", format, err)
	}
	return buf.Bytes(), format, nil
}

func run(cfg *Config) error {
	fmt.Printf("Rendering scene %q at width %d...\n", cfg.Scene, cfg.Width)

	startTime := time.Now()
	data, format, err := renderToBytes(cfg, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	outputDir := filepath.Join(cfg.OutputDir, cfg.Scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("render_%s%s", timestamp, format.Extension())
	filename := filepath.Join(outputDir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("saving render: %w", err)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if !cfg.Upload {
		return nil
	}
	uploader, err := output.NewS3Uploader(cfg.S3)
	if err != nil {
		return err
	}
	key := cfg.Scene + "/" + name
	if err := uploader.Upload(context.Background(), key, data, format.ContentType()); err != nil {
		return err
	}
	fmt.Printf("Uploaded %s to bucket %s (%d bytes)\n", key, cfg.S3.Bucket, len(data))
	return nil
}

func main() {
	cfg, helped, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if helped {
		return
	}

	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// FILE: lixenwraith/parseit/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/parseit"
)

// AppConfig is filled by Scan, one key per field
type AppConfig struct {
	Host     string        `parseit:"host"`
	Port     int           `parseit:"port"`
	Debug    bool          `parseit:"debug"`
	Timeout  time.Duration `parseit:"timeout"`
	Tags     []string      `parseit:"tags"`
	APIToken string        `parseit:"api_token,required"`
}

func main() {
	dir, err := os.MkdirTemp("", "parseit-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// Two sources define "port": JSON ranks above TOML by default
	writeFile(dir, "app.json", `{"host": "json-host", "port": 8080}`)
	writeFile(dir, "conf/app.toml", "port = 9090\ntimeout = \"45s\"\ntags = \"web,api\"\n")
	writeFile(dir, "conf/legacy.ini", "debug = yes\n")

	os.Setenv("EXAMPLE_API_TOKEN", "s3cr3t")
	defer os.Unsetenv("EXAMPLE_API_TOKEN")

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	r, err := parseit.NewBuilder().
		WithFolder(dir).
		WithEnvPrefix("EXAMPLE_").
		WithArgs([]string{"--debug"}).
		WithLogger(logger).
		Build()
	if err != nil {
		log.Fatalf("Failed to build resolver: %v", err)
	}

	fmt.Print(r.Debug())
	fmt.Print(r.Explain("port"))

	port, err := r.Resolve("port")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("port = %v (%T)\n", port, port)

	missing, _ := r.Resolve("missing", parseit.WithDefault("42"))
	fmt.Printf("missing = %v (%T)\n", missing, missing)

	var cfg AppConfig
	if err := r.Scan(&cfg); err != nil {
		log.Fatalf("Failed to scan config: %v", err)
	}
	fmt.Printf("%+v\n", cfg)
}

func writeFile(dir, name, content string) {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}
}

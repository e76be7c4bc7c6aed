package devwebserver

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const defaultPackage = "github.com/silbinarywolf/fish-fiesta/cmd/fishfiesta"

//go:embed index.html
var indexHTML []byte

type Arguments struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "debug"
	Package   string // package with the main func to build
}

// Serve will serve a build of the application to the web browser.
// This function will block until exit.
func Serve(args []string) error {
	flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	var arguments Arguments
	flagSet.StringVar(&arguments.Port, "port", ":8080", "address to listen on")
	flagSet.StringVar(&arguments.Tags, "tags", "", "a list of build tags to consider satisfied during the build")
	flagSet.StringVar(&arguments.Package, "pkg", defaultPackage, "main package to build to WebAssembly")
	if err := flagSet.Parse(args); err != nil {
		return errors.Wrap(err, "unable to parse flags")
	}
	arguments.Directory = "."

	server, err := newServer(arguments)
	if err != nil {
		return err
	}

	// Start server
	fmt.Printf("Listening on http://localhost%s...\n", arguments.Port)
	if err := http.ListenAndServe(arguments.Port, server); err != nil {
		return errors.Wrap(err, "unable to start server")
	}
	return nil
}

type server struct {
	arguments  Arguments
	pkgPath    string
	wasmJSPath string
	outputDir  string
}

func newServer(arguments Arguments) (*server, error) {
	pkgPath, err := resolveMainPackage(arguments.Directory, arguments.Package)
	if err != nil {
		return nil, err
	}
	wasmJSPath, err := getWasmJSPath(runtime.GOROOT())
	if err != nil {
		return nil, err
	}
	outputDir, err := os.MkdirTemp("", "fishfiesta-wasm")
	if err != nil {
		return nil, errors.Wrap(err, "unable to create temporary build directory")
	}
	return &server{
		arguments:  arguments,
		pkgPath:    pkgPath,
		wasmJSPath: wasmJSPath,
		outputDir:  outputDir,
	}, nil
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upath := strings.TrimPrefix(r.URL.Path, "/")
	if upath == "" || strings.HasSuffix(upath, "/") {
		upath += "index.html"
	}
	switch filepath.Base(upath) {
	case "index.html":
		log.Print("serving index.html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	case "wasm_exec.js":
		log.Print("serving wasm_exec.js: " + s.wasmJSPath)
		http.ServeFile(w, r, s.wasmJSPath)
	case "main.wasm":
		outputPath, out, err := s.build()
		if err != nil {
			log.Print(err)
			log.Print(string(out))
			http.Error(w, string(out), http.StatusInternalServerError)
			return
		}
		if len(out) > 0 {
			log.Print(string(out))
		}
		f, err := os.Open(outputPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeContent(w, r, "main.wasm", time.Now(), f)
	default:
		http.NotFound(w, r)
	}
}

// build rebuilds the game on every request so a browser refresh picks up
// code changes
func (s *server) build() (string, []byte, error) {
	outputPath := filepath.Join(s.outputDir, "main.wasm")
	args := buildArgs(outputPath, s.arguments.Tags, s.pkgPath)
	log.Print("go ", strings.Join(args, " "))
	cmdBuild := exec.Command(gobin(), args...)
	cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmdBuild.Dir = s.arguments.Directory
	out, err := cmdBuild.CombinedOutput()
	if err != nil {
		return "", out, errors.Wrap(err, "unable to build wasm")
	}
	return outputPath, out, nil
}

func buildArgs(outputPath, tags, pkgPath string) []string {
	args := []string{"build", "-o", outputPath}
	if tags != "" {
		args = append(args, "-tags", tags)
	}
	return append(args, pkgPath)
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

// resolveMainPackage checks pattern is a single buildable main package when
// built for the browser and returns its import path
func resolveMainPackage(dir, pattern string) (string, error) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve directory: %s", dir)
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  currentDir,
		Env:  append(os.Environ(), "GOOS=js", "GOARCH=wasm"),
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return "", errors.Wrapf(err, "unable to load package: %s", pattern)
	}
	if len(pkgs) != 1 {
		return "", errors.Errorf("expected exactly one package for %s, got %d", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return "", errors.Errorf("package %s has errors: %v", pattern, pkg.Errors[0])
	}
	if pkg.Name != "main" {
		return "", errors.Errorf("package %s is not a main package, got package %s", pkg.PkgPath, pkg.Name)
	}
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("Cannot find *.go files in: " + pkg.PkgPath)
	}
	return pkg.PkgPath, nil
}

// getWasmJSPath finds the wasm_exec.js that matches the Go toolchain,
// it moved from misc/wasm to lib/wasm in Go 1.24
func getWasmJSPath(goroot string) (string, error) {
	const baseName = "wasm_exec.js"
	candidates := []string{
		filepath.Join(goroot, "lib", "wasm", baseName),
		filepath.Join(goroot, "misc", "wasm", baseName),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Errorf("unable to find %s in GOROOT: %s", baseName, goroot)
}

package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/evanw/esbuild/pkg/api"
)

const (
	frontendDir = "cmd/web/frontend"
	assetsDir   = "cmd/web/assets"
)

func main() {
	err := buildWasm()
	if err != nil {
		log.Fatalf("could not build wasm tracker: %s", err)
	}

	buildOpts := api.BuildOptions{
		EntryPointsAdvanced: []api.EntryPoint{
			{
				InputPath:  filepath.Join(frontendDir, "index.js"),
				OutputPath: "index",
			},
			{
				InputPath:  wasmExecPath(),
				OutputPath: "wasm_exec",
			},
		},
		External: []string{"./wasm_exec.js"},
		Outdir:   filepath.Join(assetsDir, "js"),
		Bundle:   true,
		Platform: api.PlatformBrowser,
		Format:   api.FormatESModule,
		Target:   api.ES2020,
		Write:    true,
	}
	result := api.Build(buildOpts)
	if len(result.Errors) != 0 {
		log.Fatalf("esbuild failed (%v)", result.Errors)
	}
	log.Printf("bundled %d files into %s", len(result.OutputFiles), buildOpts.Outdir)
}

func wasmExecPath() string {
	// moved from misc/wasm in Go 1.24
	p := filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return fmt.Sprintf("%s/misc/wasm/wasm_exec.js", runtime.GOROOT())
}

func buildWasm() error {
	cmd := exec.Command("go", "build", "-o", filepath.Join(assetsDir, "innerer.wasm"), "./cmd/wasm")
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

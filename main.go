package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/folio/cmd"
)

// The browser module and its loader are served from static/.
//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/folio.wasm ./cmd/wasm"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/wasm_exec.js"

func main() {
	cmd.Execute()
}

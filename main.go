package main

import (
	"embed"

	"github.com/haierkeys/file-cms-service/cmd"
)

//go:embed templates
var efs embed.FS

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(efs, c)
}

// Package cmd 定义命令行入口
package cmd

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templateFiles embed.FS
var configDefault string
var rootCmd = &cobra.Command{
	Use:   "file-cms-service",
	Short: "File CMS Service",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpTemplate()
		cmd.Help()
	},
}

func Execute(efs embed.FS, c string) {
	templateFiles = efs
	configDefault = c
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

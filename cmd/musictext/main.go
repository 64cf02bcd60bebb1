// Package main is the entry point for musictext CLI
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/musictext/pkg/api"
	"github.com/james-see/musictext/pkg/lily"
	"github.com/james-see/musictext/pkg/notation"
	"github.com/james-see/musictext/pkg/tui"
	"github.com/james-see/musictext/pkg/vexflow"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "musictext",
	Short: "Compile plain-text music notation",
	Long: `musictext compiles plain-text music notation (number, western, sargam,
bhatkhande and tabla systems) into a structured document, LilyPond source
or VexFlow JSON.

Examples:
  musictext compile song.txt -o song.json
  musictext lily song.txt -o song.ly
  musictext vexflow song.txt -o song.json
  musictext tui
  musictext serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var compileCmd = &cobra.Command{
	Use:   "compile <input.txt>",
	Short: "Compile notation to a document JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

var lilyCmd = &cobra.Command{
	Use:   "lily <input.txt>",
	Short: "Compile notation to LilyPond source",
	Args:  cobra.ExactArgs(1),
	RunE:  runLily,
}

var vexflowCmd = &cobra.Command{
	Use:   "vexflow <input.txt>",
	Short: "Compile notation to VexFlow JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runVexflow,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// compile command
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .json file path")

	// lily command
	lilyCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .ly file path")

	// vexflow command
	vexflowCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .json file path")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(lilyCmd)
	rootCmd.AddCommand(vexflowCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func getOutputPath(input, defaultExt string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + defaultExt
}

func compileFile(input string) (*notation.Document, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	return notation.Compile(string(data))
}

func runCompile(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".json")

	doc, err := compileFile(input)
	if err != nil {
		return err
	}

	result, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, result, 0644); err != nil {
		return err
	}

	fmt.Printf("Compiled %s -> %s\n", input, output)
	return nil
}

func runLily(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".ly")

	doc, err := compileFile(input)
	if err != nil {
		return err
	}

	result, err := lily.New().Emit(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(result), 0644); err != nil {
		return err
	}

	fmt.Printf("Compiled %s -> %s\n", input, output)
	return nil
}

func runVexflow(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".json")

	doc, err := compileFile(input)
	if err != nil {
		return err
	}

	result, err := vexflow.New().Emit(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(result), 0644); err != nil {
		return err
	}

	fmt.Printf("Compiled %s -> %s\n", input, output)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}

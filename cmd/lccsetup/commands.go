package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lambdacode/lccsetup/internal/log"
	"github.com/lambdacode/lccsetup/internal/osinfo"
	"github.com/lambdacode/lccsetup/internal/tui"
	"github.com/lambdacode/lccsetup/internal/wizard"
)

var rootCmd = &cobra.Command{
	Use:               "lccsetup",
	Short:             "LCC Setup Wizard",
	Long:              "LCC Setup Wizard\n\nGuides you through installing the LCC compiler toolchain\nand its standard libraries.",
	PersistentPreRunE: setupLogging,
	RunE:              runWizard,
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func setupLogging(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	log.SetDebug(debug)

	logFile, _ := cmd.Flags().GetString("log-file")
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	info, err := osinfo.GetOSInfo()
	if err != nil {
		return err
	}
	log.Debug("starting wizard", "os", info.OS, "arch", info.Architecture, "home", info.HomeDir)

	ctrl := wizard.NewController(info.HomeDir)
	model := tui.NewModel(ctrl, info, Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("LCC Setup Wizard v%s\n", Version)
}

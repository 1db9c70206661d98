// Package cmd implements the command-line interface for lectern.
package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/lectern-cli/lectern/icon"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/style"
	"github.com/spf13/viper"
)

// CheckDependencies warns when the configured transcoder is missing from
// PATH. Segmented captures cannot be downloaded without it; progressive
// ones still work, so this is not fatal.
func CheckDependencies() {
	transcoder := viper.GetString(key.DownloadTranscoder)
	if _, err := exec.LookPath(transcoder); err != nil {
		log.Warnf("transcoder %q not found in PATH", transcoder)
		printMissingDependencyWarning(transcoder)
	}
}

func printMissingDependencyWarning(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Missing Transcoder", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.TextColor).Render(fmt.Sprintf("'%s' was not found in your PATH.\nSegmented (HLS) lectures cannot be downloaded without it.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}

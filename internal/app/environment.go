package app

import (
	"strings"

	"github.com/jmagar/ytui/internal/model"
	"github.com/jmagar/ytui/internal/ui"
)

// PrintStartupEnvironment shows the resolved tools and paths.
func PrintStartupEnvironment(settings *model.Settings, tools model.Tools) {
	ui.PrintSection("Environment")
	configPath := settings.ConfigPath
	if strings.TrimSpace(configPath) == "" {
		configPath = "(defaults)"
	}
	player := tools.Player
	if player == "" {
		player = "Not found (preview disabled)"
	}
	ui.PrintKeyValue("Config File", configPath, ui.ColorCyan)
	ui.PrintKeyValue("Downloader", tools.Downloader, ui.ColorCyan)
	ui.PrintKeyValue("Player", player, ui.ColorCyan)
	ui.PrintKeyValue("Cookies File", settings.CookiesFile, ui.ColorCyan)
	ui.PrintKeyValue("Output Directory", settings.OutputDir, ui.ColorCyan)
	ui.PrintKeyValue("Audio Format", string(settings.AudioFormat), ui.ColorYellow)
	ui.PrintKeyValue("Run Log", settings.LogPath, ui.ColorCyan)
}

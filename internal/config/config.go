package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/jmagar/ytui/internal/helpers"
	"github.com/jmagar/ytui/internal/model"
)

// ProgramName is used in usage output.
const ProgramName = "ytui"

// ParseArgs parses argv (without the program name) into model.Args. The
// parser is returned so callers can print usage or help on error; arg.ErrHelp
// and arg.ErrVersion are passed through untouched.
func ParseArgs(argv []string) (*model.Args, *arg.Parser, error) {
	var args model.Args
	p, err := arg.NewParser(arg.Config{Program: ProgramName}, &args)
	if err != nil {
		return nil, nil, fmt.Errorf("build arg parser: %w", err)
	}
	if err := p.Parse(argv); err != nil {
		return &args, p, err
	}
	if err := ValidateArgs(&args); err != nil {
		return &args, p, err
	}
	return &args, p, nil
}

// ValidateArgs normalizes and checks flag values go-arg cannot express.
func ValidateArgs(args *model.Args) error {
	args.CookiesFromBrowser = strings.ToLower(strings.TrimSpace(args.CookiesFromBrowser))
	if args.CookiesFromBrowser != "" && !model.IsSupportedBrowser(args.CookiesFromBrowser) {
		return fmt.Errorf("invalid choice for --cookies-from-browser: %q (choose from %s)",
			args.CookiesFromBrowser, strings.Join(model.SupportedBrowsers, ", "))
	}
	args.CookiesFile = strings.TrimSpace(args.CookiesFile)
	args.OutputDir = strings.TrimSpace(args.OutputDir)
	return nil
}

// SearchPaths returns the config file locations, in priority order.
func SearchPaths() []string {
	return []string{
		helpers.ExpandHome("~/.ytui/config.json"),
		helpers.ExpandHome("~/.config/ytui/config.json"),
	}
}

// ReadConfig reads the first config file found. A missing file is not an
// error: the zero Config and an empty path are returned.
func ReadConfig() (*model.Config, string, error) {
	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read config at %s: %w", path, err)
		}
		var cfg model.Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse config at %s: %w", path, err)
		}
		return &cfg, path, nil
	}
	return &model.Config{}, "", nil
}

// Resolve layers flags over the config file over defaults.
func Resolve(args *model.Args, cfg *model.Config, configPath string) (*model.Settings, error) {
	if cfg == nil {
		cfg = &model.Config{}
	}
	s := &model.Settings{
		Args:        *args,
		CookiesFile: firstOf(cfg.CookiesFile, model.DefaultCookiesFile),
		OutputDir:   firstOf(args.OutputDir, cfg.OutputDir, model.DefaultOutputDir),
		LogPath:     firstOf(cfg.LogPath, model.DefaultLogPath),
		AudioFormat: model.AudioMP3,
		ConfigPath:  configPath,
	}
	if strings.TrimSpace(cfg.AudioFormat) != "" {
		f, ok := model.ParseAudioFormat(cfg.AudioFormat)
		if !ok {
			return nil, fmt.Errorf("invalid audioFormat in %s: %q (must be mp3 or wav)", configPath, cfg.AudioFormat)
		}
		s.AudioFormat = f
	}
	for _, p := range []*string{&s.CookiesFile, &s.OutputDir, &s.LogPath} {
		*p = helpers.ExpandHome(*p)
		if err := helpers.ValidatePath(*p); err != nil {
			return nil, fmt.Errorf("%s: %w", *p, err)
		}
	}
	s.LogPath = filepath.Clean(s.LogPath)
	return s, nil
}

// Load parses argv, reads the config file, and resolves settings.
func Load(argv []string) (*model.Settings, *arg.Parser, error) {
	args, p, err := ParseArgs(argv)
	if err != nil {
		return nil, p, err
	}
	cfg, path, err := ReadConfig()
	if err != nil {
		return nil, p, err
	}
	s, err := Resolve(args, cfg, path)
	return s, p, err
}

func firstOf(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

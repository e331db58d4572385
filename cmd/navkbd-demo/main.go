// Package main is a demo prompt for the navkbd on-screen keyboard.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/pawndev/navkbd/pkg/navkbd"
	"github.com/pawndev/navkbd/pkg/navkbd/screen"
)

// Build information set via ldflags
var (
	version = "dev"
	commit  = "none"
)

var (
	configPath  string
	lang        string
	mode        int
	coordinates bool
	search      bool
	device      string
	theme       string
)

var places = []string{
	"Berlin", "Bremen", "München", "Düsseldorf", "Москва", "Санкт-Петербург",
	"Київ", "Минск", "서울", "부산", "Paris", "Zürich", "Wien", "Praha",
}

var rootCmd = &cobra.Command{
	Use:   "navkbd-demo",
	Short: "Open an on-screen keyboard prompt and print the entered text",
	RunE:  run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("navkbd-demo %s\n", version)
		fmt.Printf("commit: %s\n", commit)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "navkbd.toml", "path to the TOML configuration")
	flags.StringVarP(&lang, "lang", "l", "", "language or country code, overrides the configured locale")
	flags.IntVarP(&mode, "mode", "m", -1, "initial keyboard mode code, -1 for the locale default")
	flags.BoolVar(&coordinates, "coordinates", false, "open the coordinate keyboard")
	flags.BoolVarP(&search, "search", "s", false, "open a search prompt with a result list")
	flags.StringVar(&device, "device", "", "evdev device for physical keys, overrides input_device")
	flags.StringVar(&theme, "theme", "", "day or night, overrides the configured theme")

	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (navkbd.Config, error) {
	config, err := navkbd.LoadConfig(configPath)
	if err != nil {
		return config, err
	}
	config = config.WithEnv()
	if lang != "" {
		config.Locale = lang
	}
	if device != "" {
		config.InputDevice = device
	}
	if theme != "" {
		config.Theme = theme
	}
	return config, nil
}

func matchPlaces(query string) []string {
	fold := cases.Fold()
	needle := fold.String(query)

	var out []string
	for _, place := range places {
		if strings.Contains(fold.String(place), needle) {
			out = append(out, place)
		}
	}
	return out
}

func run(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	scr, err := screen.Init(screen.Options{
		WindowTitle: "navkbd",
		Config:      config,
	})
	if err != nil {
		return err
	}
	defer scr.Close()

	events, stop := openHardware(cmd.Context(), config.InputDevice)
	defer stop()

	opts := screen.PromptOptions{
		Mode:        mode,
		Search:      search,
		Coordinates: coordinates,
		Hardware:    events,
	}
	if search {
		opts.Results = matchPlaces
	}

	result, err := scr.Prompt(opts)
	if errors.Is(err, navkbd.ErrCancelled) {
		navkbd.GetLogger().Info("Prompt cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	navkbd.GetLogger().Info("Prompt confirmed", "mode", result.Mode)
	fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

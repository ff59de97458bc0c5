package cmd

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quill-lang/quill/internal/diag"
)

var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill language front end",
	Long: `Quill tokenizes, parses and validates Quill source files.

Commands:
  tokens   dump the token stream of a file
  parse    print the parsed syntax tree
  check    report diagnostics only
  watch    re-check files on change
  repl     interactive read-parse loop`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.quill.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// config is the optional .quill.yaml file.
type config struct {
	Color bool `yaml:"color"`
	Watch struct {
		DebounceMS int `yaml:"debounce_ms"`
	} `yaml:"watch"`
}

func defaultConfig() config {
	var c config
	c.Color = true
	c.Watch.DebounceMS = 200
	return c
}

// loadConfig reads the config file. A missing default file is not an
// error; an explicitly named file must exist.
func loadConfig() (config, error) {
	c := defaultConfig()

	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = ".quill.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

// newRenderer builds the diagnostic renderer from config and flags.
func newRenderer() (*diag.Renderer, config, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, c, err
	}
	color := c.Color && !noColor
	return diag.NewRenderer(color), c, nil
}

func debounce(c config) time.Duration {
	ms := c.Watch.DebounceMS
	if ms <= 0 {
		ms = 200
	}
	return time.Duration(ms) * time.Millisecond
}

// Wiki credentials come from flags, the environment, or an optional YAML
// config file, in that precedence. They are resolved here at the CLI
// boundary and handed to the wiki client as a struct; no pipeline
// component reads ambient state itself.
package cmd

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/scrapemark/core/wiki"
)

// Environment variables recognized for wiki credentials.
const (
	envWikiBase  = "CONFLUENCE_URL"
	envWikiEmail = "CONFLUENCE_EMAIL"
	envWikiToken = "CONFLUENCE_API_TOKEN"
)

// FileConfig is the optional YAML configuration schema.
type FileConfig struct {
	Output string `yaml:"output"`

	Wiki struct {
		Base  string `yaml:"base"`
		Email string `yaml:"email"`
		Token string `yaml:"token"`
	} `yaml:"wiki"`
}

// loadFileConfig reads and parses a YAML config file.
func loadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// resolveWikiConfig merges flag, environment, and file values into the
// wiki client config. Flags win over environment, environment over file.
func resolveWikiConfig(file FileConfig, flagBase, flagEmail, flagToken string, timeout time.Duration) wiki.Config {
	return wiki.Config{
		BaseURL:  firstNonEmpty(flagBase, os.Getenv(envWikiBase), file.Wiki.Base),
		Email:    firstNonEmpty(flagEmail, os.Getenv(envWikiEmail), file.Wiki.Email),
		APIToken: firstNonEmpty(flagToken, os.Getenv(envWikiToken), file.Wiki.Token),
		Timeout:  timeout,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

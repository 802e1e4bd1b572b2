package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/gophersatwork/precache"
)

// fileConfig mirrors the library configuration with serializable fields.
// Unknown keys are rejected so a typo fails the build instead of silently
// disabling an option.
type fileConfig struct {
	GlobDirectory                 string                              `yaml:"globDirectory"`
	GlobPatterns                  []string                            `yaml:"globPatterns"`
	GlobIgnores                   []string                            `yaml:"globIgnores"`
	TemplatedURLs                 map[string]precache.TemplatedSource `yaml:"templatedUrls"`
	ModifyURLPrefix               map[string]string                   `yaml:"modifyUrlPrefix"`
	MaximumFileSizeToCacheInBytes int64                               `yaml:"maximumFileSizeToCacheInBytes"`
	DontCacheBustURLsMatching     string                              `yaml:"dontCacheBustUrlsMatching"`

	// Deprecated spellings accepted from predecessor-tool configs.
	StaticFileGlobs          []string                            `yaml:"staticFileGlobs"`
	DynamicURLToDependencies map[string]precache.TemplatedSource `yaml:"dynamicUrlToDependencies"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *fileConfig) toConfig() (precache.Config, error) {
	config := precache.Config{
		GlobDirectory:                 fc.GlobDirectory,
		GlobPatterns:                  fc.GlobPatterns,
		GlobIgnores:                   fc.GlobIgnores,
		TemplatedURLs:                 fc.TemplatedURLs,
		ModifyURLPrefix:               fc.ModifyURLPrefix,
		MaximumFileSizeToCacheInBytes: fc.MaximumFileSizeToCacheInBytes,
		StaticFileGlobs:               fc.StaticFileGlobs,
		DynamicURLToDependencies:      fc.DynamicURLToDependencies,
	}

	if fc.DontCacheBustURLsMatching != "" {
		re, err := regexp.Compile(fc.DontCacheBustURLsMatching)
		if err != nil {
			return precache.Config{}, fmt.Errorf("dontCacheBustUrlsMatching: %w", err)
		}
		config.DontCacheBustURLsMatching = re
	}

	return config, nil
}

package schema

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ninggf/folio4go/tokenizer"
)

// Config object
type Config struct {
	Name   string
	Fields map[string]Field
}

type Setting struct {
	Schema *Schema
	Conf   *Config
}

// LoadConf from file
func LoadConf(file string) (*Setting, error) {
	cfg := new(Config)
	md, err := toml.DecodeFile(file, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	logUndecoded(md)
	return cfg.checkValid(tokenizer.DefaultProvider())
}

// DecodeConf parses a schema held in memory
func DecodeConf(data string) (*Setting, error) {
	cfg := new(Config)
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	logUndecoded(md)
	return cfg.checkValid(tokenizer.DefaultProvider())
}

func (config *Config) checkValid(provider tokenizer.Provider) (*Setting, error) {
	config.Name = strings.TrimSpace(config.Name)
	if config.Name == "" {
		return nil, ErrMissingName
	}
	if config.Fields == nil {
		config.Fields = map[string]Field{}
	}

	sch, err := newSchema(config.Fields, provider)
	if err != nil {
		return nil, err
	}
	return &Setting{Schema: sch, Conf: config}, nil
}

func logUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		LogDebug("schema key %s is not used", key.String())
	}
}

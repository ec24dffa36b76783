package config

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Registry reads named backend environments from a profiles file
// (~/.salespulsecfg), one ini section per environment:
//
//	[staging]
//	base_url = https://staging.example.com/api
//	timeout_seconds = 15
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

// Profile describes one backend environment.
type Profile struct {
	Name    string
	BaseURL string
	Timeout time.Duration
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section := cr.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	baseURL := section.Key("base_url").String()
	if baseURL == "" {
		return nil, fmt.Errorf("profile %s has no base_url", name)
	}

	timeoutSeconds := section.Key("timeout_seconds").MustInt(0)

	return &Profile{
		Name:    name,
		BaseURL: baseURL,
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

package notifykit

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/notifykit/notifykit/pkg/channel"
)

//go:embed scenario.yaml
var defaultScenario []byte

// Script holds the messages a demo run feeds to each component.
// Section banners and the decorator chain are fixed by the runner;
// only the payloads vary.
type Script struct {
	Greeting  string          `yaml:"greeting"`
	Singleton SingletonScript `yaml:"singleton"`
	Factory   FactoryScript   `yaml:"factory"`
	Observer  ObserverScript  `yaml:"observer"`
	Strategy  StrategyScript  `yaml:"strategy"`
}

// SingletonScript configures the registry section.
type SingletonScript struct {
	Message string `yaml:"message"`
}

// FactoryScript configures the channel factory section.
type FactoryScript struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
}

// ObserverScript configures the subscriber roster section.
type ObserverScript struct {
	Message string `yaml:"message"`
}

// StrategyScript configures the strategy section. Each message is sent
// through the matching strategy in turn.
type StrategyScript struct {
	EmailMessage string `yaml:"email_message"`
	SMSMessage   string `yaml:"sms_message"`
}

// ParseScript decodes a YAML scenario, rejecting unknown fields, and
// validates the result.
func ParseScript(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, errors.Join(ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// DefaultScript returns the embedded canonical scenario.
// It panics only if the embedded file is corrupt, which the package
// tests guard against.
func DefaultScript() Script {
	s, err := ParseScript(defaultScenario)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate reports whether the script can drive a full demo run.
// Messages may be empty; the components accept any string.
func (s Script) Validate() error {
	if s.Greeting == "" {
		return fmt.Errorf("%w: greeting is required", ErrInvalidScript)
	}
	if !slices.Contains(channel.Kinds(), s.Factory.Kind) {
		return fmt.Errorf("%w: factory kind must be one of %v, got %q",
			ErrInvalidScript, channel.Kinds(), s.Factory.Kind)
	}
	return nil
}

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "generate.width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidColorModes returns the list of valid output.color values
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSimulation()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateGenerate()...)

	return errors
}

func (c *Config) validateSimulation() []ValidationError {
	var errors []ValidationError
	if c.Simulation.MaxTurns < 0 {
		errors = append(errors, ValidationError{
			Field:   "simulation.max_turns",
			Value:   c.Simulation.MaxTurns,
			Message: "must be non-negative (0 disables the limit)",
		})
	}
	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError
	if !slices.Contains(ValidColorModes(), c.Output.Color) {
		errors = append(errors, ValidationError{
			Field:   "output.color",
			Value:   c.Output.Color,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidColorModes(), ", ")),
		})
	}
	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.Format != "" && !slices.Contains(ValidLogFormats(), c.Logging.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateGenerate() []ValidationError {
	var errors []ValidationError
	g := c.Generate

	if g.Width < 1 || g.Height < 1 || g.Width*g.Height < 2 {
		errors = append(errors, ValidationError{
			Field:   "generate.width",
			Value:   fmt.Sprintf("%dx%d", g.Width, g.Height),
			Message: "grid must hold at least two hubs",
		})
	}
	if g.Drones < 0 {
		errors = append(errors, ValidationError{
			Field:   "generate.drones",
			Value:   g.Drones,
			Message: "must be non-negative",
		})
	}
	if g.HubCapacity < 1 {
		errors = append(errors, ValidationError{
			Field:   "generate.hub_capacity",
			Value:   g.HubCapacity,
			Message: "must be positive",
		})
	}
	if g.LinkCapacity < 1 {
		errors = append(errors, ValidationError{
			Field:   "generate.link_capacity",
			Value:   g.LinkCapacity,
			Message: "must be positive",
		})
	}

	levels := []struct {
		field string
		value float64
	}{
		{"generate.blocked_level", g.BlockedLevel},
		{"generate.restricted_level", g.RestrictedLevel},
		{"generate.priority_level", g.PriorityLevel},
	}
	for _, l := range levels {
		if l.value < 0 || l.value > 1 {
			errors = append(errors, ValidationError{
				Field:   l.field,
				Value:   l.value,
				Message: "must be between 0 and 1",
			})
		}
	}
	if g.BlockedLevel > g.RestrictedLevel || g.RestrictedLevel > g.PriorityLevel {
		errors = append(errors, ValidationError{
			Field:   "generate.restricted_level",
			Value:   g.RestrictedLevel,
			Message: "levels must satisfy blocked <= restricted <= priority",
		})
	}

	return errors
}

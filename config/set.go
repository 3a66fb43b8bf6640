package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// UnknownKeyError reports a key missing from Default along with the closest known key.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the registered field for k.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, &UnknownKeyError{Key: k, Closest: closest}
}

// Parse converts raw command line values to the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, errors.New("value is required")
	}

	raw := values[0]
	switch f.Value.(type) {
	case string:
		if len(f.Allowed) > 0 && !lo.Contains(f.Allowed, raw) {
			return nil, fmt.Errorf("invalid value %s for %s, expected one of: %s", raw, f.Key, strings.Join(f.Allowed, ", "))
		}
		return raw, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", f.Key, raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", f.Key, raw)
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %s", f.Key, f.typeName())
	}
}

// Set parses values for k and applies them to the running configuration.
func Set(k string, values []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	v, err := field.Parse(values)
	if err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, nil
}

// ResetKey restores k to its default value.
func ResetKey(k string) error {
	field, err := Lookup(k)
	if err != nil {
		return err
	}

	viper.Set(k, field.Value)
	return nil
}

// ResetAll restores every key to its default value.
func ResetAll() {
	for k, field := range Default {
		viper.Set(k, field.Value)
	}
}

// Write saves the running configuration to File, creating it if needed.
func Write() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfigAs(File())
	}
	return err
}

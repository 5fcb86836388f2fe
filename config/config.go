// miscall: platform-calibrated base-miscall probabilities for genotyping.
// Copyright (c) 2020 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

// Package config loads engine and traversal options from a
// configuration file and the environment.
package config

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/exascience/miscall/genotyper"
	"github.com/exascience/miscall/utils"
)

// Configuration keys. Environment variables use the upper-case key
// with a MISCALL_ prefix, e.g. MISCALL_DEFAULT_PLATFORM.
const (
	RaiseOnUnknownPlatformKey = "raise_on_unknown_platform"
	DefaultPlatformKey        = "default_platform"
	ParallelismKey            = "parallelism"
	SkipUnsupportedReadsKey   = "skip_unsupported_reads"
)

func newViper() *viper.Viper {
	v := viper.New()
	defaults, callDefaults := genotyper.DefaultOptions(), genotyper.DefaultCallOptions()
	v.SetDefault(RaiseOnUnknownPlatformKey, defaults.RaiseOnUnknownPlatform)
	v.SetDefault(DefaultPlatformKey, defaults.DefaultPlatform.String())
	v.SetDefault(ParallelismKey, callDefaults.Parallelism)
	v.SetDefault(SkipUnsupportedReadsKey, callDefaults.SkipUnsupportedReads)
	v.SetEnvPrefix(utils.ProgramName)
	v.AutomaticEnv()
	return v
}

/*
Load reads options from the given file (any format viper supports,
chosen by extension), overridden by MISCALL_* environment variables.
An empty path yields the defaults plus the environment.

Setting default_platform alone does not accept reads of unknown
platform: raise_on_unknown_platform must be false as well.
*/
func Load(path string) (genotyper.Options, genotyper.CallOptions, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return genotyper.Options{}, genotyper.CallOptions{}, fmt.Errorf("reading configuration %v: %w", path, err)
		}
	}
	platform, err := genotyper.ParsePlatform(strings.TrimSpace(v.GetString(DefaultPlatformKey)))
	if err != nil {
		return genotyper.Options{}, genotyper.CallOptions{}, fmt.Errorf("%v: %w", DefaultPlatformKey, err)
	}
	options := genotyper.Options{
		RaiseOnUnknownPlatform: v.GetBool(RaiseOnUnknownPlatformKey),
		DefaultPlatform:        platform,
	}
	callOptions := genotyper.CallOptions{
		Parallelism:          v.GetInt(ParallelismKey),
		SkipUnsupportedReads: v.GetBool(SkipUnsupportedReadsKey),
	}
	if options.RaiseOnUnknownPlatform && platform != genotyper.Unknown {
		log.WithField(DefaultPlatformKey, platform).Warn("default platform is ignored while raise_on_unknown_platform is true")
	}
	return options, callOptions, nil
}

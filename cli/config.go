// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/pelletier/go-toml"

	"github.com/rosterio/roster/pkg/errors"
	rosdk "github.com/rosterio/roster/pkg/sdk/go"
)

type remotes struct {
	PeopleURL       string `toml:"people_url"`
	TLSVerification bool   `toml:"tls_verification"`
}

type config struct {
	Remotes   remotes `toml:"remotes"`
	RawOutput string  `toml:"raw_output"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

var (
	errReadFail       = errors.New("failed to read config file")
	errWritingConfig  = errors.New("error in writing the updated config to file")
	defaultConfigPath = "./config.toml"
)

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, err
	}

	return c, nil
}

// ParseConfig parses the config file, creating it with default values when
// it does not exist.
func ParseConfig(sdkConf rosdk.Config) (rosdk.Config, error) {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}

	_, err := os.Stat(ConfigPath)
	switch {
	case os.IsNotExist(err):
		defaultConfig := config{
			Remotes: remotes{
				PeopleURL:       "http://localhost:9400",
				TLSVerification: false,
			},
		}
		buf, err := toml.Marshal(defaultConfig)
		if err != nil {
			return sdkConf, err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return sdkConf, errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return sdkConf, err
	}

	config, err := read(ConfigPath)
	if err != nil {
		return sdkConf, err
	}

	if config.Remotes.PeopleURL != "" {
		sdkConf.PeopleURL = config.Remotes.PeopleURL
	}
	sdkConf.TLSVerification = config.Remotes.TLSVerification

	if config.RawOutput != "" {
		rawOutput, err := strconv.ParseBool(config.RawOutput)
		if err != nil {
			return sdkConf, err
		}
		RawOutput = rawOutput || RawOutput
	}

	return sdkConf, nil
}

// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brickchain/brickd/chaincfg/activenet"
	"github.com/brickchain/brickd/infrastructure/logger"
	"github.com/brickchain/brickd/version"
	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "brickd.log"
	defaultErrLogFilename = "brickd_err.log"

	// EnvPrefix prefixes the names of the environment variables read into
	// the configuration, as in BRICKD_TESTNET.
	EnvPrefix = "BRICKD"
)

var (
	// DefaultAppDir is the default home directory for brickd.
	DefaultAppDir = btcutil.AppDataDir("brickd", false)

	defaultLogDir = filepath.Join(DefaultAppDir, defaultLogDirname)
)

// Flags defines the configuration options for brickd.
//
// Values are layered: the defaults below, then the YAML file named by
// --configfile, then BRICKD_* environment variables, then the command line.
//
// See loadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit" yaml:"-" ignored:"true"`
	ConfigFile    string `short:"C" long:"configfile" description:"Path to YAML configuration file" yaml:"-" envconfig:"CONFIGFILE"`
	LogDir        string `long:"logdir" description:"Directory to log output." yaml:"logdir" envconfig:"LOGDIR"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems" yaml:"debuglevel" envconfig:"DEBUGLEVEL"`
	ShowParams    bool   `long:"showparams" description:"Print the parameters of the selected network and exit" yaml:"-" ignored:"true"`
	MetricsListen string `long:"metricslisten" description:"Serve prometheus metrics on this interface/port (eg. 127.0.0.1:9100)" yaml:"metricslisten" envconfig:"METRICSLISTEN"`
	NetworkFlags  `yaml:",inline"`
}

// Config defines the configuration options for brickd, after resolution.
type Config struct {
	*Flags

	// LogFile and ErrLogFile are the paths of the log files of the
	// selected network.
	LogFile    string
	ErrLogFile string
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

func defaultFlags() *Flags {
	return &Flags{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}
}

// LoadConfig loads the configuration from the command line arguments of the
// process and resolves the active network on registry.
func LoadConfig(registry *activenet.Registry) (*Config, error) {
	return loadConfig(os.Args[1:], registry)
}

// loadConfig initializes and parses the config using a config file, the
// environment and command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load the YAML configuration file overwriting defaults with any
//     specified options
//  4. Apply BRICKD_* environment variables
//  5. Parse CLI options and overwrite/add any specified options
//  6. Select the network on registry
func loadConfig(args []string, registry *activenet.Registry) (*Config, error) {
	cfgFlags := defaultFlags()

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified. Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := *cfgFlags
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, err
		}
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	funcName := "loadConfig"
	configFile := preCfg.ConfigFile
	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIGFILE")
	}
	if configFile != "" {
		err := loadConfigFile(cleanAndExpandPath(configFile), cfgFlags)
		if err != nil {
			err := errors.Wrapf(err, "%s", funcName)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, err
		}
	}

	err = envconfig.Process(EnvPrefix, cfgFlags)
	if err != nil {
		err := errors.Wrapf(err, "%s: error processing environment", funcName)
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(cfgFlags, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); !ok || flagsErr.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, err
	}

	// Reject any arguments that are not options.
	if len(remainingArgs) > 0 {
		err := errors.Errorf("%s: unexpected arguments %v", funcName, remainingArgs)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}

	// Multiple networks can't be selected simultaneously.
	err = cfgFlags.ResolveNetwork(parser, registry)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Flags: cfgFlags}

	// Append the network type to the log directory so it is "namespaced"
	// per network in the same fashion as the data directory.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.NetParams().DataDirName)
	cfg.LogFile = filepath.Join(cfg.LogDir, defaultLogFilename)
	cfg.ErrLogFile = filepath.Join(cfg.LogDir, defaultErrLogFilename)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	return cfg, nil
}

// loadConfigFile reads the YAML file at path into cfgFlags. Keys absent from
// the file leave the corresponding values untouched.
func loadConfigFile(path string, cfgFlags *Flags) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "error reading config file")
	}
	err = yaml.UnmarshalStrict(buf, cfgFlags)
	if err != nil {
		return errors.Wrapf(err, "error parsing config file %s", path)
	}
	return nil
}

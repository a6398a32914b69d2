package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "plate"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	templateFlagName     = "template"
	platformFlagName     = "platform"
	authorFlagName       = "author"
	organizationFlagName = "organization"
	bundleIDFlagName     = "bundle-id"
	bundlePrefixFlagName = "bundle-prefix"
	noInputFlagName      = "no-input"
	skipPostFlagName     = "skip-post"
	forceFlagName        = "force"
	atomicFlagName       = "atomic"
	projectFlagName      = "project"
	excludeFlagName      = "exclude"

	authorConfigKey       = "defaults.author"
	organizationConfigKey = "defaults.organization"
	bundlePrefixConfigKey = "defaults.bundle_prefix"
	excludeConfigKey      = "paths.exclude"
	postTimeoutKey        = "post.timeout"

	defaultTemplate     = ""
	defaultBundlePrefix = ""
	defaultNoInput      = false
	defaultSkipPost     = false
	defaultAtomic       = false

	defaultPostTimeout = time.Minute * 5

	envPrefix = "PLATE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".plate.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(templateFlagName, defaultTemplate)
	viper.SetDefault(authorConfigKey, "")
	viper.SetDefault(organizationConfigKey, "")
	viper.SetDefault(bundlePrefixConfigKey, defaultBundlePrefix)
	viper.SetDefault(noInputFlagName, defaultNoInput)
	viper.SetDefault(skipPostFlagName, defaultSkipPost)
	viper.SetDefault(atomicFlagName, defaultAtomic)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(postTimeoutKey, int64(defaultPostTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// postTimeout returns the configured timeout for post-scaffold commands.
func postTimeout() time.Duration {
	seconds := viper.GetInt64(postTimeoutKey)
	if seconds <= 0 {
		return defaultPostTimeout
	}

	return time.Duration(seconds) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

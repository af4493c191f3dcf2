// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/navwar/dindex/pkg/assets"
	"github.com/navwar/dindex/pkg/fs"
	"github.com/navwar/dindex/pkg/index"
	"github.com/navwar/dindex/pkg/lfs"
	"github.com/navwar/dindex/pkg/log"
	"github.com/navwar/dindex/pkg/ts"
)

const (
	DIndexVersion = "0.85.1"
	DIndexURL     = "https://github.com/mikechambers/dispatch"
)

// Index Flags
const (
	flagInputDir   = "input-dir"
	flagVersion    = "version"
	flagVerbose    = "verbose"
	flagShowHidden = "show-hidden"
	flagIgnoreList = "ignore-list"
)

// Page Flags
const (
	flagTitle      = "title"
	flagTimeLayout = "time-layout"
	flagTimeZone   = "time-zone"
	flagReadme     = "readme"
	flagTemplate   = "template"
	flagStylesheet = "stylesheet"
)

// Page Defaults
const (
	DefaultReadme   = "README.md"
	DefaultTimeZone = "Local"
)

// Log Flags
const (
	flagLogPath   = "log-path"
	flagLogFormat = "log-format"
	flagLogPerm   = "log-perm"
)

func initIndexFlags(flag *pflag.FlagSet) {
	flag.String(flagInputDir, "", "the directory to create the index file for (required unless --version is specified)")
	flag.Bool(flagVersion, false, "display current version")
	flag.BoolP(flagVerbose, "v", false, "display additional information as the index is built")
	flag.Bool(flagShowHidden, false, "include hidden directory entries")
	flag.StringSlice(flagIgnoreList, fs.DefaultIgnoreList().Names(), "names of directory entries to exclude.  Replaces the default list.  Names may also follow the flag as arguments, and the flag alone clears the list.")
	// allow --ignore-list without a value
	flag.Lookup(flagIgnoreList).NoOptDefVal = " "
}

func initPageFlags(flag *pflag.FlagSet) {
	flag.String(flagTitle, "", "the page title.  Defaults to the name of the input directory.")
	flag.StringP(flagTimeLayout, "t", ts.DefaultLayoutName, "the layout to use for timestamps.  Use go layout format, or the name of a layout.  Use dindex layouts to show all named layouts.")
	flag.StringP(flagTimeZone, "z", DefaultTimeZone, "the timezone to use for displayed timestamps")
	flag.String(flagReadme, DefaultReadme, "markdown file in the input directory rendered above the listing.  Set to empty to disable.")
	flag.String(flagTemplate, "", "path to a template that replaces the built-in page template")
	flag.String(flagStylesheet, "", "path to a stylesheet that replaces the built-in stylesheet")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, "-", "path to the log output.  Defaults to the operating system's stdout device.")
	flag.String(flagLogFormat, log.FormatText, "output log format.  Either text or json.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
}

// usageError marks errors caused by invalid flags or configuration.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvPrefix("dindex")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func checkLogConfig(v *viper.Viper) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	return log.CheckFormat(v.GetString(flagLogFormat))
}

func checkIndexConfig(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if len(v.GetString(flagInputDir)) == 0 {
		return fmt.Errorf("--%s is required unless --%s is specified", flagInputDir, flagVersion)
	}
	if len(args) > 0 && !cmd.Flags().Changed(flagIgnoreList) {
		return fmt.Errorf("unexpected arguments %q, names to ignore must follow --%s", args, flagIgnoreList)
	}
	if _, err := ts.ParseLocation(v.GetString(flagTimeZone)); err != nil {
		return fmt.Errorf("error parsing time zone location %q: %w", v.GetString(flagTimeZone), err)
	}
	if err := checkLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}

// initLogger returns the logger and a function that closes its output.
func initLogger(verbose bool, path string, perm string, format string, stdout io.Writer) (*log.SimpleLogger, func() error, error) {

	noop := func() error { return nil }

	if !verbose || path == os.DevNull {
		return log.NewSimpleLogger(io.Discard, format), noop, nil
	}

	if path == "-" {
		return log.NewSimpleLogger(stdout, format), noop, nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLogger(f, format), f.Close, nil
}

// ignoreNames returns the names to ignore.
// Names from the environment are a single comma-separated string.
func ignoreNames(cmd *cobra.Command, v *viper.Viper, args []string) ([]string, error) {
	if cmd.Flags().Changed(flagIgnoreList) {
		return append(v.GetStringSlice(flagIgnoreList), args...), nil
	}
	str, ok := v.Get(flagIgnoreList).(string)
	if !ok {
		return v.GetStringSlice(flagIgnoreList), nil
	}
	if len(strings.TrimSpace(str)) == 0 {
		return []string{}, nil
	}
	names, err := csv.NewReader(strings.NewReader(str)).Read()
	if err != nil {
		return nil, fmt.Errorf("error parsing names to ignore from %q: %w", str, err)
	}
	return names, nil
}

func initConfiguration(cmd *cobra.Command, v *viper.Viper, args []string) (*index.Configuration, error) {
	inputDir, err := filepath.Abs(v.GetString(flagInputDir))
	if err != nil {
		return nil, fmt.Errorf("error creating absolute path for input directory: %q", v.GetString(flagInputDir))
	}

	ignore, err := ignoreNames(cmd, v, args)
	if err != nil {
		return nil, err
	}

	location, err := ts.ParseLocation(v.GetString(flagTimeZone))
	if err != nil {
		return nil, fmt.Errorf("error parsing time zone location %q: %w", v.GetString(flagTimeZone), err)
	}

	return &index.Configuration{
		InputDir:   inputDir,
		Verbose:    v.GetBool(flagVerbose),
		ShowHidden: v.GetBool(flagShowHidden),
		IgnoreList: fs.NewIgnoreList(ignore...),
		Title:      v.GetString(flagTitle),
		TimeLayout: ts.ParseLayout(v.GetString(flagTimeLayout)),
		Location:   location,
		Readme:     v.GetString(flagReadme),
	}, nil
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "dindex version : %s\n", DIndexVersion)
	_, _ = fmt.Fprintln(w, DIndexURL)
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:                   `dindex --input-dir DIR [flags]`,
		DisableFlagsInUseLine: true,
		Short:                 "dindex creates an index.html file and stylesheet for a directory.",
		Long: strings.Join([]string{
			"dindex creates an index.html file and stylesheet for a directory.",
			"Directories and files are listed separately, most recently created first.",
			"The index.html and style.css files in the directory are overwritten.",
		}, "\n"),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if v.GetBool(flagVersion) {
				printVersion(stdout)
				return nil
			}

			if errConfig := checkIndexConfig(cmd, v, args); errConfig != nil {
				return &usageError{err: errConfig}
			}

			configuration, err := initConfiguration(cmd, v, args)
			if err != nil {
				return &usageError{err: err}
			}

			logger, closeLog, err := initLogger(
				configuration.Verbose,
				v.GetString(flagLogPath),
				v.GetString(flagLogPerm),
				v.GetString(flagLogFormat),
				stdout)
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
				_ = closeLog()
			}()

			fileSystem := lfs.NewLocalFileSystem()

			input := &index.RunInput{
				Configuration:        configuration,
				FileSystem:           fileSystem,
				HiddenPolicy:         lfs.DefaultHiddenPolicy(),
				Timestamper:          lfs.NewDefaultTimestamper(fileSystem),
				TemplateFileSystem:   assets.Fs(),
				TemplateName:         assets.IndexTemplate,
				StylesheetFileSystem: assets.Fs(),
				StylesheetName:       assets.Stylesheet,
				Version:              DIndexVersion,
				Logger:               logger,
				Now:                  time.Now,
			}

			if templatePath := v.GetString(flagTemplate); len(templatePath) > 0 {
				input.TemplateFileSystem = fileSystem.Afero()
				input.TemplateName = templatePath
			}

			if stylesheetPath := v.GetString(flagStylesheet); len(stylesheetPath) > 0 {
				input.StylesheetFileSystem = fileSystem.Afero()
				input.StylesheetName = stylesheetPath
				input.PreserveStylesheetMetadata = true
			}

			_ = logger.Log("Configuration", map[string]interface{}{
				"input_dir":   configuration.InputDir,
				"show_hidden": configuration.ShowHidden,
				"ignore":      configuration.IgnoreList.Names(),
				"template":    input.TemplateName,
				"stylesheet":  input.StylesheetName,
			})

			result, err := index.Run(ctx, input)
			if err != nil {
				return err
			}

			_ = logger.Log("Done indexing", map[string]interface{}{
				"input_dir": configuration.InputDir,
				"dirs":      len(result.Dirs),
				"files":     len(result.Files),
			})

			return nil
		},
	}
	rootCommand.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	initIndexFlags(rootCommand.Flags())
	initPageFlags(rootCommand.Flags())
	initLogFlags(rootCommand.Flags())

	layoutsCommand := &cobra.Command{
		Use:                   `layouts`,
		DisableFlagsInUseLine: true,
		Short:                 "show supported timestamp layouts",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(ts.NamedLayouts))
			for name := range ts.NamedLayouts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				_, _ = fmt.Fprintf(stdout, "%s: %s\n", name, ts.NamedLayouts[name])
			}
			return nil
		},
	}

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion(stdout)
			return nil
		},
	}

	rootCommand.AddCommand(layoutsCommand, versionCommand)

	return rootCommand
}

func main() {
	rootCommand := newRootCommand(os.Stdout)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stdout, "dindex: "+err.Error())
		if isUsageError(err) {
			fmt.Fprintln(os.Stdout, "Try \"dindex --help\" for more information.")
		}
		diagnostics := log.NewSimpleLogger(os.Stderr, log.FormatText)
		diagnostics.Error("Error running dindex", err)
		_ = diagnostics.Sync()
		os.Exit(1)
	}
}

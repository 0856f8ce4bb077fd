package logger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/ranklog/core"
	"github.com/philipp01105/ranklog/formatter"
	"github.com/philipp01105/ranklog/sink"
)

// Config is the initialization-time configuration of a Logger.
type Config struct {
	// Threshold is a level name: FATAL, ERROR, WARN, INFO, DEBUG, TRACE or
	// OFF. Empty means INFO.
	Threshold string
	// RootRank is the rank that emits Root lines
	RootRank int
	// Rank of this process; nil reads it from the MPI launcher environment
	Rank *int
	// Size is the number of processes in the job, 0 when unknown
	Size int
	// Timestamp, Hostname, ShowRank and ShortFile select prefix fields
	Timestamp       bool
	TimestampFormat string
	Hostname        bool
	ShowRank        bool
	ShortFile       bool
	// CoarseClock uses the cached clock for timestamps
	CoarseClock bool
	// Outputs are passed to sink.Open by Open and Init
	Outputs []string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Threshold: core.DefaultLevel.String(),
		Outputs:   []string{"stderr"},
	}
}

// ConfigError reports one invalid configuration value.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ranklog: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsConfigError reports whether err is, wraps or combines a *ConfigError.
func IsConfigError(err error) bool {
	for _, e := range multierr.Errors(err) {
		var ce *ConfigError
		if errors.As(e, &ce) {
			return true
		}
	}
	return false
}

// level parses Threshold, treating an empty name as DefaultLevel.
func (c Config) level() (core.Level, error) {
	if c.Threshold == "" {
		return core.DefaultLevel, nil
	}
	return core.ParseLevel(c.Threshold)
}

// Validate checks every field and returns all violations combined.
func (c Config) Validate() error {
	var err error
	if _, perr := c.level(); perr != nil {
		err = multierr.Append(err, &ConfigError{"threshold", c.Threshold, "unknown level name"})
	}
	if c.RootRank < 0 {
		err = multierr.Append(err, &ConfigError{"root_rank", strconv.Itoa(c.RootRank), "must not be negative"})
	}
	if c.Rank != nil && *c.Rank < 0 {
		err = multierr.Append(err, &ConfigError{"rank", strconv.Itoa(*c.Rank), "must not be negative"})
	}
	if c.Size < 0 {
		err = multierr.Append(err, &ConfigError{"size", strconv.Itoa(c.Size), "must not be negative"})
	}
	if c.Size > 0 {
		if c.RootRank >= c.Size {
			err = multierr.Append(err, &ConfigError{"root_rank", strconv.Itoa(c.RootRank),
				fmt.Sprintf("out of range for %d processes", c.Size)})
		}
		if c.Rank != nil && *c.Rank >= c.Size {
			err = multierr.Append(err, &ConfigError{"rank", strconv.Itoa(*c.Rank),
				fmt.Sprintf("out of range for %d processes", c.Size)})
		}
	}
	return err
}

// resolve fills Rank and Size from the launcher environment when unset.
func (c Config) resolve() (Config, error) {
	var err error
	if c.Rank == nil {
		rank, rerr := DetectRank()
		err = multierr.Append(err, rerr)
		c.Rank = &rank
	}
	if c.Size == 0 {
		size, serr := DetectSize()
		err = multierr.Append(err, serr)
		c.Size = size
	}
	return c, err
}

func (c Config) prefixConfig() formatter.Config {
	return formatter.Config{
		Timestamp:       c.Timestamp,
		TimestampFormat: c.TimestampFormat,
		Hostname:        c.Hostname,
		Rank:            c.ShowRank,
		ShortFile:       c.ShortFile,
	}
}

// New builds a Logger writing to s. Configuration problems are returned
// before anything is built.
func New(cfg Config, s sink.Sink) (*Logger, error) {
	cfg, err := cfg.resolveAndValidate()
	if err != nil {
		return nil, err
	}
	level, _ := cfg.level()
	return NewBuilder().
		WithSink(s).
		WithLevel(level).
		WithRank(*cfg.Rank).
		WithRootRank(cfg.RootRank).
		WithFormatter(cfg.prefixConfig()).
		WithCoarseClock(cfg.CoarseClock).
		Build(), nil
}

// Open validates cfg, opens cfg.Outputs and builds a Logger on them. The
// returned function closes the opened files.
func Open(cfg Config) (*Logger, func(), error) {
	if _, err := cfg.resolveAndValidate(); err != nil {
		return nil, nil, err
	}
	if len(cfg.Outputs) == 0 {
		return nil, nil, &ConfigError{"outputs", "", "at least one output is required"}
	}
	s, closeFn, err := sink.Open(cfg.Outputs...)
	if err != nil {
		return nil, nil, err
	}
	l, err := New(cfg, s)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return l, closeFn, nil
}

// resolveAndValidate reports launcher and field problems together.
func (c Config) resolveAndValidate() (Config, error) {
	c, err := c.resolve()
	err = multierr.Append(err, c.Validate())
	return c, err
}

// Init opens cfg and installs the result as the default logger.
func Init(cfg Config) (func(), error) {
	l, closeFn, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	SetDefault(l)
	return closeFn, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvThreshold       = "RANKLOG_THRESHOLD"
	EnvRootRank        = "RANKLOG_ROOT_RANK"
	EnvRank            = "RANKLOG_RANK"
	EnvSize            = "RANKLOG_SIZE"
	EnvTimestamp       = "RANKLOG_TIMESTAMP"
	EnvTimestampFormat = "RANKLOG_TIMESTAMP_FORMAT"
	EnvHostname        = "RANKLOG_HOSTNAME"
	EnvShowRank        = "RANKLOG_SHOW_RANK"
	EnvShortFile       = "RANKLOG_SHORT_FILE"
	EnvCoarseClock     = "RANKLOG_COARSE_CLOCK"
	EnvOutput          = "RANKLOG_OUTPUT"
)

// ConfigFromEnv returns DefaultConfig overridden by the environment.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	err := ApplyEnv(&cfg)
	return cfg, err
}

// ApplyEnv overrides cfg with the RANKLOG_* variables that are set.
func ApplyEnv(cfg *Config) error {
	var err error
	if v, ok := os.LookupEnv(EnvThreshold); ok {
		cfg.Threshold = v
	}
	err = multierr.Append(err, envInt(EnvRootRank, "root_rank", &cfg.RootRank))
	err = multierr.Append(err, envRank(EnvRank, &cfg.Rank))
	err = multierr.Append(err, envInt(EnvSize, "size", &cfg.Size))
	err = multierr.Append(err, envBool(EnvTimestamp, "timestamp", &cfg.Timestamp))
	if v, ok := os.LookupEnv(EnvTimestampFormat); ok {
		cfg.TimestampFormat = v
	}
	err = multierr.Append(err, envBool(EnvHostname, "hostname", &cfg.Hostname))
	err = multierr.Append(err, envBool(EnvShowRank, "show_rank", &cfg.ShowRank))
	err = multierr.Append(err, envBool(EnvShortFile, "short_file", &cfg.ShortFile))
	err = multierr.Append(err, envBool(EnvCoarseClock, "coarse_clock", &cfg.CoarseClock))
	if v, ok := os.LookupEnv(EnvOutput); ok {
		cfg.Outputs = splitList(v)
	}
	return err
}

func envInt(name, field string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return &ConfigError{field, v, "not an integer"}
	}
	*dst = n
	return nil
}

func envRank(name string, dst **int) error {
	if _, ok := os.LookupEnv(name); !ok {
		return nil
	}
	var n int
	if err := envInt(name, "rank", &n); err != nil {
		return err
	}
	*dst = &n
	return nil
}

func envBool(name, field string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return &ConfigError{field, v, "not a boolean"}
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys:
//
//	threshold = "WARN"
//	root_rank = 0
//	rank = 3
//	size = 64
//	timestamp = true
//	timestamp_format = "15:04:05.000"
//	hostname = true
//	show_rank = true
//	short_file = true
//	coarse_clock = false
//	outputs = ["stderr", "/var/log/solver.log"]
func LoadConfig(path string) (Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "ranklog: load config %s", path)
	}
	cfg := DefaultConfig()
	err = applyTree(tree, &cfg)
	return cfg, err
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data []byte) (Config, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return Config{}, errors.Wrap(err, "ranklog: parse config")
	}
	cfg := DefaultConfig()
	err = applyTree(tree, &cfg)
	return cfg, err
}

func applyTree(tree *toml.Tree, cfg *Config) error {
	var err error
	err = multierr.Append(err, treeString(tree, "threshold", &cfg.Threshold))
	err = multierr.Append(err, treeInt(tree, "root_rank", &cfg.RootRank))
	err = multierr.Append(err, treeRank(tree, &cfg.Rank))
	err = multierr.Append(err, treeInt(tree, "size", &cfg.Size))
	err = multierr.Append(err, treeBool(tree, "timestamp", &cfg.Timestamp))
	err = multierr.Append(err, treeString(tree, "timestamp_format", &cfg.TimestampFormat))
	err = multierr.Append(err, treeBool(tree, "hostname", &cfg.Hostname))
	err = multierr.Append(err, treeBool(tree, "show_rank", &cfg.ShowRank))
	err = multierr.Append(err, treeBool(tree, "short_file", &cfg.ShortFile))
	err = multierr.Append(err, treeBool(tree, "coarse_clock", &cfg.CoarseClock))
	err = multierr.Append(err, treeStrings(tree, "outputs", &cfg.Outputs))
	return err
}

func treeString(tree *toml.Tree, key string, dst *string) error {
	if !tree.Has(key) {
		return nil
	}
	v, ok := tree.Get(key).(string)
	if !ok {
		return &ConfigError{key, fmt.Sprint(tree.Get(key)), "must be a string"}
	}
	*dst = v
	return nil
}

func treeInt(tree *toml.Tree, key string, dst *int) error {
	if !tree.Has(key) {
		return nil
	}
	v, ok := tree.Get(key).(int64)
	if !ok {
		return &ConfigError{key, fmt.Sprint(tree.Get(key)), "must be an integer"}
	}
	*dst = int(v)
	return nil
}

func treeRank(tree *toml.Tree, dst **int) error {
	if !tree.Has("rank") {
		return nil
	}
	var n int
	if err := treeInt(tree, "rank", &n); err != nil {
		return err
	}
	*dst = &n
	return nil
}

func treeBool(tree *toml.Tree, key string, dst *bool) error {
	if !tree.Has(key) {
		return nil
	}
	v, ok := tree.Get(key).(bool)
	if !ok {
		return &ConfigError{key, fmt.Sprint(tree.Get(key)), "must be a boolean"}
	}
	*dst = v
	return nil
}

func treeStrings(tree *toml.Tree, key string, dst *[]string) error {
	if !tree.Has(key) {
		return nil
	}
	switch v := tree.Get(key).(type) {
	case []string:
		*dst = v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return &ConfigError{key, fmt.Sprint(v), "must be a list of strings"}
			}
			out = append(out, s)
		}
		*dst = out
	default:
		return &ConfigError{key, fmt.Sprint(v), "must be a list of strings"}
	}
	return nil
}

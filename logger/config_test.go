package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/ranklog/sink"
)

// clearLauncherEnv hides any MPI launcher variables of the test host.
func clearLauncherEnv(t *testing.T) {
	t.Helper()
	for _, name := range append(append([]string{}, rankEnvVars...), sizeEnvVars...) {
		if v, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, v) })
		}
	}
}

func intp(n int) *int { return &n }

func TestDefaultConfig(t *testing.T) {
	clearLauncherEnv(t)
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	l, err := New(cfg, sink.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if l.Threshold() != InfoLevel || l.RootRank() != 0 || l.Rank() != 0 {
		t.Errorf("threshold %s, root %d, rank %d", l.Threshold(), l.RootRank(), l.Rank())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		fields []string
	}{
		{"unknown level", Config{Threshold: "verbose"}, []string{"threshold"}},
		{"blank level", Config{Threshold: " "}, []string{"threshold"}},
		{"negative root", Config{Threshold: "INFO", RootRank: -1}, []string{"root_rank"}},
		{"negative rank", Config{Threshold: "INFO", Rank: intp(-2)}, []string{"rank"}},
		{"negative size", Config{Threshold: "INFO", Size: -4}, []string{"size"}},
		{"root out of range", Config{Threshold: "INFO", RootRank: 4, Size: 4}, []string{"root_rank"}},
		{"rank out of range", Config{Threshold: "INFO", Rank: intp(9), Size: 8}, []string{"rank"}},
		{"several", Config{Threshold: "loud", RootRank: -3, Size: -1}, []string{"threshold", "root_rank", "size"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsConfigError(err) {
				t.Errorf("IsConfigError(%v) = false", err)
			}
			errs := multierr.Errors(err)
			if len(errs) != len(tt.fields) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.fields))
			}
			for i, e := range errs {
				ce, ok := e.(*ConfigError)
				if !ok {
					t.Fatalf("error %d is %T", i, e)
				}
				if ce.Field != tt.fields[i] {
					t.Errorf("error %d field = %q, want %q", i, ce.Field, tt.fields[i])
				}
			}
		})
	}
}

func TestConfig_ValidRanges(t *testing.T) {
	cfg := Config{Threshold: "trace", RootRank: 3, Rank: intp(7), Size: 8}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNew_ZeroConfig(t *testing.T) {
	clearLauncherEnv(t)
	if err := (Config{}).Validate(); err != nil {
		t.Fatalf("Config{}.Validate() = %v", err)
	}
	l, err := New(Config{}, sink.Discard)
	if err != nil {
		t.Fatalf("New(Config{}) = %v", err)
	}
	if l.Threshold() != InfoLevel {
		t.Errorf("Threshold() = %s, want INFO", l.Threshold())
	}

	t.Setenv("PMI_RANK", "6")
	l, err = New(Config{}, sink.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if l.Rank() != 6 {
		t.Errorf("zero Config did not detect rank: Rank() = %d, want 6", l.Rank())
	}

	l, err = New(Config{Rank: intp(0)}, sink.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if l.Rank() != 0 {
		t.Errorf("explicit rank 0 overridden: Rank() = %d", l.Rank())
	}
}

func TestNew_ReportsLauncherAndFieldErrorsTogether(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv("PMI_RANK", "first")

	_, err := New(Config{Threshold: "loud"}, sink.Discard)
	if !IsConfigError(err) {
		t.Fatalf("err = %v", err)
	}
	var fields []string
	for _, e := range multierr.Errors(err) {
		var ce *ConfigError
		if errors.As(e, &ce) {
			fields = append(fields, ce.Field)
		}
	}
	if !reflect.DeepEqual(fields, []string{"rank", "threshold"}) {
		t.Errorf("fields = %q, want [rank threshold]", fields)
	}
}

func TestNew_FailsFast(t *testing.T) {
	clearLauncherEnv(t)
	cfg := DefaultConfig()
	cfg.Threshold = "INF0"
	l, err := New(cfg, sink.Discard)
	if err == nil || l != nil {
		t.Fatalf("New() = %v, %v; want error", l, err)
	}
	if !strings.Contains(err.Error(), `invalid threshold "INF0"`) {
		t.Errorf("error = %q", err)
	}
}

func TestNew_AppliesConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Threshold: "warn", RootRank: 1, Rank: intp(1), Size: 2, ShowRank: true, ShortFile: true}
	l, err := New(cfg, sink.Lock(&buf))
	if err != nil {
		t.Fatal(err)
	}

	l.Info("gated")
	l.WarnRoot("root line")
	got := buf.String()
	if !strings.HasPrefix(got, "WARN [rank 1] config_test.go:") || !strings.HasSuffix(got, " root line\n") {
		t.Errorf("output %q", got)
	}
}

func TestDetectRank(t *testing.T) {
	clearLauncherEnv(t)

	if r, err := DetectRank(); r != 0 || err != nil {
		t.Errorf("DetectRank() without launcher = %d, %v", r, err)
	}

	t.Setenv("PMI_RANK", "5")
	t.Setenv("PMI_SIZE", "16")
	if r, err := DetectRank(); r != 5 || err != nil {
		t.Errorf("DetectRank() = %d, %v; want 5", r, err)
	}
	if s, err := DetectSize(); s != 16 || err != nil {
		t.Errorf("DetectSize() = %d, %v; want 16", s, err)
	}

	// Open MPI takes precedence
	t.Setenv("OMPI_COMM_WORLD_RANK", "2")
	if r, _ := DetectRank(); r != 2 {
		t.Errorf("DetectRank() = %d, want 2", r)
	}

	t.Setenv("OMPI_COMM_WORLD_RANK", "two")
	if _, err := DetectRank(); !IsConfigError(err) {
		t.Errorf("DetectRank() with malformed variable err = %v", err)
	}
}

func TestNew_DetectsRank(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv("SLURM_PROCID", "3")
	t.Setenv("SLURM_NTASKS", "4")

	l, err := New(DefaultConfig(), sink.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if l.Rank() != 3 {
		t.Errorf("Rank() = %d, want 3", l.Rank())
	}

	cfg := DefaultConfig()
	cfg.RootRank = 4
	if _, err := New(cfg, sink.Discard); !IsConfigError(err) {
		t.Errorf("root rank 4 of 4 processes: err = %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvThreshold, "debug")
	t.Setenv(EnvRootRank, "2")
	t.Setenv(EnvRank, "1")
	t.Setenv(EnvTimestamp, "true")
	t.Setenv(EnvHostname, "1")
	t.Setenv(EnvShowRank, "yes")
	t.Setenv(EnvShortFile, "false")
	t.Setenv(EnvOutput, "stdout, /tmp/a.log,,")
	t.Setenv(EnvSize, "4")
	t.Setenv(EnvTimestampFormat, "15:04:05")
	t.Setenv(EnvCoarseClock, "true")

	cfg, err := ConfigFromEnv()
	if err == nil || !IsConfigError(err) {
		t.Fatalf("expected config error for show_rank=yes, got %v", err)
	}
	if n := len(multierr.Errors(err)); n != 1 {
		t.Errorf("got %d errors, want 1", n)
	}

	if cfg.Threshold != "debug" || cfg.RootRank != 2 || cfg.Rank == nil || *cfg.Rank != 1 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Timestamp || !cfg.Hostname || cfg.ShortFile || !cfg.CoarseClock {
		t.Errorf("booleans not applied: %+v", cfg)
	}
	if cfg.Size != 4 || cfg.TimestampFormat != "15:04:05" {
		t.Errorf("size/timestamp format not applied: %+v", cfg)
	}
	if len(cfg.Outputs) != 2 || cfg.Outputs[0] != "stdout" || cfg.Outputs[1] != "/tmp/a.log" {
		t.Errorf("Outputs = %q", cfg.Outputs)
	}

	t.Setenv(EnvShowRank, "true")
	t.Setenv(EnvRootRank, "zero")
	_, err = ConfigFromEnv()
	if !IsConfigError(err) {
		t.Errorf("expected config error for root rank, got %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
threshold = "ERROR"
root_rank = 1
rank = 1
size = 8
timestamp = true
timestamp_format = "15:04:05"
hostname = true
show_rank = true
short_file = true
coarse_clock = true
outputs = ["stdout", "/tmp/solver.log"]
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	want := Config{
		Threshold:       "ERROR",
		RootRank:        1,
		Rank:            intp(1),
		Size:            8,
		Timestamp:       true,
		TimestampFormat: "15:04:05",
		Hostname:        true,
		ShowRank:        true,
		ShortFile:       true,
		CoarseClock:     true,
		Outputs:         []string{"stdout", "/tmp/solver.log"},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("cfg = %+v\nwant  %+v", cfg, want)
	}
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`threshold = "warn"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rank != nil || len(cfg.Outputs) != 1 || cfg.Outputs[0] != "stderr" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseConfig_TypeErrors(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
threshold = 3
root_rank = "zero"
outputs = "stderr"
`))
	if !IsConfigError(err) {
		t.Fatalf("err = %v", err)
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Errorf("got %d errors, want 3: %v", n, err)
	}
	if cfg.Threshold != "INFO" {
		t.Errorf("Threshold = %q, want default kept", cfg.Threshold)
	}

	if _, err := ParseConfig([]byte(`threshold = `)); err == nil {
		t.Error("expected syntax error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranklog.toml")
	if err := os.WriteFile(path, []byte("threshold = \"trace\"\nroot_rank = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != "trace" {
		t.Errorf("Threshold = %q", cfg.Threshold)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpen_WritesToFile(t *testing.T) {
	clearLauncherEnv(t)
	path := filepath.Join(t.TempDir(), "run.log")
	cfg := DefaultConfig()
	cfg.Threshold = "warn"
	cfg.Outputs = []string{path}

	l, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Error("to file")
	l.Info("gated")
	if err := l.Sync(); err != nil {
		t.Fatal(err)
	}
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "ERROR ") || strings.Count(string(data), "\n") != 1 {
		t.Errorf("file contents %q", data)
	}
}

func TestOpen_Errors(t *testing.T) {
	clearLauncherEnv(t)
	cfg := DefaultConfig()
	cfg.Outputs = nil
	if _, _, err := Open(cfg); !IsConfigError(err) {
		t.Errorf("no outputs: err = %v", err)
	}

	cfg = DefaultConfig()
	cfg.Threshold = "nope"
	if _, _, err := Open(cfg); !IsConfigError(err) {
		t.Errorf("bad threshold: err = %v", err)
	}

	cfg = DefaultConfig()
	cfg.Outputs = []string{filepath.Join(t.TempDir(), "missing", "dir", "x.log")}
	if _, _, err := Open(cfg); err == nil || IsConfigError(err) {
		t.Errorf("unopenable output: err = %v", err)
	}
}

func TestInit(t *testing.T) {
	clearLauncherEnv(t)
	old := Default()
	t.Cleanup(func() { SetDefault(old) })

	path := filepath.Join(t.TempDir(), "default.log")
	cfg := DefaultConfig()
	cfg.Outputs = []string{path}
	closeFn, err := Init(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()

	if Default() == old {
		t.Fatal("Init did not replace the default logger")
	}
	Info("through default")
	Default().Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "through default") {
		t.Errorf("file contents %q", data)
	}
}

package server

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}
	tests := []struct {
		name    string
		path    string
		want    *Config
		wantErr error
	}{
		{
			name: "no file",
			path: "",
			want: &Config{Port: 8080},
		},
		{
			name: "full file",
			path: write("full.yaml", "address: 127.0.0.1\nport: 9100\nsystemd: true\n"),
			want: &Config{Address: "127.0.0.1", Port: 9100, Systemd: true},
		},
		{
			name: "partial file keeps default port",
			path: write("partial.yaml", "address: ::1\n"),
			want: &Config{Address: "::1", Port: 8080},
		},
		{
			name: "empty file",
			path: write("empty.yaml", ""),
			want: &Config{Port: 8080},
		},
		{
			name:    "port out of range",
			path:    write("range.yaml", "port: 70000\n"),
			wantErr: ErrInvalidPort,
		},
		{
			name:    "negative port",
			path:    write("negative.yaml", "port: -1\n"),
			wantErr: ErrInvalidPort,
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.yaml"),
			wantErr: os.ErrNotExist,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("port: [1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() expected a parse error")
	}
}

func TestConfig_ListenAddress(t *testing.T) {
	tests := []struct {
		config Config
		want   string
	}{
		{Config{Port: 8080}, ":8080"},
		{Config{Address: "0.0.0.0", Port: 80}, "0.0.0.0:80"},
		{Config{Address: "::1", Port: 8080}, "[::1]:8080"},
	}
	for _, tt := range tests {
		if got := tt.config.ListenAddress(); got != tt.want {
			t.Errorf("ListenAddress(%+v) = %q, want %q", tt.config, got, tt.want)
		}
	}
}

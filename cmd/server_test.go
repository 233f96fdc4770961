package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/server"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/version"
	"github.com/spf13/pflag"
)

func TestServerOptions_Config(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sysmon.yaml")
	if err := os.WriteFile(file, []byte("address: 10.0.0.1\nport: 9000\nsystemd: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		args    []string
		want    *server.Config
		wantErr error
	}{
		{
			name: "defaults",
			want: &server.Config{Port: 8080},
		},
		{
			name: "flags only",
			args: []string{"--address", "127.0.0.1", "-p", "9100"},
			want: &server.Config{Address: "127.0.0.1", Port: 9100},
		},
		{
			name: "file only",
			args: []string{"--config", file},
			want: &server.Config{Address: "10.0.0.1", Port: 9000, Systemd: true},
		},
		{
			name: "flags override file",
			args: []string{"--config", file, "--port", "9200", "--systemd=false"},
			want: &server.Config{Address: "10.0.0.1", Port: 9200},
		},
		{
			name:    "invalid port flag",
			args:    []string{"--port", "0"},
			wantErr: server.ErrInvalidPort,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &serverOptions{}
			flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
			o.addFlags(flags)
			if err := flags.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			got, err := o.config(flags)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("config() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("config() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("config() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	root := GetRootCmd([]string{"version"})
	var out bytes.Buffer
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Version: \t" + version.Info.Version, "GitRevision:", "Platform: \t" + version.Info.Platform} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("version output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRootCmd_KlogFlags(t *testing.T) {
	root := GetRootCmd(nil)
	for _, name := range []string{"v", "logtostderr", "vmodule"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command missing klog flag %q", name)
		}
	}
}

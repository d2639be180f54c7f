package cli

import (
	"bytes"
	"os"
	"testing"
	"time"

	"punchcard/internal/config"
)

func TestNewApp(t *testing.T) {
	mock := newMockAPI()
	cfg := config.NewConfig()

	app := NewApp(mock, cfg)
	if app == nil {
		t.Fatal("NewApp() returned nil")
	}
	if app.api == nil {
		t.Error("NewApp() api is nil")
	}
	if app.config == nil {
		t.Error("NewApp() config is nil")
	}
	if app.styles == nil {
		t.Error("NewApp() styles is nil")
	}
	if app.out != os.Stdout {
		t.Error("NewApp() should write to stdout")
	}
}

func TestApp_Print(t *testing.T) {
	mock := newMockAPI()
	cfg := config.NewConfig()
	cfg.Application.NoColor = true

	out := &bytes.Buffer{}
	app := NewAppWithOutput(mock, cfg, out)

	app.printf("%d entries\n", 3)
	app.println("done")

	got := out.String()
	want := "3 entries\ndone\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestParseOffsetArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    time.Duration
		wantNil bool
		wantErr bool
	}{
		{
			name:    "no arguments",
			args:    []string{},
			wantNil: true,
		},
		{
			name: "backward offset",
			args: []string{"5m", "ago"},
			want: -5 * time.Minute,
		},
		{
			name: "forward offset",
			args: []string{"in", "1h"},
			want: time.Hour,
		},
		{
			name: "bare magnitude points forward",
			args: []string{"90m"},
			want: 90 * time.Minute,
		},
		{
			name: "compound magnitude",
			args: []string{"1h", "30m", "ago"},
			want: -(time.Hour + 30*time.Minute),
		},
		{
			name: "magnitude split across arguments",
			args: []string{"in", "2", "days"},
			want: 48 * time.Hour,
		},
		{
			name:    "unparseable magnitude",
			args:    []string{"banana"},
			wantErr: true,
		},
		{
			name:    "both direction markers",
			args:    []string{"in", "5m", "ago"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOffsetArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseOffsetArgs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("parseOffsetArgs() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("parseOffsetArgs() returned nil offset")
			}
			if got.Duration() != tt.want {
				t.Errorf("parseOffsetArgs() = %v, want %v", got.Duration(), tt.want)
			}
		})
	}
}

package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MOVIES_FILE", "RATINGS_FILE", "TOP_DEFAULT_N", "TOP_MAX_N"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.MoviesFile != "movies.txt" {
		t.Fatalf("MoviesFile = %s, want movies.txt", cfg.MoviesFile)
	}
	if cfg.RatingsFile != "ratings.txt" {
		t.Fatalf("RatingsFile = %s, want ratings.txt", cfg.RatingsFile)
	}
	if cfg.TopDefaultN != 10 {
		t.Fatalf("TopDefaultN = %d, want 10", cfg.TopDefaultN)
	}
	if cfg.TopMaxN != 100 {
		t.Fatalf("TopMaxN = %d, want 100", cfg.TopMaxN)
	}
}

func TestLoadSuccess(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MOVIES_FILE", "/data/movies.txt")
	t.Setenv("RATINGS_FILE", "/data/ratings.txt")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("TOP_DEFAULT_N", "5")
	t.Setenv("TOP_MAX_N", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.MoviesFile != "/data/movies.txt" {
		t.Fatalf("MoviesFile = %s, want /data/movies.txt", cfg.MoviesFile)
	}
	if cfg.ReadTimeoutSecs != 30 {
		t.Fatalf("ReadTimeoutSecs = %d, want 30", cfg.ReadTimeoutSecs)
	}
	if cfg.TopDefaultN != 5 {
		t.Fatalf("TopDefaultN = %d, want 5", cfg.TopDefaultN)
	}
	if cfg.TopMaxN != 25 {
		t.Fatalf("TopMaxN = %d, want 25", cfg.TopMaxN)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr string
	}{
		{
			name: "negative read timeout",
			setup: func(t *testing.T) {
				t.Setenv("SERVER_READ_TIMEOUT", "-1")
			},
			wantErr: "SERVER_READ_TIMEOUT",
		},
		{
			name: "zero write timeout",
			setup: func(t *testing.T) {
				t.Setenv("SERVER_WRITE_TIMEOUT", "0")
			},
			wantErr: "SERVER_WRITE_TIMEOUT",
		},
		{
			name: "non-positive default n",
			setup: func(t *testing.T) {
				t.Setenv("TOP_DEFAULT_N", "0")
			},
			wantErr: "TOP_DEFAULT_N",
		},
		{
			name: "max n below default n",
			setup: func(t *testing.T) {
				t.Setenv("TOP_DEFAULT_N", "50")
				t.Setenv("TOP_MAX_N", "10")
			},
			wantErr: "TOP_MAX_N",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want contains %q", err, tt.wantErr)
			}
		})
	}
}

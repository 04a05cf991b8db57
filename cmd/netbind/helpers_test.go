package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/netops-tools/netbind/pkg/audit"
	"github.com/netops-tools/netbind/pkg/util"
)

func TestParseAutoBind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{"empty defaults to false", "", false, false},
		{"lowercase true", "true", true, false},
		{"capitalized true", "True", true, false},
		{"uppercase true", "TRUE", true, false},
		{"lowercase false", "false", false, false},
		{"capitalized false", "False", false, false},
		{"garbage", "yes", false, true},
		{"numeric", "1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAutoBind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAutoBind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAutoBind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y", true},
		{"uppercase Y", "Y", true},
		{"yes", "yes", true},
		{"uppercase yes", "YES", true},
		{"padded with newline", " y \n", true},
		{"n", "n", false},
		{"no", "no", false},
		{"empty", "", false},
		{"yeah", "yeah", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAffirmative(tt.input); got != tt.want {
				t.Errorf("isAffirmative(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateMigrateFlags(t *testing.T) {
	savedKey, savedOrg, savedTemplate, savedTag := apiKey, orgID, templateName, networkTag
	defer func() {
		apiKey, orgID, templateName, networkTag = savedKey, savedOrg, savedTemplate, savedTag
	}()

	t.Run("all present", func(t *testing.T) {
		apiKey, orgID, templateName, networkTag = "key", "O_1", "Branch Standard", "migrate"
		if err := validateMigrateFlags(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("all missing accumulates every flag", func(t *testing.T) {
		apiKey, orgID, templateName, networkTag = "", "", "", ""
		err := validateMigrateFlags()
		if err == nil {
			t.Fatal("expected error for missing flags")
		}
		if !errors.Is(err, util.ErrValidationFailed) {
			t.Errorf("expected validation error, got %v", err)
		}
		for _, flag := range []string{"-k", "-o", "-t", "-n"} {
			if !strings.Contains(err.Error(), flag) {
				t.Errorf("error should mention %s: %s", flag, err.Error())
			}
		}
	})

	t.Run("one missing", func(t *testing.T) {
		apiKey, orgID, templateName, networkTag = "key", "O_1", "", "migrate"
		err := validateMigrateFlags()
		if err == nil {
			t.Fatal("expected error for missing template name")
		}
		if !strings.Contains(err.Error(), "-t") {
			t.Errorf("error should mention -t: %s", err.Error())
		}
		if strings.Contains(err.Error(), "-k") {
			t.Errorf("error should not mention flags that were given: %s", err.Error())
		}
	})
}

func TestValidateConnectionFlags(t *testing.T) {
	savedKey, savedOrg := apiKey, orgID
	defer func() { apiKey, orgID = savedKey, savedOrg }()

	apiKey, orgID = "key", "O_1"
	if err := validateConnectionFlags(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	apiKey, orgID = "", "O_1"
	if err := validateConnectionFlags(); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestUsageErrorClassification(t *testing.T) {
	base := errors.New("network tag required")
	err := error(&usageError{cmd: rootCmd, err: base})

	var uerr *usageError
	if !errors.As(err, &uerr) {
		t.Fatal("errors.As should find *usageError")
	}
	if uerr.cmd != rootCmd {
		t.Error("usageError should carry the command for usage output")
	}
	if !errors.Is(err, base) {
		t.Error("usageError should unwrap to the underlying error")
	}
	if err.Error() != "network tag required" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		event *audit.Event
		want  string
	}{
		{"bound to bound", &audit.Event{FromTemplate: "Legacy", ToTemplate: "Branch Standard"}, "Legacy -> Branch Standard"},
		{"unbound to bound", &audit.Event{ToTemplate: "Branch Standard"}, "-> Branch Standard"},
		{"no target recorded", &audit.Event{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transition(tt.event); got != tt.want {
				t.Errorf("transition() = %q, want %q", got, tt.want)
			}
		})
	}
}

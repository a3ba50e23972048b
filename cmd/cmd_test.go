package cmd

import (
	"testing"

	"github.com/emberwatch/emberwatch/internal/config"
)

// Test command initialization and registration
func TestCommandsRegistered(t *testing.T) {
	cfg = config.Default()

	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	commands := rootCmd.Commands()
	expectedCommands := map[string]bool{
		"sample":  false,
		"project": false,
		"migrate": false,
	}

	for _, cmd := range commands {
		cmdName := cmd.Use
		for key := range expectedCommands {
			if len(cmdName) >= len(key) && cmdName[:len(key)] == key {
				expectedCommands[key] = true
				break
			}
		}
	}

	for cmdName, found := range expectedCommands {
		if !found {
			t.Errorf("expected command '%s' to be registered with root command", cmdName)
		}
	}
}

func TestSampleCommandHasSubcommands(t *testing.T) {
	if sampleCmd == nil {
		t.Fatal("sampleCmd should not be nil")
	}

	hasCreate := false
	hasPlatforms := false
	for _, cmd := range sampleCmd.Commands() {
		switch {
		case len(cmd.Use) >= 6 && cmd.Use[:6] == "create":
			hasCreate = true
		case cmd.Use == "platforms":
			hasPlatforms = true
		}
	}

	if !hasCreate {
		t.Error("sample command should have a create subcommand")
	}
	if !hasPlatforms {
		t.Error("sample command should have a platforms subcommand")
	}
}

func TestSplitProjectPath(t *testing.T) {
	tests := []struct {
		input       string
		org         string
		project     string
		expectError bool
	}{
		{"acme/web", "acme", "web", false},
		{"acme/web/extra", "", "", true},
		{"acme", "", "", true},
		{"/web", "", "", true},
		{"acme/", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		org, project, err := splitProjectPath(tt.input)
		if tt.expectError {
			if err == nil {
				t.Errorf("splitProjectPath(%q): expected error, got none", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitProjectPath(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if org != tt.org || project != tt.project {
			t.Errorf("splitProjectPath(%q) = (%q, %q), want (%q, %q)", tt.input, org, project, tt.org, tt.project)
		}
	}
}

package cli

import (
	"io"
	"strings"
	"testing"
)

func TestBoardIDFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, defaultBoardID},
		{"explicit board", []string{"sales"}, "sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boardIDFromArgs(tt.args); got != tt.want {
				t.Errorf("boardIDFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"edit", "show", "arrange", "widget", "export", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestWidgetTypeNames(t *testing.T) {
	names := widgetTypeNames()
	for _, want := range []string{"metric", "insight", "chart", "table", "image", "file_download"} {
		if !strings.Contains(names, want) {
			t.Errorf("widgetTypeNames() = %q, missing %q", names, want)
		}
	}
}

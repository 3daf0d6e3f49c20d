package commands

import (
	"strings"

	"github.com/goliatone/go-mdsections/internal/logging"
	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

const commandModuleRoot = "mdsections.commands"

// CommandLogger returns the logger for command handlers of module, tagged
// with component and command_module fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

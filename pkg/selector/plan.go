package selector

import (
	"path/filepath"

	"iconprep/pkg/config"
	"iconprep/pkg/platform"
)

// Action is what the selector will do with the configured icon
type Action int

const (
	// ActionNone: no icon configured
	ActionNone Action = iota
	// ActionKeep: icon already matches the Windows or Linux format
	ActionKeep
	// ActionConvertIco: Windows target, icon is not .ico
	ActionConvertIco
	// ActionConvertPng: Linux target, icon is not .png
	ActionConvertPng
	// ActionHostUnsupported: macOS-style target but the host cannot build .icns
	ActionHostUnsupported
	// ActionMacOS: convert to .icns if needed, then maybe build the tray icon
	ActionMacOS
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionKeep:
		return "keep"
	case ActionConvertIco:
		return "convert-ico"
	case ActionConvertPng:
		return "convert-png"
	case ActionHostUnsupported:
		return "host-unsupported"
	case ActionMacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// Plan is the outcome of Decide
type Plan struct {
	Action Action
	// Source is the icon path converters receive (first entry of a list)
	Source string
	// NeedsIcns is set for ActionMacOS when Source is not already .icns
	NeedsIcns bool
	// Tray is set for ActionMacOS when tray icon generation is enabled
	Tray bool
}

// Decide picks the action for cfg without touching the filesystem.
// Rules are checked in order: Windows, Linux, then everything else as macOS.
func Decide(cfg config.Config, isMacOS bool) Plan {
	if !cfg.Packager.Icon.IsSet() {
		return Plan{Action: ActionNone}
	}

	src := cfg.Packager.Icon.Primary()
	plan := Plan{Source: src}

	switch cfg.Packager.Platform {
	case platform.Windows:
		plan.Action = ActionConvertIco
		if IsIco(src) {
			plan.Action = ActionKeep
		}
		return plan
	case platform.Linux:
		plan.Action = ActionConvertPng
		if IsPng(src) {
			plan.Action = ActionKeep
		}
		return plan
	}

	if !isMacOS {
		plan.Action = ActionHostUnsupported
		return plan
	}

	plan.Action = ActionMacOS
	plan.NeedsIcns = !IsIcns(src)
	plan.Tray = cfg.App.TrayEnabled()
	return plan
}

// IsIco reports whether path has the .ico extension
func IsIco(path string) bool {
	return filepath.Ext(path) == ".ico"
}

// IsPng reports whether path has the .png extension
func IsPng(path string) bool {
	return filepath.Ext(path) == ".png"
}

// IsIcns reports whether path has the .icns extension
func IsIcns(path string) bool {
	return filepath.Ext(path) == ".icns"
}

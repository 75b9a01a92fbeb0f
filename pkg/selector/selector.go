package selector

import (
	"log/slog"

	"iconprep/pkg/config"
	"iconprep/pkg/converter"
	"iconprep/pkg/platform"
)

// Selector adjusts the packager icon to the format the target platform
// expects. Conversion failures never escape: they are logged and the icon
// is either left alone (Windows, Linux) or cleared (macOS).
type Selector struct {
	converter converter.Converter
	isMacOS   func() bool
	logger    *slog.Logger
}

// Option configures a Selector
type Option func(*Selector)

// WithHostDetector overrides how the selector decides whether the host is macOS
func WithHostDetector(isMacOS func() bool) Option {
	return func(s *Selector) {
		s.isMacOS = isMacOS
	}
}

// New creates a selector that converts through conv
func New(conv converter.Converter, logger *slog.Logger, opts ...Option) *Selector {
	s := &Selector{
		converter: conv,
		isMacOS:   platform.IsMacOS,
		logger:    logger.With("component", "selector"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan decides what Convert would do for cfg
func (s *Selector) Plan(cfg config.Config) Plan {
	return Decide(cfg, s.isMacOS())
}

// Convert returns a copy of cfg whose icon is in the target platform's format.
// cfg itself is not modified.
func (s *Selector) Convert(cfg config.Config) config.Config {
	return s.Apply(cfg, s.Plan(cfg))
}

// Apply executes plan against a copy of cfg
func (s *Selector) Apply(cfg config.Config, plan Plan) config.Config {
	out := cfg.Clone()
	log := s.logger.With("platform", cfg.Packager.Platform, "icon", plan.Source)

	switch plan.Action {
	case ActionNone:
		log.Debug(`Option "icon" not set, skipping icon conversion`)

	case ActionKeep:
		log.Debug("Icon is already in the target format, no conversion needed")

	case ActionConvertIco:
		converted, err := s.converter.ToIco(plan.Source)
		if err != nil {
			log.Warn("Failed to convert icon to .ico, skipping", "error", err)
			break
		}
		out.Packager.Icon = config.SingleIcon(converted)

	case ActionConvertPng:
		converted, err := s.converter.ToPng(plan.Source)
		if err != nil {
			log.Warn("Failed to convert icon to .png, skipping", "error", err)
			break
		}
		out.Packager.Icon = config.SingleIcon(converted)

	case ActionHostUnsupported:
		if IsIcns(plan.Source) {
			log.Debug("Building for macOS and icon is already a .icns, no conversion needed")
		}
		log.Warn("Skipping icon conversion to .icns, conversion is only supported on macOS")

	case ActionMacOS:
		out.Packager.Icon = s.applyMacOS(out.Packager.Icon, plan, log)
	}

	return out
}

// applyMacOS converts to .icns when needed and then builds the tray icon.
// Any failure clears the icon.
func (s *Selector) applyMacOS(icon config.Icon, plan Plan, log *slog.Logger) config.Icon {
	if !plan.NeedsIcns {
		log.Debug("Building for macOS and icon is already a .icns, no conversion needed")
	} else {
		converted, err := s.converter.ToIcns(plan.Source)
		if err != nil {
			log.Warn("Failed to convert icon to .icns, skipping", "error", err)
			return config.Icon{}
		}
		icon = config.SingleIcon(converted)
	}

	if plan.Tray {
		if err := s.converter.ToTrayIcon(icon.Primary()); err != nil {
			log.Warn("Failed to generate tray icon, clearing icon", "error", err)
			return config.Icon{}
		}
	}

	return icon
}

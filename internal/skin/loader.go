package skin

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

// Loader builds skins from theme files.
type Loader struct {
	log *logger.Logger
}

// NewLoader returns a loader reporting through log. A nil logger is allowed.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load parses, validates and builds the theme at path.
func (l *Loader) Load(ctx context.Context, path string) (*Skin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.log.WithFields(map[string]any{"path": path}).Debug("loading theme")

	theme, err := config.ParseTheme(path)
	if err != nil {
		l.log.WithFields(map[string]any{"path": path}).Error(err, "failed to parse theme")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := Build(theme)
	if err != nil {
		l.log.WithFields(map[string]any{"path": path}).Error(err, "failed to build skin")
		return nil, err
	}

	l.log.WithFields(map[string]any{
		"path":  path,
		"skin":  s.Name(),
		"hints": s.Table().Len(),
	}).Info("theme loaded")
	return s, nil
}

// Build turns a validated theme into a skin.
func Build(theme *config.Theme) (*Skin, error) {
	s := New(theme.Name)

	for _, control := range theme.Controls {
		if err := s.SetParent(control.Name, control.Parent); err != nil {
			return nil, err
		}
	}

	ed := s.Editor()
	for i, hint := range theme.Hints {
		a, err := hint.Aspect()
		if err != nil {
			return nil, ErrInvalidHint.withCause(fmt.Errorf("hints[%d]: %w", i, err))
		}

		if hint.Gradient != nil {
			ed.SetGradient(a, *hint.Gradient)
		}
		if hint.Color != "" {
			c, err := rgb.Parse(hint.Color)
			if err != nil {
				return nil, ErrInvalidHint.withCause(fmt.Errorf("hints[%d].color: %w", i, err))
			}
			ed.SetColor(a, c)
		}
		if hint.Metric != nil {
			ed.SetMetric(a, *hint.Metric)
		}
		if hint.FontRole != "" {
			ed.SetFontRole(a, hint.FontRole)
		}
		if hint.Symbol != "" {
			ed.SetSymbol(a, hint.Symbol)
		}
	}

	if err := ed.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

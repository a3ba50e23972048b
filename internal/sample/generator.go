// Package sample synthesizes realistic-looking events for demo and
// onboarding flows. Generated events carry the full event shape
// (exception, breadcrumbs, user and request context) so everything
// downstream treats them like real traffic.
package sample

import (
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/emberwatch/emberwatch/internal/models"
)

//go:embed platforms.yaml
var platformsYAML []byte

// ErrUnknownPlatform is returned when no sample template exists for the
// requested platform.
var ErrUnknownPlatform = errors.New("unknown platform")

type exceptionDef struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

type platformDef struct {
	FileExtension string         `yaml:"file_extension"`
	Exceptions    []exceptionDef `yaml:"exceptions"`
	Modules       []string       `yaml:"modules"`
	Functions     []string       `yaml:"functions"`
}

type catalog struct {
	Platforms map[string]platformDef `yaml:"platforms"`
}

// Options configures event synthesis.
type Options struct {
	// Environment and Release are stamped onto every generated event.
	Environment string
	Release     string

	// Seed fixes the random source. Zero means seed from the clock.
	Seed int64
}

// Generator produces sample events from embedded platform templates.
type Generator struct {
	platforms   map[string]platformDef
	rand        *rand.Rand
	environment string
	release     string
}

// NewGenerator parses the embedded platform catalog and returns a
// ready-to-use generator.
func NewGenerator(opts Options) (*Generator, error) {
	var cat catalog
	if err := yaml.Unmarshal(platformsYAML, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse platform catalog: %w", err)
	}
	if len(cat.Platforms) == 0 {
		return nil, errors.New("platform catalog is empty")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	env := opts.Environment
	if env == "" {
		env = "production"
	}

	return &Generator{
		platforms:   cat.Platforms,
		rand:        rand.New(rand.NewSource(seed)),
		environment: env,
		release:     opts.Release,
	}, nil
}

// Platforms returns the supported platform identifiers, sorted.
func (g *Generator) Platforms() []string {
	names := make([]string, 0, len(g.platforms))
	for name := range g.platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether a sample template exists for the platform.
func (g *Generator) Supports(platform string) bool {
	_, ok := g.platforms[platform]
	return ok
}

// Generate synthesizes one sample event for the project on the given
// platform. The event timestamp is jittered a few minutes into the past
// so consecutive samples do not stack on a single instant.
func (g *Generator) Generate(project *models.Project, platform string) (*models.Event, error) {
	def, ok := g.platforms[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}

	exc := def.Exceptions[g.rand.Intn(len(def.Exceptions))]
	module := def.Modules[g.rand.Intn(len(def.Modules))]
	function := def.Functions[g.rand.Intn(len(def.Functions))]

	now := time.Now().UTC()
	jitter := time.Duration(g.rand.Int63n(int64(5 * time.Minute)))
	ts := now.Add(-jitter)

	release := g.release
	if release == "" {
		release = fmt.Sprintf("%d.%d.%d", g.rand.Intn(3)+1, g.rand.Intn(20), g.rand.Intn(10))
	}

	level := models.LevelError
	if g.rand.Float32() < 0.1 {
		level = models.LevelFatal
	}

	event := &models.Event{
		ID:          newEventID(),
		ProjectID:   project.ID,
		Platform:    platform,
		Message:     fmt.Sprintf("%s: %s", exc.Type, exc.Value),
		Level:       level,
		Culprit:     fmt.Sprintf("%s in %s", module, function),
		Environment: g.environment,
		Release:     release,
		Timestamp:   ts,
		Sample:      true,
		User: &models.EventUser{
			ID:        gofakeit.UUID(),
			Username:  gofakeit.Username(),
			Email:     gofakeit.Email(),
			IPAddress: gofakeit.IPv4Address(),
		},
		Request: &models.HTTPContext{
			URL:    gofakeit.URL(),
			Method: gofakeit.HTTPMethod(),
			Headers: map[string]string{
				"User-Agent": gofakeit.UserAgent(),
			},
		},
		Exception: &models.Exception{
			Type:   exc.Type,
			Value:  exc.Value,
			Module: module,
			Frames: g.generateFrames(def, module, function),
		},
		Breadcrumbs: g.generateBreadcrumbs(ts),
		Tags: models.Tags{
			"server_name": gofakeit.DomainName(),
			"environment": g.environment,
			"sample":      "true",
		},
	}

	return event, nil
}

// generateFrames builds a short call stack ending in the culprit frame.
func (g *Generator) generateFrames(def platformDef, module, function string) []models.StackFrame {
	depth := 3 + g.rand.Intn(3)
	frames := make([]models.StackFrame, 0, depth)

	for i := 0; i < depth-1; i++ {
		m := def.Modules[g.rand.Intn(len(def.Modules))]
		f := def.Functions[g.rand.Intn(len(def.Functions))]
		frames = append(frames, models.StackFrame{
			Function: f,
			Module:   m,
			Filename: frameFilename(m, def.FileExtension),
			LineNo:   10 + g.rand.Intn(490),
			InApp:    true,
		})
	}

	// Innermost frame is the culprit.
	frames = append(frames, models.StackFrame{
		Function: function,
		Module:   module,
		Filename: frameFilename(module, def.FileExtension),
		LineNo:   10 + g.rand.Intn(490),
		InApp:    true,
	})

	return frames
}

func (g *Generator) generateBreadcrumbs(eventTime time.Time) []models.Breadcrumb {
	categories := []string{"http", "navigation", "query", "ui.click"}
	count := 2 + g.rand.Intn(3)

	crumbs := make([]models.Breadcrumb, 0, count)
	for i := count; i > 0; i-- {
		crumbs = append(crumbs, models.Breadcrumb{
			Timestamp: eventTime.Add(-time.Duration(i) * time.Second),
			Category:  categories[g.rand.Intn(len(categories))],
			Message:   gofakeit.HackerPhrase(),
			Level:     models.LevelInfo,
		})
	}
	return crumbs
}

// frameFilename derives a plausible source path from a module name.
func frameFilename(module, ext string) string {
	path := strings.ReplaceAll(module, ".", "/")
	path = strings.ReplaceAll(path, `\`, "/")
	return path + ext
}

// newEventID returns a 32-character lowercase hex event identifier.
func newEventID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

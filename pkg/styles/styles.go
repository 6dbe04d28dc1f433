package styles

import (
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/pipeline"
	"github.com/dusklight/pixelpipe/pkg/reconcile"
)

// Entry is one instance request carried by a style.
type Entry struct {
	Operation string `yaml:"operation"`
	Instance  int    `yaml:"instance"`
	Name      string `yaml:"name,omitempty"`
}

// Style is a named preset of instance requests.
type Style struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// New captures the multi-instance layout of a document as a style.
func New(name string, doc *pipeline.Document) *Style {
	s := &Style{
		ID:   uuid.NewString(),
		Name: name,
	}
	for _, e := range doc.Order.Entries() {
		if doc.Order.InstanceCount(e.Operation) > 1 {
			s.Entries = append(s.Entries, Entry{
				Operation: e.Operation,
				Instance:  e.Instance,
				Name:      e.Name,
			})
		}
	}
	return s
}

// Load reads a style file. Invalid documents are rejected whole.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "failed to read style %s", path)
	}

	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleLoad, "failed to parse style")
	}
	if s.Name == "" {
		return nil, errors.New(errors.ErrStyleInvalid, "style has no name")
	}
	for _, e := range s.Entries {
		if e.Operation == "" {
			return nil, errors.New(errors.ErrStyleInvalid, "style entry has no operation")
		}
		if e.Instance < 0 {
			return nil, errors.Newf(errors.ErrStyleInvalid, "style entry %s has negative instance", e.Operation)
		}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return &s, nil
}

// Save writes the style as YAML.
func (s *Style) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrStyleInvalid, "failed to marshal style")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStyleLoad, "failed to write style %s", path)
	}
	return nil
}

// Apply reconciles the document's order list with the style's instance
// requests. appendMode preserves existing enabled instances and only adds
// the deficit; otherwise disabled instances are recycled first.
func (s *Style) Apply(doc *pipeline.Document, appendMode bool) {
	logger := logging.GetLogger("styles.apply")

	requests := make([]reconcile.Request, 0, len(s.Entries))
	for _, e := range s.Entries {
		requests = append(requests, reconcile.Request{
			Operation: e.Operation,
			Instance:  e.Instance,
			Name:      e.Name,
		})
	}

	logger.Info().
		Str("style", s.Name).
		Int("requests", len(requests)).
		Bool("append", appendMode).
		Msg("applying style")
	reconcile.ReconcileForEntries(doc, requests, appendMode)
}

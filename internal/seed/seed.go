// Package seed loads question sets from YAML files into the store.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizline/internal/store"
)

//go:embed questions.yaml
var defaultQuestions []byte

const schemaURL = "schema://questions.json"

// questionFileSchema describes a question file. IDs must be positive and
// text must be non-empty; ordering in the file does not matter.
const questionFileSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "text"],
				"additionalProperties": false,
				"properties": {
					"id": {"type": "integer", "minimum": 1},
					"text": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

type questionFile struct {
	Questions []questionEntry `yaml:"questions"`
}

type questionEntry struct {
	ID   int64  `yaml:"id"`
	Text string `yaml:"text"`
}

// Default returns the built-in sample questions.
func Default() ([]store.Question, error) {
	return Parse(bytes.NewReader(defaultQuestions))
}

// Parse reads a YAML question file, validates it, and returns its questions
// in file order. Duplicate IDs are rejected.
func Parse(r io.Reader) ([]store.Question, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var f questionFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode question file: %w", err)
	}

	seen := make(map[int64]bool, len(f.Questions))
	questions := make([]store.Question, 0, len(f.Questions))
	for _, e := range f.Questions {
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate question id %d", e.ID)
		}
		seen[e.ID] = true
		questions = append(questions, store.Question{ID: e.ID, Text: e.Text})
	}
	return questions, nil
}

// validate checks the decoded YAML document against questionFileSchema.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode question file: %w", err)
	}

	// The validator expects JSON-shaped values (float64 numbers,
	// map[string]any objects), so round-trip through encoding/json.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert question file: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("convert question file: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid question file: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionFileSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile question schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

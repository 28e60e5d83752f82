// Package asyncapi describes the adapter's topics as an AsyncAPI 2.6 document.
package asyncapi

//go:generate go run ../../cmd/asyncapi-gen --output ../../docs/asyncapi.yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const Version = "2.6.0"

type Document struct {
	AsyncAPI string             `yaml:"asyncapi"`
	Info     Info               `yaml:"info"`
	Servers  map[string]Server  `yaml:"servers"`
	Channels map[string]Channel `yaml:"channels"`
}

type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

type Server struct {
	URL      string `yaml:"url"`
	Protocol string `yaml:"protocol"`
}

// Channel follows the AsyncAPI 2.x convention: publish is what clients send
// to the adapter, subscribe is what they receive from it.
type Channel struct {
	Description string     `yaml:"description,omitempty"`
	Publish     *Operation `yaml:"publish,omitempty"`
	Subscribe   *Operation `yaml:"subscribe,omitempty"`
}

type Operation struct {
	OperationID string  `yaml:"operationId"`
	Summary     string  `yaml:"summary,omitempty"`
	Message     Message `yaml:"message"`
}

type Message struct {
	Name    string    `yaml:"name,omitempty"`
	Title   string    `yaml:"title,omitempty"`
	Payload *Schema   `yaml:"payload,omitempty"`
	OneOf   []Message `yaml:"oneOf,omitempty"`
}

type Schema struct {
	Type       string              `yaml:"type"`
	Required   []string            `yaml:"required,omitempty"`
	Properties map[string]Property `yaml:"properties"`
}

type Property struct {
	Type        string   `yaml:"type"`
	Enum        []string `yaml:"enum,omitempty,flow"`
	Description string   `yaml:"description,omitempty"`
	Example     any      `yaml:"example,omitempty"`
}

// Build assembles the document for the given broker address.
func Build(info Info, serverName string, server Server) Document {
	doc := Document{
		AsyncAPI: Version,
		Info:     info,
		Servers:  map[string]Server{serverName: server},
		Channels: make(map[string]Channel, len(Channels)),
	}
	for _, spec := range Channels {
		op := &Operation{
			OperationID: spec.OperationID,
			Summary:     spec.Summary,
			Message:     spec.message(),
		}
		ch := Channel{Description: spec.Description}
		if spec.Direction == Inbound {
			ch.Publish = op
		} else {
			ch.Subscribe = op
		}
		doc.Channels[string(spec.Topic)] = ch
	}
	return doc
}

// Write encodes doc as YAML.
func Write(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode asyncapi document: %w", err)
	}
	return enc.Close()
}

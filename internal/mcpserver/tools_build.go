package mcpserver

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/internal/cliutil"
)

type buildRootInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: json or yaml. Defaults to OASBLOCKS_FORMAT (json)."`
	Output string `json:"output,omitempty" jsonschema:"File path to write the document to. If omitted the document is returned inline."`
}

func (in buildRootInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Format, validation.In(formatChoices()...)),
	)
}

type buildAPIInput struct {
	Resource string `json:"resource"         jsonschema:"Resource name of the api declaration, e.g. pet"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: json or yaml. Defaults to OASBLOCKS_FORMAT (json)."`
	Output   string `json:"output,omitempty" jsonschema:"File path to write the document to. If omitted the document is returned inline."`
}

func (in buildAPIInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Resource, validation.Required),
		validation.Field(&in.Format, validation.In(formatChoices()...)),
	)
}

type listResourcesInput struct{}

type collisionOutput struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	First   string `json:"first"`
	Second  string `json:"second"`
	Kept    string `json:"kept"`
}

type documentOutput struct {
	Dialect    string            `json:"dialect"`
	Format     string            `json:"format"`
	Collisions []collisionOutput `json:"collisions,omitempty"`
	WrittenTo  string            `json:"written_to,omitempty"`
	Document   string            `json:"document,omitempty"`
	Summary    string            `json:"summary"`
}

type listResourcesOutput struct {
	Resources []string `json:"resources"`
	Count     int      `json:"count"`
}

func formatChoices() []any {
	formats := cliutil.ValidFormats()
	out := make([]any, len(formats))
	for i, f := range formats {
		out[i] = f
	}
	return out
}

func (ts *toolSet) handleBuildRoot(_ context.Context, _ *mcp.CallToolRequest, input buildRootInput) (*mcp.CallToolResult, documentOutput, error) {
	if err := input.Validate(); err != nil {
		return errResult(fmt.Errorf("invalid input: %w", err)), documentOutput{}, nil
	}
	doc, err := builder.BuildRootDocument(ts.units, ts.builderOptions()...)
	if err != nil {
		return errResult(err), documentOutput{}, nil
	}
	output, err := ts.emit(doc, ts.format(input.Format), input.Output)
	if err != nil {
		return errResult(err), documentOutput{}, nil
	}
	output.Summary = fmt.Sprintf("Built %s root document from %d units with %d collisions",
		doc.Dialect, len(ts.units), len(doc.Collisions))
	return nil, output, nil
}

func (ts *toolSet) handleBuildAPIDeclaration(_ context.Context, _ *mcp.CallToolRequest, input buildAPIInput) (*mcp.CallToolResult, documentOutput, error) {
	if err := input.Validate(); err != nil {
		return errResult(fmt.Errorf("invalid input: %w", err)), documentOutput{}, nil
	}
	doc, err := builder.BuildAPIDeclaration(input.Resource, ts.units, ts.builderOptions()...)
	if err != nil {
		return errResult(err), documentOutput{}, nil
	}
	output, err := ts.emit(doc, ts.format(input.Format), input.Output)
	if err != nil {
		return errResult(err), documentOutput{}, nil
	}
	output.Summary = fmt.Sprintf("Built api declaration %q with %d collisions", input.Resource, len(doc.Collisions))
	return nil, output, nil
}

func (ts *toolSet) handleListResources(_ context.Context, _ *mcp.CallToolRequest, _ listResourcesInput) (*mcp.CallToolResult, listResourcesOutput, error) {
	resources, err := builder.ListResources(ts.units, ts.builderOptions()...)
	if err != nil {
		return errResult(err), listResourcesOutput{}, nil
	}
	if resources == nil {
		resources = []string{}
	}
	return nil, listResourcesOutput{Resources: resources, Count: len(resources)}, nil
}

// emit renders doc inline, or writes it to path when one is given.
func (ts *toolSet) emit(doc *builder.Document, format, path string) (documentOutput, error) {
	output := documentOutput{
		Dialect:    doc.Dialect.String(),
		Format:     format,
		Collisions: collisions(doc.Collisions),
	}
	if path != "" {
		written, err := cliutil.WriteDocument(doc, path, format)
		if err != nil {
			return documentOutput{}, err
		}
		output.WrittenTo = written
		return output, nil
	}
	data, err := cliutil.Render(doc, format)
	if err != nil {
		return documentOutput{}, err
	}
	output.Document = string(data)
	return output, nil
}

func collisions(cs []aggregator.Collision) []collisionOutput {
	if len(cs) == 0 {
		return nil
	}
	out := make([]collisionOutput, 0, len(cs))
	for _, c := range cs {
		out = append(out, collisionOutput{
			Section: c.Section,
			Key:     c.Key,
			First:   c.First,
			Second:  c.Second,
			Kept:    c.Kept,
		})
	}
	return out
}

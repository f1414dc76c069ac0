package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"FcnLang/internal/ast"
	"FcnLang/internal/lexer"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// WriteTokens renders tokens in the requested format.
func WriteTokens(w io.Writer, tokens []lexer.Token, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, tokens)
	case YAML:
		return writeYAML(w, tokens)
	}
	_, err := io.WriteString(w, FormatTokens(tokens))
	return err
}

// WriteTree renders a parsed tree in the requested format.
func WriteTree(w io.Writer, n ast.Node, f Format) error {
	switch f {
	case JSON:
		return writeJSON(w, Encode(n))
	case YAML:
		return writeYAML(w, Encode(n))
	}
	_, err := io.WriteString(w, FormatTree(n))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

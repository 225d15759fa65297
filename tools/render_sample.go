// Renders a resume JSON file to HTML for quick inspection in a browser, no
// headless Chrome involved. Usage: go run ./tools resume.json [template]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/composer"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/template"
)

func main() {
	in := "resume.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	kind := template.KindModern
	if len(os.Args) > 2 {
		kind = template.ParseKind(os.Args[2])
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}
	if err := model.ValidateContent(b); err != nil {
		fmt.Fprintf(os.Stderr, "validate: %v\n", err)
		os.Exit(2)
	}
	var doc domain.ResumeDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	outDir := filepath.Join("resume-data", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}
	outFile := filepath.Join(outDir, fmt.Sprintf("sample_%s.html", kind))
	if err := os.WriteFile(outFile, []byte(composer.Compose(doc, kind)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}

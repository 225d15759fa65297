// Command rendercheck runs the full rendering pipeline against a sample
// resume with the real headless browser. Useful for verifying a deployment
// has a working Chrome before taking traffic.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/composer"
	"resume-builder/internal/domain"
	"resume-builder/internal/template"
	infra "resume-builder/pkg/infrastructure"
)

func sampleResume() domain.ResumeDocument {
	return domain.ResumeDocument{
		PersonalInfo: domain.PersonalInfo{
			FullName: "Test User",
			Email:    "test@example.com",
			Phone:    "+1 555 0100",
			Links: []domain.Link{
				{Label: "Portfolio", URL: "https://example.com"},
			},
		},
		CareerObjective: "Backend engineer focused on reliable services and clean interfaces.",
		WorkExperience: []domain.WorkExperience{
			{
				JobTitle:         "Software Engineer",
				Organization:     "Acme",
				StartDate:        "2021-03",
				IsCurrent:        true,
				Responsibilities: "Built the billing pipeline\nReduced incident rate with better retries",
			},
		},
		Skills: []string{"Go", "Postgres", "Docker"},
		Education: []domain.Education{
			{Degree: "BSc Computer Science", Institution: "State University", EndYear: "2020"},
		},
		Languages: []domain.Language{{Name: "English", Proficiency: "Native"}},
	}
}

func main() {
	log := slog.Default()
	renderer := infra.NewChromedpRenderer(os.Getenv("CHROME_PATH"), os.Getenv("SERVERLESS_CHROME_PATH"), log)

	outDir := filepath.Join("resume-data", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	doc := sampleResume()
	for _, kind := range template.Kinds() {
		html := composer.Compose(doc, kind)
		htmlPath := filepath.Join(outDir, fmt.Sprintf("sample_%s.html", kind))
		if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write html: %v\n", err)
			os.Exit(2)
		}

		pdf, err := renderer.RenderHTMLToPDF(ctx, html)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", kind, err)
			os.Exit(1)
		}
		pdfPath := filepath.Join(outDir, fmt.Sprintf("sample_%s.pdf", kind))
		if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write pdf: %v\n", err)
			os.Exit(2)
		}
		fmt.Printf("rendered %s (%d bytes)\n", pdfPath, len(pdf))
	}
}

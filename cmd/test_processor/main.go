package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"resume-renderer/internal/model"
	"resume-renderer/internal/usecase"
	"resume-renderer/pkg/infrastructure"
)

// sample is a bilingual document that spills over onto a second page.
func sample(lang model.Language) *model.Document {
	doc := &model.Document{
		Identity: &model.Identity{
			FirstName: "Sara", LastName: "Ali", JobTitle: "Backend Engineer",
			Email: "sara@example.com", Phone: "+20 100 000 0000", City: "Cairo",
			Links: []model.Link{{URL: "https://github.com/sara-ali"}},
		},
		Objective: "Build dependable services. بناء خدمات موثوقة.",
		Skills: []model.Skill{
			{ID: uuid.New(), Name: "Go", Category: "Languages", Level: "excellent"},
			{ID: uuid.New(), Name: "PostgreSQL", Category: "Data", Level: "good"},
			{ID: uuid.New(), Name: "Mentoring", Level: "very-good"},
		},
		Languages: []model.LanguageEntry{
			{ID: uuid.New(), Name: "العربية", Level: "native"},
			{ID: uuid.New(), Name: "English", Level: "c1", Skills: &model.LanguageSkills{Reading: "excellent", Writing: "very-good", Speaking: "good", Listening: "excellent"}},
		},
		Presentation: model.Presentation{Language: lang},
	}
	for i := 0; i < 9; i++ {
		doc.Experience = append(doc.Experience, model.Experience{
			ID:           uuid.New(),
			Title:        fmt.Sprintf("Engineer %d", i+1),
			Organization: "Nimbus Labs",
			StartDate:    fmt.Sprintf("%d-01", 2010+i),
			EndDate:      fmt.Sprintf("%d-12", 2010+i),
			Ongoing:      i == 8,
			Description:  "Designed and operated event pipelines serving millions of requests per day.",
			Responsibilities: []string{
				"Owned the ingestion service",
				"Reduced p99 latency by 40%",
			},
		})
	}
	return doc
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := usecase.NewProcessor(
		infrastructure.NewChromedpRenderer(os.Getenv("CHROME_PATH"), 30*time.Second),
		usecase.Options{CountPages: infrastructure.CountPages, Logger: log},
	)

	outDir := filepath.Join(os.TempDir(), "resume-renderer")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Printf("create output dir failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, lang := range []model.Language{model.English, model.Arabic} {
		a, err := p.Render(ctx, sample(lang))
		if err != nil {
			fmt.Printf("render %s failed: %v\n", lang, err)
			os.Exit(1)
		}
		printed, err := infrastructure.CountPages(a.PDF)
		if err != nil {
			fmt.Printf("render %s produced unreadable PDF: %v\n", lang, err)
			os.Exit(1)
		}
		out := filepath.Join(outDir, a.Filename+"_"+string(lang)+".pdf")
		if err := os.WriteFile(out, a.PDF, 0o644); err != nil {
			fmt.Printf("write %s failed: %v\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d pages planned, %d printed -> %s\n", lang, a.Pages, printed, out)
	}
}

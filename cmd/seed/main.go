package main

import (
	"context"
	"log"

	"notedesk/internal/config"
	"notedesk/internal/dto"
	"notedesk/internal/pkg/logger"
	"notedesk/internal/repository/localstore"
	"notedesk/internal/repository/memory"
	"notedesk/internal/repository/unitofwork"
	"notedesk/internal/service"
	"notedesk/pkg/database"
	"notedesk/pkg/export"
	"notedesk/pkg/render"

	"github.com/fatih/color"
)

// Seeds a starter workspace with two projects, a handful of notes and
// tags, so a fresh install opens onto something instead of a blank pane.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	uowFactory := buildFactory(cfg)
	selections := memory.NewSelectionRepository()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)

	projectService := service.NewProjectService(uowFactory, selections)
	noteService := service.NewNoteService(uowFactory, noopPublisher{}, selections, render.NewPreviewCache(), export.NewPDFExporter(cfg.Storage.ExportDir), sysLogger)
	tagService := service.NewTagService(uowFactory)
	workspaceService := service.NewWorkspaceService(uowFactory, selections)

	color.Cyan("Seeding starter data")

	workspace, err := workspaceService.Create(ctx, &dto.CreateWorkspaceRequest{Name: "Personal", Path: "~/notes"})
	if err != nil {
		color.Red("Failed to create workspace: %v", err)
		log.Fatal(err)
	}
	color.Green("Workspace %q (%s)", workspace.Name, workspace.Id)

	ideas, err := projectService.Create(ctx, &dto.CreateProjectRequest{Name: "Ideas", Description: "Loose thoughts and sketches"})
	if err != nil {
		log.Fatal(err)
	}
	work, err := projectService.Create(ctx, &dto.CreateProjectRequest{Name: "Work", Description: "Meeting notes and plans"})
	if err != nil {
		log.Fatal(err)
	}
	color.Green("Projects %q and %q", ideas.Name, work.Name)

	for _, tag := range []dto.CreateTagRequest{
		{Name: "urgent", Color: "#cc241d"},
		{Name: "draft", Color: "#d79921"},
	} {
		if _, err := tagService.Create(ctx, &tag); err != nil {
			log.Fatal(err)
		}
	}
	color.Green("Tags urgent, draft")

	notes := []dto.CreateNoteRequest{
		{Title: "Welcome", Content: "# Welcome\n\nThis is your first note.", ProjectId: ideas.Id},
		{Title: "Reading list", Content: "- The Mythical Man-Month\n- A Philosophy of Software Design", ProjectId: ideas.Id},
		{Title: "Sprint planning", Content: "## Goals\n\n- [ ] Ship the export pipeline", ProjectId: work.Id},
	}
	for _, n := range notes {
		if _, err := noteService.Create(ctx, &n); err != nil {
			log.Fatal(err)
		}
	}
	color.Green("%d notes", len(notes))

	color.Cyan("Done")
}

func buildFactory(cfg *config.Config) unitofwork.RepositoryFactory {
	if cfg.Storage.Backend == "postgres" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Unable to connect to GORM DB: %v", err)
		}
		return unitofwork.NewRepositoryFactory(db)
	}

	store, err := localstore.Open(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Unable to open local store: %v", err)
	}
	return unitofwork.NewLocalRepositoryFactory(store)
}

// The seeder has no consumer running, so render messages go nowhere.
type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

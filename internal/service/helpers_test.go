package service

import (
	"context"

	"notedesk/internal/repository/localstore"
	"notedesk/internal/repository/memory"
	"notedesk/internal/repository/unitofwork"
	"notedesk/pkg/export"
	"notedesk/pkg/render"
)

type testEnv struct {
	factory    unitofwork.RepositoryFactory
	selections *memory.SelectionRepository
	previews   *render.PreviewCache
}

func newTestEnv() *testEnv {
	return &testEnv{
		factory:    unitofwork.NewLocalRepositoryFactory(localstore.OpenEphemeral()),
		selections: memory.NewSelectionRepository(),
		previews:   render.NewPreviewCache(),
	}
}

func (e *testEnv) projectService() IProjectService {
	return NewProjectService(e.factory, e.selections)
}

func (e *testEnv) noteService(exportDir string) INoteService {
	return NewNoteService(e.factory, capturePublisher{}, e.selections, e.previews, export.NewPDFExporter(exportDir), nopLogger{})
}

func (e *testEnv) tagService() ITagService {
	return NewTagService(e.factory)
}

func (e *testEnv) taskService() ITaskService {
	return NewTaskService(e.factory)
}

func (e *testEnv) tabService() ITabService {
	return NewTabService(e.factory)
}

func (e *testEnv) workspaceService() IWorkspaceService {
	return NewWorkspaceService(e.factory, e.selections)
}

type capturePublisher struct{}

func (capturePublisher) Publish(ctx context.Context, payload []byte) error { return nil }

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

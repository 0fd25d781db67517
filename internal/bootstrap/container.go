package bootstrap

import (
	"log"

	"notedesk/internal/config"
	"notedesk/internal/controller"
	"notedesk/internal/pkg/logger"
	"notedesk/internal/repository/localstore"
	"notedesk/internal/repository/memory"
	"notedesk/internal/repository/unitofwork"
	"notedesk/internal/service"
	"notedesk/internal/websocket"
	"notedesk/pkg/database"
	"notedesk/pkg/export"
	"notedesk/pkg/render"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ProjectController   controller.IProjectController
	NoteController      controller.INoteController
	TagController       controller.ITagController
	TaskController      controller.ITaskController
	WorkspaceController controller.IWorkspaceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	PreviewHub *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the application. The storage backend comes from
// config: "postgres" uses gorm, anything else the JSON file store. A
// file store that fails to open degrades to an ephemeral empty one so
// the app still starts.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	uowFactory := newRepositoryFactory(cfg, sysLogger)

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Selection state and preview pipeline
	selectionRepo := memory.NewSelectionRepository()
	renderer := render.NewRenderer()
	previewCache := render.NewPreviewCache()
	pdfExporter := export.NewPDFExporter(cfg.Storage.ExportDir)

	previewHub := websocket.NewHub(sysLogger)
	go previewHub.Run()

	// Services
	publisherService := service.NewPublisherService(cfg.Render.TopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Render.TopicName, uowFactory, renderer, previewCache, previewHub)

	projectService := service.NewProjectService(uowFactory, selectionRepo)
	noteService := service.NewNoteService(uowFactory, publisherService, selectionRepo, previewCache, pdfExporter, sysLogger)
	tagService := service.NewTagService(uowFactory)
	taskService := service.NewTaskService(uowFactory)
	workspaceService := service.NewWorkspaceService(uowFactory, selectionRepo)
	tabService := service.NewTabService(uowFactory)

	return &Container{
		ProjectController:   controller.NewProjectController(projectService),
		NoteController:      controller.NewNoteController(noteService),
		TagController:       controller.NewTagController(tagService),
		TaskController:      controller.NewTaskController(taskService),
		WorkspaceController: controller.NewWorkspaceController(workspaceService, tabService),
		ConsumerService:     consumerService,
		PreviewHub:          previewHub,
		Logger:              sysLogger,
	}
}

func newRepositoryFactory(cfg *config.Config, sysLogger logger.ILogger) unitofwork.RepositoryFactory {
	if cfg.Storage.Backend == "postgres" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		return unitofwork.NewRepositoryFactory(db)
	}

	store, err := localstore.Open(cfg.Storage.DataDir)
	if err != nil {
		sysLogger.Error("Bootstrap", "Failed to open local store, degrading to empty in-memory state", map[string]interface{}{
			"data_dir": cfg.Storage.DataDir,
			"error":    err.Error(),
		})
		store = localstore.OpenEphemeral()
	}
	return unitofwork.NewLocalRepositoryFactory(store)
}

package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/manthansinghshekhawat/personahitesh/internal/chat"
	"github.com/manthansinghshekhawat/personahitesh/internal/config"
	"github.com/manthansinghshekhawat/personahitesh/internal/llm"
	"github.com/manthansinghshekhawat/personahitesh/internal/llm/azureopenai"
	"github.com/manthansinghshekhawat/personahitesh/internal/observability"
	"github.com/manthansinghshekhawat/personahitesh/internal/persona"
	"github.com/manthansinghshekhawat/personahitesh/server"
)

func main() {
	// .env is optional, real env vars win either way
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.Logger()

	personaText, err := persona.Resolve(cfg.PersonaFile)
	if err != nil {
		logger.Error("persona file unusable, falling back to built-in", "error", err)
		personaText = persona.Default()
	}

	// A missing endpoint/credential or a failed client build keeps the
	// page alive; the UI shows the error as a persistent banner and
	// completion turns answer unavailable.
	var client llm.Client
	var banner string

	if cfg.UseMockLLM {
		logger.Info("using mock completion client")
		client = llm.NewMockClient()
	} else if err := cfg.Validate(); err != nil {
		logger.Error("configuration error", "error", err)
		banner = "Set AZURE_OPENAI_ENDPOINT and AZURE_OPENAI_API_KEY in .env"
	} else if azure, err := azureopenai.NewClient(cfg.Endpoint, cfg.APIKey, cfg.Deployment, cfg.APIVersion, cfg.Generation); err != nil {
		logger.Error("error initializing completion client", "error", err)
		banner = "Error initializing client: " + err.Error()
	} else {
		client = azure
	}

	assistant := chat.NewAssistant(personaText, client, chat.NewSession())

	s := server.NewServer(assistant, banner)
	logger.Info("starting server", "port", cfg.Port, "deployment", cfg.Deployment)
	log.Fatal(s.Start(":" + cfg.Port))
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/ai"
	"github.com/talentscout/intake/internal/ai/gemini"
	"github.com/talentscout/intake/internal/conversation"
	"github.com/talentscout/intake/internal/extract"
	"github.com/talentscout/intake/internal/i18n"
	"github.com/talentscout/intake/internal/logger"
	"github.com/talentscout/intake/internal/questions"
	"github.com/talentscout/intake/internal/secrets"
	"github.com/talentscout/intake/internal/store"
	"github.com/talentscout/intake/internal/voice"
)

const defaultMaxTokens = 500

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive candidate intake session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("language", "l", "", "conversation language code (prompted when unset)")
	runCmd.Flags().Bool("voice", false, "speak assistant replies through a local text-to-speech engine")

	viper.BindPFlag("language", runCmd.Flags().Lookup("language"))
	viper.BindPFlag("voice.enabled", runCmd.Flags().Lookup("voice"))
}

// run is the interactive intake session.
func run(_ *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting talentscout", zap.String("version", version))

	generator, model := newGenerator(ctx, config.AI, zlog)
	aiLogger := logger.WithCommonFields(zlog, gemini.Provider, model)

	gateway := newGateway(ctx, config.DatabaseURL, zlog)
	defer gateway.Close()

	langCode := viper.GetString("language")
	if langCode == "" {
		langCode = selectLanguage(zlog)
	}

	lang, err := i18n.New(langCode)
	if err != nil {
		zlog.Fatal("selecting a language", zap.Error(err))
	}

	maxTokens := int32(defaultMaxTokens)
	maxLogLength := 0
	if config.AI != nil && config.AI.Gemini != nil {
		if config.AI.Gemini.MaxTokens > 0 {
			maxTokens = config.AI.Gemini.MaxTokens
		}
		maxLogLength = config.AI.Gemini.MaxLogLength
	}

	controller := conversation.NewController(
		extract.NewHeuristics(zlog),
		extract.NewLLMExtractor(generator, lang, maxTokens, maxLogLength, aiLogger),
		questions.NewGenerator(generator, lang, config.Questions, maxTokens, maxLogLength, aiLogger),
		generator,
		gateway,
		lang,
		maxTokens,
		zlog,
	)

	session := conversation.NewSession(uuid.NewString())
	zlog.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("language", lang.Language()),
	)

	speaker := newSpeaker(config.Voice, zlog)
	if speaker != nil {
		defer speaker.Close()
	}

	say := func(text string) {
		fmt.Printf("\n%s\n\n", text)
		if speaker != nil {
			speaker.Say(text)
		}
	}

	say(controller.Greet(ctx, session))

	input := promptui.Prompt{Label: "You"}
	for !session.Done() {
		message, err := input.Run()
		if err != nil {
			// Ctrl-C and friends end the session gracefully.
			zlog.Info("input closed", zap.Error(err))
			break
		}
		if strings.TrimSpace(message) == "" {
			continue
		}

		say(controller.HandleMessage(ctx, session, message))

		if session.Phase == conversation.PhaseInfoGathering {
			fmt.Printf("[profile %.0f%% complete]\n", session.Profile.Progress())
		}
	}

	zlog.Info("session finished",
		zap.String("session_id", session.ID),
		zap.String("phase", string(session.Phase)),
	)
}

// newGenerator builds the model client. A missing credential is the one
// configuration failure that blocks startup.
func newGenerator(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Generator, string) {
	provider := ""
	var geminiCfg *GeminiConfig
	if cfg != nil {
		provider = strings.TrimSpace(strings.ToLower(cfg.Provider))
		geminiCfg = cfg.Gemini
	}
	if provider != "" && provider != gemini.Provider {
		zlog.Fatal("unsupported ai provider", zap.String("provider", provider))
	}
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  geminiCfg.APIKeyFile,
	})
	if err != nil {
		zlog.Fatal(
			"loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY, GEMINI_API_KEY_FILE, or the ai.gemini keys in the configuration file"),
		)
	}

	client, err := gemini.NewClient(ctx, apiKey, geminiCfg.Model)
	if err != nil {
		zlog.Fatal("creating gemini client", zap.Error(err))
	}

	return client, client.Model()
}

// newGateway picks the persistence backend. Without a DSN the session still
// works on the in-memory store; nothing survives the process.
func newGateway(ctx context.Context, dsn string, zlog *zap.Logger) store.Gateway {
	if strings.TrimSpace(dsn) == "" {
		zlog.Warn("no database configured, collected data will not be persisted",
			zap.String("hint", "set DATABASE_URL or the database-url configuration key"),
		)
		return store.NewMemory()
	}

	gateway, err := store.NewPostgres(ctx, dsn)
	if err != nil {
		zlog.Fatal("connecting to the database", zap.Error(err))
	}
	return gateway
}

func selectLanguage(zlog *zap.Logger) string {
	codes := i18n.Supported()
	items := make([]string, 0, len(codes))
	for _, code := range codes {
		items = append(items, fmt.Sprintf("%s (%s)", i18n.LanguageName(code), code))
	}

	prompt := promptui.Select{
		Label: "Choose a language",
		Items: items,
	}

	index, _, err := prompt.Run()
	if err != nil {
		zlog.Fatal("selecting a language", zap.Error(err))
	}
	return codes[index]
}

func newSpeaker(cfg *VoiceConfig, zlog *zap.Logger) *voice.Speaker {
	enabled := viper.GetBool("voice.enabled")
	command := ""
	if cfg != nil {
		enabled = enabled || cfg.Enabled
		command = cfg.Command
	}
	if !enabled {
		return nil
	}

	return voice.NewSpeaker(voice.NewCommandEngine(command), zlog)
}

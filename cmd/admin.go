package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/logger"
	"github.com/talentscout/intake/internal/store"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Browse collected candidate profiles",
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidate profiles, newest first",
	Run: func(cmd *cobra.Command, _ []string) {
		adminList(cmd)
	},
}

var adminShowCmd = &cobra.Command{
	Use:   "show <profile-id>",
	Short: "Show one profile with its questions, answers, and transcript",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		adminShow(args[0])
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminShowCmd)

	adminListCmd.Flags().Int("limit", 50, "maximum number of profiles to list")
	adminListCmd.Flags().Bool("complete", false, "only list profiles with every field collected")
}

// adminGateway opens the database. Admin commands have nothing to show
// without one.
func adminGateway(ctx context.Context) (store.Gateway, *zap.Logger) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	if strings.TrimSpace(config.DatabaseURL) == "" {
		zlog.Fatal("a database is required",
			zap.String("hint", "set DATABASE_URL or the database-url configuration key"),
		)
	}

	gateway, err := store.NewPostgres(ctx, config.DatabaseURL)
	if err != nil {
		zlog.Fatal("connecting to the database", zap.Error(err))
	}

	return gateway, zlog
}

func adminList(cmd *cobra.Command) {
	ctx := context.Background()
	gateway, zlog := adminGateway(ctx)
	defer gateway.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	completeOnly, _ := cmd.Flags().GetBool("complete")

	summaries, err := gateway.ListProfiles(ctx, limit)
	if err != nil {
		zlog.Fatal("listing profiles", zap.Error(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tLOCATION\tCOMPLETE\tCREATED")
	for _, summary := range summaries {
		complete := summary.Profile.IsComplete()
		if completeOnly && !complete {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n",
			summary.ID,
			orDash(summary.Profile.FullName),
			orDash(summary.Profile.Email),
			orDash(summary.Profile.CurrentLocation),
			complete,
			summary.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}

func adminShow(arg string) {
	ctx := context.Background()
	gateway, zlog := adminGateway(ctx)
	defer gateway.Close()

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		zlog.Fatal("invalid profile id", zap.String("argument", arg))
	}

	summary, err := gateway.FetchProfileSummary(ctx, id)
	if err != nil {
		zlog.Fatal("fetching profile", zap.Error(err))
	}

	p := summary.Profile
	fmt.Printf("Profile %d (session %s)\n", summary.ID, summary.SessionID)
	fmt.Printf("  Name:      %s\n", orDash(p.FullName))
	fmt.Printf("  Email:     %s\n", orDash(p.Email))
	fmt.Printf("  Phone:     %s\n", orDash(p.Phone))
	fmt.Printf("  Location:  %s\n", orDash(p.CurrentLocation))
	years := "-"
	if p.YearsExperience != nil {
		years = strconv.Itoa(*p.YearsExperience)
	}
	fmt.Printf("  Years:     %s\n", years)
	fmt.Printf("  Positions: %s\n", orDash(strings.Join(p.DesiredPositions, ", ")))
	fmt.Printf("  Tech:      %s\n", orDash(strings.Join(p.TechStack, ", ")))

	if len(summary.Questions) > 0 {
		fmt.Println("\nTechnical questions:")
		for _, qa := range summary.Questions {
			fmt.Printf("  %d. %s\n", qa.QuestionIndex+1, qa.Question)
			if qa.Answered {
				fmt.Printf("     > %s\n", qa.Answer)
			} else {
				fmt.Println("     (unanswered)")
			}
		}
	}

	if len(summary.Transcript) > 0 {
		fmt.Println("\nTranscript:")
		for _, entry := range summary.Transcript {
			fmt.Printf("  [%s] %s: %s\n",
				entry.Timestamp.Format("15:04:05"), entry.Role, entry.Content)
		}
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

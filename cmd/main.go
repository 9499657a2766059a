package main

import (
	"context"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/catalog"
	"github.com/maxaizer/jobboard/internal/clients/remote"
	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/seed"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/maxaizer/jobboard/internal/store"
	"github.com/maxaizer/jobboard/internal/tracking"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"
)

// openSource picks the posting source from config. The returned func releases it.
func openSource(cfg *config.Config, bus EventBus.Bus) (services.PostingSource, func()) {

	switch cfg.Source.Kind {
	case config.SourceRemote:
		client := remote.NewClient(cfg.Source.URL, cfg.Source.PerPage)
		if cfg.Source.MaxRequestsPerSecond > 0 {
			client.SetRateLimit(cfg.Source.MaxRequestsPerSecond)
		}
		return client, func() {}

	case config.SourceSqlite:
		dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't create db context: %v", err)
		}

		if err = dbContext.Migrate(); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Fatalf("can't migrate db context: %v", err)
		}

		postings := repositories.NewPostingsRepository(dbContext.DB)
		applications := repositories.NewApplicationsRepository(dbContext.DB)

		if _, err = services.NewWriteThrough(bus, postings, applications); err != nil {
			log.Fatalf("can't subscribe write-through: %v", err)
		}

		cleaner, err := services.NewApplicationsCleaner(applications, cfg.DB.ApplicationRetentionDays)
		if err != nil {
			log.Fatalf("can't create applications cleaner: %v", err)
		}
		cleaner.Start()

		return postings, func() {
			cleaner.Stop()
			_ = dbContext.Close()
		}

	default:
		return seed.Source{}, func() {}
	}
}

func printPage(w io.Writer, page models.ResultPage, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tPAY\tCATEGORY\tPOSTED\t")
	for _, p := range page.Items {
		title := p.Title
		if p.IsUrgent() {
			title += " (urgent)"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.ID, title, p.Company, p.Location, p.PayText, p.Category, p.PostedAgo(now))
	}
	_ = tw.Flush()

	more := ""
	if page.HasMore {
		more = ", more available"
	}
	_, _ = fmt.Fprintf(w, "page %d: %d of %d matched%s\n", page.Page, len(page.Items), page.TotalMatched, more)
}

func printCounts(w io.Writer, counts []catalog.Count) {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s %d", c.Category.DisplayName, c.Count))
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, " | "))
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := parseFlags(os.Args[1:])
	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	bus := EventBus.New()
	categories := catalog.Default()

	strategy, err := store.ToIDStrategy(cfg.Board.IDStrategy)
	if err != nil {
		log.Fatalf("invalid id strategy: %v", err)
	}
	postings := store.New(strategy)

	source, closeSource := openSource(cfg, bus)
	defer closeSource()

	if err = services.LoadStore(ctx, source, postings); err != nil {
		log.Fatalf("can't load postings: %v", err)
	}

	sessions := tracking.NewSessions(cfg.Sessions.TTL, cfg.Sessions.CleanupInterval)
	board := services.NewJobBoard(bus, postings, categories, sessions, services.PageSizes{
		Feed:   cfg.Board.FeedPageSize,
		Search: cfg.Board.SearchPageSize,
	})

	spec, err := opts.querySpec(cfg.Board.SearchPageSize)
	if err != nil {
		log.Fatalf("invalid query: %v", err)
	}

	for {
		page, err := board.Query(spec)
		if err != nil {
			log.Fatalf("query failed: %v", err)
		}
		printPage(os.Stdout, page, time.Now())
		if !opts.showAll || !page.HasMore {
			break
		}
		spec = spec.Next()
	}
	printCounts(os.Stdout, board.CategoryCounts())

	if !opts.serve {
		return
	}

	server := metrics.StartMetricsServer(cfg.Metrics.Addr)

	stats, err := services.NewFacetStats(postings, categories, cfg.Metrics.FacetStatsSchedule)
	if err != nil {
		log.Fatalf("can't create facet stats: %v", err)
	}
	stats.Start()

	<-ctx.Done()

	log.Info("Shutting down services...")
	stats.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("metrics server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}

package main

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	text       string
	category   string
	sort       string
	page       int
	pageSize   int
	minPay     int
	maxPay     int
	urgentOnly bool
	verified   bool
	remoteOnly bool
	jobTypes   []string
	experience []string
	showAll    bool
	serve      bool
}

func parseFlags(args []string) options {
	var opts options
	flags := pflag.NewFlagSet("jobboard", pflag.ExitOnError)

	flags.StringVarP(&opts.text, "text", "t", "", "search text matched against title, company and skills")
	flags.StringVarP(&opts.category, "category", "c", models.AllCategories, "category id or name")
	flags.StringVar(&opts.sort, "sort", string(models.SortRelevance), "relevance, salary or date")
	flags.IntVarP(&opts.page, "page", "p", 1, "page number starting at 1")
	flags.IntVar(&opts.pageSize, "page-size", 0, "page size, the configured search page size when 0")
	flags.IntVar(&opts.minPay, "min-pay", 0, "minimum pay, inclusive")
	flags.IntVar(&opts.maxPay, "max-pay", models.MaxSalary, "maximum pay, inclusive")
	flags.BoolVar(&opts.urgentOnly, "urgent", false, "only urgent postings")
	flags.BoolVar(&opts.verified, "verified", false, "only verified employers")
	flags.BoolVar(&opts.remoteOnly, "remote", false, "only remote postings")
	flags.StringSliceVar(&opts.jobTypes, "job-type", nil, "job types, e.g. part-time,contract")
	flags.StringSliceVar(&opts.experience, "experience", nil, "experience levels")
	flags.BoolVar(&opts.showAll, "all-pages", false, "print every page instead of one")
	flags.BoolVar(&opts.serve, "serve", false, "keep running with metrics and background jobs until interrupted")

	flags.String("source", "", "posting source: seed, sqlite or remote")
	flags.String("source-url", "", "base url of the remote source")
	flags.String("db", "", "sqlite connection string")
	flags.String("log-level", "", "log level")
	flags.String("metrics-addr", "", "metrics listen address")

	if err := flags.Parse(args); err != nil {
		log.Fatal(err)
	}

	bindings := map[string]string{
		"source.kind":          "source",
		"source.url":           "source-url",
		"db.connection_string": "db",
		"logger.log_level":     "log-level",
		"metrics.addr":         "metrics-addr",
	}
	for key, name := range bindings {
		if flag := flags.Lookup(name); flag.Changed {
			if err := viper.BindPFlag(key, flag); err != nil {
				log.Fatal(err)
			}
		}
	}

	return opts
}

func (o options) querySpec(defaultPageSize int) (models.QuerySpec, error) {
	sort, err := models.ToSortKey(o.sort)
	if err != nil {
		return models.QuerySpec{}, err
	}

	pageSize := o.pageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	spec := models.NewQuerySpec(pageSize)
	spec.Text = o.text
	spec.Category = o.category
	spec.Sort = sort
	spec.Page = o.page
	spec.Salary = models.SalaryRange{Min: o.minPay, Max: o.maxPay}
	spec.UrgentOnly = o.urgentOnly
	spec.VerifiedOnly = o.verified
	spec.RemoteOnly = o.remoteOnly
	spec.JobTypes = o.jobTypes
	spec.ExperienceLevels = o.experience
	return spec, nil
}

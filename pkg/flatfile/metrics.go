package flatfile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tableReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movieflix_table_reads_total",
		Help: "Full-file reads per table.",
	}, []string{"table"})

	tableAppends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movieflix_table_appends_total",
		Help: "Rows appended per table.",
	}, []string{"table"})

	tableRewrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movieflix_table_rewrites_total",
		Help: "Whole-file rewrites per table.",
	}, []string{"table"})
)

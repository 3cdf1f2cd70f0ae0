package core

import "time"

const (
	TemplateGacha          = "https://dl.dir.freefiremobile.com/common/OB[V]/CSH/gacha/[G]_[E]xxx_[T]_TabID_ind.jpg"
	TemplateBannerSplash   = "https://dl.dir.freefiremobile.com/common/OB[V]/ID/[T]_[E]/splash.jpg"
	TemplateBannerOverview = "https://dl.dir.freefiremobile.com/common/OB[V]/ID/[T]_[E]/overview.jpg"

	// GachaTag is the marker whose values get casing/suffix expansion.
	GachaTag = "G"

	MaxCombinations = 20000

	DefaultWorkers   = 4
	DefaultBatchSize = 2000
	DefaultPace      = 1500 * time.Millisecond

	HeadProbeTimeoutSeconds = 8
	GetProbeTimeoutSeconds  = 10

	ProgressBarSlots = 15

	MinWorkers      = 1
	MaxWorkersLimit = 64
	MinBatchSize    = 1
	MaxBatchSizeCap = 10000
	MinTimeout      = 0
	MaxTimeout      = 300

	Version     = "1.0.0"
	Description = "Templated URL candidate generator and concurrent existence prober"
)

// OverviewVariants are the alternate spellings the CDN has been observed to
// use for the banner overview asset. The canonical spelling comes first.
var OverviewVariants = []string{"overview", "viewover", "overivew", "rivervow", "vowover"}

package handlers

import (
	"time"

	"github.com/venra/site/cache"
	"github.com/venra/site/content"
	"github.com/venra/site/lead"
	"github.com/venra/site/metrics"
)

// LeadNotifier is told about every lead that was stored.
type LeadNotifier interface {
	NotifyNewLead(l lead.Lead)
}

// Site carries what the handlers need. Metrics and Notifier may be nil.
type Site struct {
	Content      *content.Site
	Store        lead.Store
	Backend      string
	StoreTimeout time.Duration
	Metrics      *metrics.WaitlistMetrics
	Notifier     LeadNotifier
	Pages        *cache.Cache[[]byte]
	// ShareImage renders the social share card.
	ShareImage func() ([]byte, error)
}
